package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/performance-report/internal/domain"
)

const namespace = "performance_report"

// PrometheusMetrics registra as execuções de relatório num registry próprio
type PrometheusMetrics struct {
	registry      *prometheus.Registry
	reportRuns    *prometheus.CounterVec
	buildDuration prometheus.Histogram
	lastBatchSent prometheus.Gauge
	lastBatchSkip prometheus.Gauge
}

func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		reportRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_runs_total",
				Help:      "Total de relatórios processados por status e estágio",
			},
			[]string{"status", "stage"},
		),
		buildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_build_duration_seconds",
				Help:      "Duração do cálculo do relatório de funil em segundos",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		lastBatchSent: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_batch_sent",
				Help:      "Relatórios enviados no último lote",
			},
		),
		lastBatchSkip: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_batch_skipped",
				Help:      "Relatórios ignorados no último lote",
			},
		),
	}
}

func (m *PrometheusMetrics) ObserveRun(status domain.ReportRunStatus, stage string) {
	m.reportRuns.WithLabelValues(string(status), stage).Inc()
}

func (m *PrometheusMetrics) ObserveBuildDuration(d time.Duration) {
	m.buildDuration.Observe(d.Seconds())
}

// ObserveBatch guarda o resumo do último lote
func (m *PrometheusMetrics) ObserveBatch(result *domain.BatchResult) {
	if result == nil {
		return
	}
	m.lastBatchSent.Set(float64(result.Sent))
	m.lastBatchSkip.Set(float64(result.Skipped))
}

// Handler expõe o registry no formato de texto do Prometheus
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
