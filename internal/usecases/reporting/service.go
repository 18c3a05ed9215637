package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
)

// FunnelBuilder define a interface do motor de comparação
type FunnelBuilder interface {
	// Build gera o relatório de funil de um cliente para a data informada
	Build(client domain.Client, set domain.RecordSet, today time.Time) (*domain.FunnelReport, error)
}

// Service executa o pipeline janela -> agregação -> pivô -> formatação -> run rate
type Service struct {
	cutoffDay        int
	latencyDays      int
	defaultDimension string
	formatter        *Formatter
}

// NewService cria o motor de relatórios a partir da configuração
func NewService(cfg *config.Config) *Service {
	cutoffDay := cfg.Report.CutoffDay
	if cutoffDay <= 0 {
		cutoffDay = DefaultCutoffDay
	}
	latencyDays := cfg.Report.LatencyDays
	if latencyDays < 0 {
		latencyDays = DefaultLatencyDays
	}
	// Com o corte antes da latência, o fim da janela cairia antes do início do mês
	if cutoffDay < latencyDays {
		logrus.WithFields(logrus.Fields{
			"cutoff_day":   cutoffDay,
			"latency_days": latencyDays,
		}).Warn("Dia de corte menor que a latência de dados, usando a latência como corte")
		cutoffDay = latencyDays
	}

	return &Service{
		cutoffDay:        cutoffDay,
		latencyDays:      latencyDays,
		defaultDimension: cfg.Report.DefaultDimension,
		formatter:        NewFormatter(cfg.Report.CurrencySymbol),
	}
}

// Formatter expõe o formatador usado pelo serviço
func (s *Service) Formatter() *Formatter {
	return s.formatter
}

// Window resolve a janela do relatório para o conjunto de registros
func (s *Service) Window(set domain.RecordSet, today time.Time) domain.ReportWindow {
	window, err := ResolvePeriodForSet(today, set, s.cutoffDay, s.latencyDays)
	if err != nil {
		logrus.WithError(err).Warn("Sem data mínima nos registros, usando comparação mensal")
	}
	return window
}

func (s *Service) Build(client domain.Client, set domain.RecordSet, today time.Time) (*domain.FunnelReport, error) {
	window := s.Window(set, today)

	dimension := client.Dimension
	if dimension == "" {
		dimension = s.defaultDimension
	}

	rows, err := Aggregate(set, window, client.AccountType, dimension)
	if err != nil {
		return nil, err
	}
	if dropped := reservedDimensionRecords(set, window, dimension); dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"client":    client.Name,
			"dimension": dimension,
			"value":     domain.TotalKey,
			"records":   dropped,
		}).Warn("Registros com valor de dimensão reservado ignorados na agregação")
	}

	table, err := Reshape(rows, client.AccountType)
	if err != nil {
		return nil, err
	}

	report, err := s.formatter.Format(table, client.AccountType, dimension)
	if err != nil {
		return nil, err
	}

	var spend *float64
	if total, ok := table.Row(domain.TotalKey); ok {
		spend = total.Comparison(domain.MetricCost).Current
	}

	runRate, err := s.formatter.EstimateRunRate(spend, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client":       client.Name,
			"elapsed_days": runRate.ElapsedDays,
		}).WithError(err).Warn("Run rate indisponível para o período")
	}

	logrus.WithFields(logrus.Fields{
		"client":          client.Name,
		"reporting_start": window.StartString(),
		"reporting_end":   window.EndString(),
		"comparison_mode": window.ComparisonMode,
		"rows":            len(report.Rows),
		"run_rate":        describeRunRate(runRate),
	}).Debug("Relatório de funil calculado")

	return &domain.FunnelReport{
		Window:  window,
		Table:   table,
		Report:  report,
		RunRate: runRate,
	}, nil
}
