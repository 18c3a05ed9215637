package domain

// TotalKey é a chave sintética da linha de totais
const TotalKey = "Total"

// AggregatedRow são os contadores somados e as razões derivadas de um grupo
type AggregatedRow struct {
	Period    Period              `json:"period"`
	Dimension string              `json:"dimension"`
	Values    map[Metric]*float64 `json:"values"`
}

// Value retorna o valor de uma métrica, nil quando ausente
func (r AggregatedRow) Value(m Metric) *float64 {
	if r.Values == nil {
		return nil
	}
	return r.Values[m]
}

// ComparisonMetric compara o período atual com o anterior para uma métrica
type ComparisonMetric struct {
	Current   *float64 `json:"current"`
	Previous  *float64 `json:"previous"`
	Delta     *float64 `json:"delta"`
	PctChange *float64 `json:"pct_change"`
}

// Sufixos das colunas da tabela larga
const (
	SuffixCurrent  = "__current"
	SuffixPrevious = "__previous"
	SuffixDelta    = "__delta"
	SuffixPct      = "__pct"
)

// WideRow é uma linha da tabela larga, indexada por "{metric}__{sufixo}"
type WideRow struct {
	Key    string              `json:"key"`
	Values map[string]*float64 `json:"values"`
}

// Comparison lê as quatro colunas de uma métrica
func (r WideRow) Comparison(m Metric) ComparisonMetric {
	name := string(m)
	return ComparisonMetric{
		Current:   r.Values[name+SuffixCurrent],
		Previous:  r.Values[name+SuffixPrevious],
		Delta:     r.Values[name+SuffixDelta],
		PctChange: r.Values[name+SuffixPct],
	}
}

// WideTable é o resultado pivotado: uma linha por valor de dimensão mais o total
type WideTable struct {
	Columns []string  `json:"columns"`
	Rows    []WideRow `json:"rows"`
}

// Row procura a linha pela chave
func (t WideTable) Row(key string) (WideRow, bool) {
	for _, r := range t.Rows {
		if r.Key == key {
			return r, true
		}
	}
	return WideRow{}, false
}

// MetricDisplay são as representações de exibição de uma ComparisonMetric
type MetricDisplay struct {
	Current  string `json:"curr"`
	Previous string `json:"prev"`
	Delta    string `json:"delta"`
	Pct      string `json:"pct"`
}

// ReportMetric mantém os valores numéricos e as strings formatadas
type ReportMetric struct {
	Metric  Metric           `json:"metric"`
	Values  ComparisonMetric `json:"values"`
	Display MetricDisplay    `json:"display"`
}

// ReportRow agrupa as métricas de um valor de dimensão
type ReportRow struct {
	Key     string         `json:"key"`
	Metrics []ReportMetric `json:"metrics"`
}

// Metric procura a métrica na linha
func (r ReportRow) Metric(m Metric) (ReportMetric, bool) {
	for _, rm := range r.Metrics {
		if rm.Metric == m {
			return rm, true
		}
	}
	return ReportMetric{}, false
}

// Report é o resultado final formatado do motor de comparação
type Report struct {
	AccountType AccountType `json:"account_type"`
	Dimension   string      `json:"dimension,omitempty"`
	Rows        []ReportRow `json:"rows"`
}

// Row procura a linha pela chave
func (r Report) Row(key string) (ReportRow, bool) {
	for _, row := range r.Rows {
		if row.Key == key {
			return row, true
		}
	}
	return ReportRow{}, false
}

// Total retorna a linha de totais
func (r Report) Total() (ReportRow, bool) {
	return r.Row(TotalKey)
}

// DisplayMap gera o mapa aninhado dimensão -> métrica -> curr/prev/delta/pct usado no template e no payload
func (r Report) DisplayMap() map[string]map[string]MetricDisplay {
	out := make(map[string]map[string]MetricDisplay, len(r.Rows))
	for _, row := range r.Rows {
		metrics := make(map[string]MetricDisplay, len(row.Metrics))
		for _, m := range row.Metrics {
			metrics[string(m.Metric)] = m.Display
		}
		out[row.Key] = metrics
	}
	return out
}

// RunRate é a projeção do gasto ao fim do mês
type RunRate struct {
	Available   bool     `json:"available"`
	Spend       *float64 `json:"spend"`
	Projected   *float64 `json:"projected"`
	ElapsedDays int      `json:"elapsed_days"`
	TotalDays   int      `json:"total_days"`
	Display     string   `json:"display"`
}

// FunnelReport reúne a janela resolvida, o relatório formatado e o run rate
type FunnelReport struct {
	Window  ReportWindow `json:"window"`
	Table   WideTable    `json:"-"`
	Report  Report       `json:"report"`
	RunRate RunRate      `json:"run_rate"`
}
