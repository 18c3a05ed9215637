package reporting

import (
	"sort"

	"github.com/vfg2006/performance-report/internal/domain"
)

// Reshape pivota as linhas agregadas em uma tabela larga com colunas
// {metric}__current, {metric}__previous, {metric}__delta e {metric}__pct.
func Reshape(rows []domain.AggregatedRow, accountType domain.AccountType) (domain.WideTable, error) {
	metricSet, ok := accountType.MetricSet()
	if !ok {
		return domain.WideTable{}, NewConfigurationError(ErrUnknownAccountType, "", string(accountType))
	}

	current := make(map[string]domain.AggregatedRow)
	previous := make(map[string]domain.AggregatedRow)
	for _, r := range rows {
		switch r.Period {
		case domain.PeriodCurrent:
			current[r.Dimension] = r
		case domain.PeriodPrevious:
			previous[r.Dimension] = r
		}
	}

	table := domain.WideTable{Columns: wideColumns(metricSet.Order)}
	for _, key := range orderedKeys(current, previous) {
		cur, hasCur := current[key]
		prev, hasPrev := previous[key]

		values := make(map[string]*float64, len(table.Columns))
		for _, m := range metricSet.Order {
			var c, p *float64
			if hasCur {
				c = cur.Value(m)
			}
			if hasPrev {
				p = prev.Value(m)
			}

			comparison := Compare(c, p)
			name := string(m)
			values[name+domain.SuffixCurrent] = comparison.Current
			values[name+domain.SuffixPrevious] = comparison.Previous
			values[name+domain.SuffixDelta] = comparison.Delta
			values[name+domain.SuffixPct] = comparison.PctChange
		}

		table.Rows = append(table.Rows, domain.WideRow{Key: key, Values: values})
	}

	return table, nil
}

// Compare monta a comparação de uma métrica. delta é nulo se um dos lados for nulo;
// pct é nulo quando previous é nulo ou zero.
func Compare(current, previous *float64) domain.ComparisonMetric {
	result := domain.ComparisonMetric{Current: current, Previous: previous}
	if current == nil || previous == nil {
		return result
	}

	delta := *current - *previous
	result.Delta = &delta
	if *previous != 0 {
		pct := delta / *previous
		result.PctChange = &pct
	}
	return result
}

func wideColumns(metrics []domain.Metric) []string {
	columns := make([]string, 0, len(metrics)*4)
	for _, suffix := range []string{domain.SuffixCurrent, domain.SuffixPrevious, domain.SuffixDelta, domain.SuffixPct} {
		for _, m := range metrics {
			columns = append(columns, string(m)+suffix)
		}
	}
	return columns
}

// orderedKeys devolve as dimensões em ordem alfabética com o Total por último
func orderedKeys(current, previous map[string]domain.AggregatedRow) []string {
	seen := make(map[string]struct{}, len(current)+len(previous))
	for k := range current {
		seen[k] = struct{}{}
	}
	for k := range previous {
		seen[k] = struct{}{}
	}

	_, hasTotal := seen[domain.TotalKey]
	delete(seen, domain.TotalKey)

	keys := make([]string, 0, len(seen)+1)
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if hasTotal {
		keys = append(keys, domain.TotalKey)
	}
	return keys
}
