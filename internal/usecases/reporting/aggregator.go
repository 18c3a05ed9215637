package reporting

import (
	"sort"
	"strings"

	"github.com/vfg2006/performance-report/internal/domain"
)

type groupKey struct {
	period    domain.Period
	dimension string
}

// Aggregate filtra os registros para as janelas resolvidas, soma os contadores por
// (período, dimensão) e deriva as razões. Com dimensão, inclui uma linha Total por período
// recalculada a partir dos contadores somados.
func Aggregate(set domain.RecordSet, window domain.ReportWindow, accountType domain.AccountType, dimension string) ([]domain.AggregatedRow, error) {
	metricSet, ok := accountType.MetricSet()
	if !ok {
		return nil, NewConfigurationError(ErrUnknownAccountType, "", string(accountType))
	}

	dimension = strings.TrimSpace(dimension)
	if err := validateColumns(set, metricSet, dimension); err != nil {
		return nil, err
	}

	groups := make(map[groupKey][]domain.RawRecord)
	for _, record := range set.Records {
		date := dateOf(record.Date)
		if !window.Contains(date) {
			continue
		}

		key := groupKey{period: window.PeriodOf(date), dimension: domain.TotalKey}
		if dimension != "" {
			key.dimension = strings.TrimSpace(record.DimensionValue(dimension))
			if key.dimension == "" || key.dimension == domain.TotalKey {
				continue
			}
		}

		groups[key] = append(groups[key], record)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sortGroupKeys(keys)

	rows := make([]domain.AggregatedRow, 0, len(keys)+2)
	for _, k := range keys {
		values := sumCounters(groups[k], metricSet)
		deriveMetrics(values, metricSet)
		rows = append(rows, domain.AggregatedRow{
			Period:    k.period,
			Dimension: k.dimension,
			Values:    values,
		})
	}

	if dimension == "" {
		return rows, nil
	}

	for _, period := range []domain.Period{domain.PeriodCurrent, domain.PeriodPrevious} {
		total, ok := totalRow(rows, period, metricSet)
		if ok {
			rows = append(rows, total)
		}
	}

	return rows, nil
}

// reservedDimensionRecords conta os registros da janela cuja dimensão usa o nome da linha Total
func reservedDimensionRecords(set domain.RecordSet, window domain.ReportWindow, dimension string) int {
	dimension = strings.TrimSpace(dimension)
	if dimension == "" {
		return 0
	}
	count := 0
	for _, record := range set.Records {
		if window.Contains(dateOf(record.Date)) && strings.TrimSpace(record.DimensionValue(dimension)) == domain.TotalKey {
			count++
		}
	}
	return count
}

func validateColumns(set domain.RecordSet, metricSet domain.MetricSet, dimension string) error {
	if !set.HasColumn(domain.ColumnDate) {
		return NewConfigurationError(ErrMissingColumn, string(domain.ColumnDate), "")
	}
	for _, cm := range metricSet.Counters {
		column := cm.Counter.Column()
		if !set.HasColumn(column) {
			return NewConfigurationError(ErrMissingColumn, string(column), string(cm.Metric))
		}
	}
	if dimension != "" && !set.HasDimension(dimension) {
		return NewConfigurationError(ErrMissingDimension, dimension, "")
	}
	return nil
}

func sortGroupKeys(keys []groupKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].period != keys[j].period {
			return keys[i].period == domain.PeriodCurrent
		}
		return keys[i].dimension < keys[j].dimension
	})
}

func sumCounters(records []domain.RawRecord, metricSet domain.MetricSet) map[domain.Metric]*float64 {
	values := make(map[domain.Metric]*float64, len(metricSet.Order))
	for _, cm := range metricSet.Counters {
		column := make([]*float64, len(records))
		for i, r := range records {
			column[i] = r.CounterValue(cm.Counter)
		}
		values[cm.Metric] = sumValues(column)
	}
	return values
}

// totalRow soma os contadores das linhas do período e recalcula as razões
func totalRow(rows []domain.AggregatedRow, period domain.Period, metricSet domain.MetricSet) (domain.AggregatedRow, bool) {
	var periodRows []domain.AggregatedRow
	for _, r := range rows {
		if r.Period == period {
			periodRows = append(periodRows, r)
		}
	}
	if len(periodRows) == 0 {
		return domain.AggregatedRow{}, false
	}

	values := make(map[domain.Metric]*float64, len(metricSet.Order))
	for _, cm := range metricSet.Counters {
		column := make([]*float64, len(periodRows))
		for i, r := range periodRows {
			column[i] = r.Value(cm.Metric)
		}
		values[cm.Metric] = sumValues(column)
	}
	deriveMetrics(values, metricSet)

	return domain.AggregatedRow{
		Period:    period,
		Dimension: domain.TotalKey,
		Values:    values,
	}, true
}

func deriveMetrics(values map[domain.Metric]*float64, metricSet domain.MetricSet) {
	clicks := values[domain.MetricClicks]
	impressions := values[domain.MetricImpressions]
	cost := values[domain.MetricCost]
	conversions := values[metricSet.Conversion]

	for _, m := range metricSet.Derived {
		var v float64
		switch m {
		case domain.MetricCTR:
			v = Divide(clicks, impressions, WithMultiplier(100))
		case domain.MetricCPC:
			v = Divide(cost, clicks)
		case domain.MetricConversionRate:
			v = Divide(conversions, clicks, WithMultiplier(100))
		case domain.MetricCPA:
			v = Divide(cost, conversions)
		case domain.MetricROAS:
			v = Divide(values[metricSet.Revenue], cost, WithMultiplier(100))
		default:
			continue
		}
		values[m] = domain.Float(v)
	}
}
