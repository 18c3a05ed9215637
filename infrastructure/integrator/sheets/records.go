package sheets

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/reporting"
)

var defaultDateLayouts = []string{time.DateOnly, domain.ReportDateLayout, time.DateTime}

// FactoryRecordSet converte os valores da aba de funil em um RecordSet.
// Cabeçalhos que não são colunas canônicas viram dimensões; linhas com data inválida são descartadas.
func FactoryRecordSet(values [][]string, columns config.ReportColumns, layouts []string, accountType domain.AccountType) (domain.RecordSet, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return domain.RecordSet{}, ErrEmptySheet
	}
	if len(layouts) == 0 {
		layouts = defaultDateLayouts
	}

	header := values[0]
	canonical := headerIndex(header, columns)

	set := domain.RecordSet{}
	dimensionIndex := make(map[string]int)
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		if _, isCanonical := canonical.byIndex[i]; isCanonical {
			continue
		}
		dimensionIndex[name] = i
		set.Dimensions = append(set.Dimensions, name)
	}

	conversionIdx, hasConversions := canonical.conversionSource(accountType)
	for _, c := range []domain.Column{
		domain.ColumnDate, domain.ColumnImpressions, domain.ColumnClicks, domain.ColumnCost,
		domain.ColumnRevenue, domain.ColumnSessions, domain.ColumnTransactions,
	} {
		if _, ok := canonical.byColumn[c]; ok {
			set.Columns = append(set.Columns, c)
		}
	}
	if hasConversions {
		set.Columns = append(set.Columns, domain.ColumnConversions)
	}

	dateIdx, hasDate := canonical.byColumn[domain.ColumnDate]
	if !hasDate {
		return set, nil
	}

	dropped := 0
	for _, row := range values[1:] {
		date, ok := parseDate(cell(row, dateIdx), layouts)
		if !ok {
			dropped++
			continue
		}

		record := domain.RawRecord{
			Date:        date,
			Dimensions:  make(map[string]string, len(dimensionIndex)),
			Impressions: canonical.number(row, domain.ColumnImpressions),
			Clicks:      canonical.number(row, domain.ColumnClicks),
			Cost:        canonical.number(row, domain.ColumnCost),
			Revenue:     canonical.number(row, domain.ColumnRevenue),
			Sessions:    canonical.number(row, domain.ColumnSessions),
		}
		if hasConversions {
			record.Conversions = reporting.ParseNumber(cell(row, conversionIdx))
		}
		for name, idx := range dimensionIndex {
			record.Dimensions[name] = strings.TrimSpace(cell(row, idx))
		}

		set.Records = append(set.Records, record)
	}

	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"dropped_rows": dropped,
			"total_rows":   len(values) - 1,
		}).Debug("sheets: linhas descartadas por data inválida")
	}

	return set, nil
}

type columnIndex struct {
	byColumn map[domain.Column]int
	byIndex  map[int]domain.Column
}

func headerIndex(header []string, columns config.ReportColumns) columnIndex {
	names := map[string]domain.Column{}
	for column, name := range map[domain.Column]string{
		domain.ColumnDate:         columns.Date,
		domain.ColumnImpressions:  columns.Impressions,
		domain.ColumnClicks:       columns.Clicks,
		domain.ColumnCost:         columns.Cost,
		domain.ColumnConversions:  columns.Conversions,
		domain.ColumnTransactions: columns.Transactions,
		domain.ColumnRevenue:      columns.Revenue,
		domain.ColumnSessions:     columns.Sessions,
	} {
		if name != "" {
			names[strings.ToLower(strings.TrimSpace(name))] = column
		}
	}

	idx := columnIndex{
		byColumn: make(map[domain.Column]int),
		byIndex:  make(map[int]domain.Column),
	}
	for i, h := range header {
		column, ok := names[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, seen := idx.byColumn[column]; seen {
			continue
		}
		idx.byColumn[column] = i
		idx.byIndex[i] = column
	}
	return idx
}

// conversionSource escolhe a coluna que alimenta o contador de conversões:
// Ecommerce prefere Transactions, Lead Gen prefere Conversions
func (c columnIndex) conversionSource(accountType domain.AccountType) (int, bool) {
	preferred := []domain.Column{domain.ColumnConversions, domain.ColumnTransactions}
	if accountType == domain.AccountTypeEcommerce {
		preferred = []domain.Column{domain.ColumnTransactions, domain.ColumnConversions}
	}
	for _, column := range preferred {
		if i, ok := c.byColumn[column]; ok {
			return i, true
		}
	}
	return 0, false
}

func (c columnIndex) number(row []string, column domain.Column) *float64 {
	i, ok := c.byColumn[column]
	if !ok {
		return nil
	}
	return reporting.ParseNumber(cell(row, i))
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseDate(raw string, layouts []string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
