package reporting

import (
	"time"

	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
)

const platformColumn = "Platform"

var (
	leadGenColumns = []domain.Column{
		domain.ColumnDate, domain.ColumnImpressions, domain.ColumnClicks, domain.ColumnCost, domain.ColumnConversions,
	}
	ecommerceColumns = append(append([]domain.Column{}, leadGenColumns...), domain.ColumnRevenue)
)

type recordSpec struct {
	date        time.Time
	platform    string
	impressions float64
	clicks      float64
	cost        float64
	conversions float64
	revenue     float64
}

func newRecord(s recordSpec) domain.RawRecord {
	return domain.RawRecord{
		Date:        s.date,
		Dimensions:  map[string]string{platformColumn: s.platform},
		Impressions: domain.Float(s.impressions),
		Clicks:      domain.Float(s.clicks),
		Cost:        domain.Float(s.cost),
		Conversions: domain.Float(s.conversions),
		Revenue:     domain.Float(s.revenue),
	}
}

func newRecordSet(columns []domain.Column, specs ...recordSpec) domain.RecordSet {
	set := domain.RecordSet{
		Columns:    columns,
		Dimensions: []string{platformColumn},
	}
	for _, s := range specs {
		set.Records = append(set.Records, newRecord(s))
	}
	return set
}

func testConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			CutoffDay:      DefaultCutoffDay,
			LatencyDays:    DefaultLatencyDays,
			CurrencySymbol: "£",
		},
	}
}

func findRow(rows []domain.AggregatedRow, period domain.Period, dimension string) (domain.AggregatedRow, bool) {
	for _, r := range rows {
		if r.Period == period && r.Dimension == dimension {
			return r, true
		}
	}
	return domain.AggregatedRow{}, false
}
