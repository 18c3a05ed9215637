package reporting

import (
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/pkg/utils"
)

// BuildSiteContext resume sessões, transações e receita do site para as duas janelas.
// Sem a coluna de sessões não há contexto e o resultado é nil.
func BuildSiteContext(set domain.RecordSet, window domain.ReportWindow) *domain.SiteContext {
	if !set.HasColumn(domain.ColumnSessions) {
		return nil
	}

	type bucket struct {
		sessions, transactions, revenue []*float64
	}
	buckets := map[domain.Period]*bucket{
		domain.PeriodCurrent:  {},
		domain.PeriodPrevious: {},
	}

	for _, r := range set.Records {
		date := dateOf(r.Date)
		if !window.Contains(date) {
			continue
		}
		b := buckets[window.PeriodOf(date)]
		b.sessions = append(b.sessions, r.Sessions)
		b.transactions = append(b.transactions, r.Conversions)
		b.revenue = append(b.revenue, r.Revenue)
	}

	siteContext := &domain.SiteContext{Mode: window.ComparisonMode}
	for _, period := range []domain.Period{domain.PeriodCurrent, domain.PeriodPrevious} {
		b := buckets[period]
		sessions := sumValues(b.sessions)
		transactions := sumValues(b.transactions)
		revenue := sumValues(b.revenue)

		siteContext.Rows = append(siteContext.Rows, domain.SiteContextRow{
			Label:              siteContextLabel(window, period),
			Period:             period,
			Sessions:           valueOrZero(sessions),
			Transactions:       valueOrZero(transactions),
			TransactionRevenue: utils.RoundWithTwoDecimalPlace(valueOrZero(revenue)),
			ConversionRate:     utils.RoundWithTwoDecimalPlace(Divide(transactions, sessions, WithMultiplier(100))),
			AOV:                utils.RoundWithTwoDecimalPlace(Divide(revenue, transactions)),
		})
	}

	return siteContext
}

func siteContextLabel(window domain.ReportWindow, period domain.Period) string {
	start := window.ReportingStart
	if period == domain.PeriodPrevious {
		start = window.PreviousStart
	}
	if window.ComparisonMode == domain.YearOverYear {
		return start.Format("2006")
	}
	return start.Format("01/2006")
}

func valueOrZero(v *float64) float64 {
	if !defined(v) {
		return 0
	}
	return *v
}
