package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/domain"
)

func testReport() domain.ClientReport {
	end := time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC)
	return domain.ClientReport{
		Client: domain.Client{
			Name:      "Acme & Co",
			Dashboard: "https://dash.example.com/acme",
			Budget:    "£3,000",
		},
		Window:    domain.ReportWindow{ComparisonMode: domain.MonthOverMonth},
		StartDate: "01/04/2025",
		EndDate:   "20/04/2025",
		Report: domain.Report{
			AccountType: domain.AccountTypeEcommerce,
			Dimension:   "Platform",
			Rows: []domain.ReportRow{
				{Key: "Google", Metrics: []domain.ReportMetric{
					{Metric: domain.MetricROAS, Display: domain.MetricDisplay{Current: "400.00%", Pct: "+60.00%"}},
				}},
				{Key: domain.TotalKey, Metrics: []domain.ReportMetric{
					{Metric: domain.MetricROAS, Display: domain.MetricDisplay{Current: "380.00%", Pct: "-5.00%"}},
				}},
			},
		},
		RunRate: domain.RunRate{Available: true, Display: "£1,500.00"},
		SiteContext: &domain.SiteContext{Mode: domain.MonthOverMonth, Rows: []domain.SiteContextRow{
			{Label: "04/2025", Sessions: 2000, Transactions: 40, TransactionRevenue: 4000, ConversionRate: 2, AOV: 100},
		}},
		Plan: []domain.PlanTask{
			{Name: "PMax restructure", Description: "Split asset groups", Status: "In Progress", EndDate: &end},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	html, err := renderer.Render(testReport())
	require.NoError(t, err)

	assert.Contains(t, html, "Acme &amp; Co Weekly Report")
	assert.Contains(t, html, "01/04/2025 to 20/04/2025")
	assert.Contains(t, html, "compared with the previous month")
	assert.Contains(t, html, "https://dash.example.com/acme")
	assert.Contains(t, html, "Projected spend: £1,500.00")
	assert.Contains(t, html, ">ROAS</th>")
	assert.Contains(t, html, "400.00%")
	assert.Contains(t, html, colorUp)
	assert.Contains(t, html, colorDown)
	assert.Contains(t, html, "04/2025")
	assert.Contains(t, html, "2.00%")
	assert.Contains(t, html, "PMax restructure")
	assert.Contains(t, html, "30/05/2025")
	assert.NotContains(t, html, "Performance overview")
}

func TestRenderer_RenderWithCommentary(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	report := testReport()
	report.SiteContext = nil
	report.Client.Dashboard = ""
	report.Commentary = &domain.Commentary{
		PlanOverview:        domain.PlanOverview{Tasks: []domain.CommentaryTask{{Task: "Feed fixes", Summary: "Fixing titles."}}},
		PerformanceOverview: domain.PerformanceOverview{Summary: "Revenue grew <strongly>."},
		PerformancePoints: []domain.PerformancePoint{
			{Title: "ROAS up", Summary: "a"}, {Title: "CPC down", Summary: "b"}, {Title: "CTR flat", Summary: "c"},
		},
	}

	html, err := renderer.Render(report)
	require.NoError(t, err)

	assert.Contains(t, html, "Performance overview")
	assert.Contains(t, html, "Revenue grew &lt;strongly&gt;.")
	assert.Contains(t, html, "CPC down")
	assert.Contains(t, html, "Feed fixes")
	assert.NotContains(t, html, "PMax restructure")
	assert.NotContains(t, html, "Site context")
	assert.NotContains(t, html, "Open dashboard")
}

func TestTrendColor(t *testing.T) {
	assert.Equal(t, colorUp, trendColor("+3.15%"))
	assert.Equal(t, colorDown, trendColor("-0.20%"))
	assert.Equal(t, colorNeutral, trendColor("-"))
	assert.Equal(t, colorNeutral, trendColor("0.00%"))
}
