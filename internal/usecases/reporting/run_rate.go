package reporting

import (
	"fmt"

	"github.com/vfg2006/performance-report/internal/domain"
)

// RunRateUnavailable é exibido quando não é possível projetar o gasto
const RunRateUnavailable = "N/A"

// EstimateRunRate projeta o gasto do mês: (spend / dias decorridos) * dias do mês.
// Os dias decorridos vão do reporting_start ao data_cutoff, inclusive.
func (f *Formatter) EstimateRunRate(spend *float64, window domain.ReportWindow) (domain.RunRate, error) {
	result := domain.RunRate{
		Spend:       spend,
		ElapsedDays: daysBetween(window.ReportingStart, window.DataCutoff),
		TotalDays:   daysBetween(window.ReportingStart, window.MonthEnd),
		Display:     RunRateUnavailable,
	}

	if result.ElapsedDays <= 0 {
		result.ElapsedDays = 0
		return result, NewInsufficientDataError(ErrRunRateUnavailable, "nenhum dia decorrido no período")
	}
	if !defined(spend) {
		return result, NewInsufficientDataError(ErrRunRateUnavailable, "gasto do período ausente")
	}

	elapsed := float64(result.ElapsedDays)
	projected := Divide(spend, &elapsed) * float64(result.TotalDays)

	result.Available = true
	result.Projected = &projected
	result.Display = f.Currency(&projected)
	return result, nil
}

// describeRunRate resume o run rate para logs
func describeRunRate(r domain.RunRate) string {
	if !r.Available {
		return RunRateUnavailable
	}
	return fmt.Sprintf("%s (%d/%d dias)", r.Display, r.ElapsedDays, r.TotalDays)
}
