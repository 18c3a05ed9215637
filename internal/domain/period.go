package domain

import "time"

// ReportDateLayout é o formato de data usado no relatório e no payload de comentários
const ReportDateLayout = "02/01/2006"

// ComparisonMode define a granularidade da comparação
type ComparisonMode string

const (
	MonthOverMonth ComparisonMode = "MoM"
	YearOverYear   ComparisonMode = "YoY"
)

// Period classifica um registro dentro da janela atual ou da anterior
type Period string

const (
	PeriodCurrent  Period = "Current"
	PeriodPrevious Period = "Previous"
)

// ReportWindow é o resultado da resolução de períodos para uma execução
type ReportWindow struct {
	Today          time.Time      `json:"today"`
	Anchor         time.Time      `json:"anchor"`
	CutoffApplied  bool           `json:"cutoff_applied"`
	ReportingStart time.Time      `json:"reporting_start"`
	ReportingEnd   time.Time      `json:"reporting_end"`
	MonthEnd       time.Time      `json:"month_end"`
	DataCutoff     time.Time      `json:"data_cutoff"`
	ComparisonMode ComparisonMode `json:"comparison_mode"`
	PreviousStart  time.Time      `json:"previous_start"`
	PreviousEnd    time.Time      `json:"previous_end"`
}

// Contains indica se a data pertence à janela atual ou à anterior
func (w ReportWindow) Contains(date time.Time) bool {
	return inRange(date, w.ReportingStart, w.ReportingEnd) || inRange(date, w.PreviousStart, w.PreviousEnd)
}

// PeriodOf classifica a data; registros no reporting_start pertencem ao período atual
func (w ReportWindow) PeriodOf(date time.Time) Period {
	if !date.Before(w.ReportingStart) {
		return PeriodCurrent
	}
	return PeriodPrevious
}

func (w ReportWindow) StartString() string {
	return w.ReportingStart.Format(ReportDateLayout)
}

func (w ReportWindow) EndString() string {
	return w.ReportingEnd.Format(ReportDateLayout)
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
