package reporting

import (
	"time"

	"github.com/vfg2006/performance-report/internal/domain"
)

const (
	DefaultCutoffDay   = 5
	DefaultLatencyDays = 2
)

// ResolvePeriod determina a janela atual, a janela de comparação e o modo de comparação.
// earliest nil indica conjunto de dados vazio e resulta em MonthOverMonth.
func ResolvePeriod(today time.Time, earliest *time.Time, cutoffDay, latencyDays int) domain.ReportWindow {
	day := dateOf(today)

	anchor := day
	cutoffApplied := day.Day() <= cutoffDay
	if cutoffApplied {
		anchor = firstOfMonth(day).AddDate(0, 0, -1)
	}

	start := firstOfMonth(anchor)
	monthEnd := lastOfMonth(anchor)

	dataCutoff := day.AddDate(0, 0, -latencyDays)
	if cutoffApplied {
		dataCutoff = anchor
	}

	end := monthEnd
	if dataCutoff.Before(monthEnd) {
		end = dataCutoff
	}

	window := domain.ReportWindow{
		Today:          day,
		Anchor:         anchor,
		CutoffApplied:  cutoffApplied,
		ReportingStart: start,
		ReportingEnd:   end,
		MonthEnd:       monthEnd,
		DataCutoff:     dataCutoff,
	}

	yoyAnchor := shiftMonths(start, -12)
	if earliest != nil && !yoyAnchor.Before(dateOf(*earliest)) {
		window.ComparisonMode = domain.YearOverYear
		window.PreviousStart = yoyAnchor
		window.PreviousEnd = shiftMonths(end, -12)
	} else {
		window.ComparisonMode = domain.MonthOverMonth
		window.PreviousStart = shiftMonths(start, -1)
		window.PreviousEnd = shiftMonths(end, -1)
	}

	return window
}

// ResolvePeriodForSet resolve a janela usando a menor data do conjunto
func ResolvePeriodForSet(today time.Time, set domain.RecordSet, cutoffDay, latencyDays int) (domain.ReportWindow, error) {
	earliest, ok := set.EarliestDate()
	if !ok {
		return ResolvePeriod(today, nil, cutoffDay, latencyDays), NewInsufficientDataError(ErrNoEarliestDate, "conjunto de registros vazio")
	}
	return ResolvePeriod(today, &earliest, cutoffDay, latencyDays), nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func lastOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// shiftMonths desloca a data em meses mantendo o dia; só limita ao tamanho do mês de destino
// quando o dia não existe nele (31/03 - 1 mês = 28/02, 30/04 - 1 mês = 30/03).
func shiftMonths(t time.Time, months int) time.Time {
	target := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	targetEnd := lastOfMonth(target)

	if t.Day() > targetEnd.Day() {
		return targetEnd
	}
	return time.Date(target.Year(), target.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween conta os dias de start até end, inclusive
func daysBetween(start, end time.Time) int {
	return int(dateOf(end).Sub(dateOf(start)).Hours()/24) + 1
}
