package sheets

import (
	"strings"
	"time"

	"github.com/vfg2006/performance-report/internal/domain"
)

const (
	// Linha com as datas das semanas do plano
	planWeeksRow = 3
	// Coluna onde fica o cabeçalho "Task"
	planHeaderColumn = 1
	// A última semana do plano termina 5 dias após o seu início
	planLastWeekDays = 5
)

var planDateLayouts = []string{domain.ReportDateLayout, "02/01/06", time.DateOnly}

// FactoryPlan converte uma aba do plano de 90 dias.
// Linhas sem descrição são títulos de plataforma e definem a plataforma das tarefas seguintes.
func FactoryPlan(title string, values [][]string, headerCell string, current bool) (*domain.Plan, error) {
	if headerCell == "" {
		headerCell = "Task"
	}

	headerRow := -1
	for i, row := range values {
		if strings.TrimSpace(cell(row, planHeaderColumn)) == headerCell {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, ErrPlanHeaderNotFound
	}

	plan := &domain.Plan{
		Title:   title,
		Current: current,
		Tasks:   make([]domain.PlanTask, 0),
	}

	if len(values) > planWeeksRow {
		weeks := make([]time.Time, 0)
		for _, raw := range values[planWeeksRow] {
			if d, ok := parseDate(raw, planDateLayouts); ok {
				weeks = append(weeks, d)
			}
		}
		if len(weeks) > 0 {
			start := weeks[0]
			end := weeks[len(weeks)-1].AddDate(0, 0, planLastWeekDays)
			plan.Start, plan.End = &start, &end
		}
	}

	columns := make(map[string]int)
	for i, h := range values[headerRow] {
		if name := strings.TrimSpace(h); name != "" {
			columns[name] = i
		}
	}
	get := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(cell(row, i))
	}

	platform := ""
	for _, row := range values[headerRow+1:] {
		name := get(row, headerCell)
		description := get(row, "Description")
		if name == "" && description == "" {
			continue
		}
		if description == "" {
			platform = name
			continue
		}

		plan.Tasks = append(plan.Tasks, domain.PlanTask{
			Name:        name,
			Description: description,
			Category:    get(row, "Category"),
			Status:      get(row, "Status"),
			StartDate:   optionalDate(get(row, "Start Date")),
			EndDate:     optionalDate(get(row, "End Date")),
			Platform:    platform,
		})
	}

	return plan, nil
}

func optionalDate(raw string) *time.Time {
	d, ok := parseDate(raw, planDateLayouts)
	if !ok {
		return nil
	}
	return &d
}
