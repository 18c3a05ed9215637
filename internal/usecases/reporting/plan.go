package reporting

import (
	"strings"
	"time"

	"github.com/vfg2006/performance-report/internal/domain"
)

// CurrentPlanTasks mantém as tarefas do plano atual relevantes para o período:
// categoria "Active Workstream" ou vazia, e término a partir do reporting_start (ou sem término).
func CurrentPlanTasks(tasks []domain.PlanTask, reportingStart time.Time) []domain.PlanTask {
	start := dateOf(reportingStart)

	filtered := make([]domain.PlanTask, 0, len(tasks))
	for _, t := range tasks {
		category := strings.TrimSpace(t.Category)
		if category != "" && category != domain.PlanCategoryActiveWorkstream {
			continue
		}
		if t.EndDate != nil && dateOf(*t.EndDate).Before(start) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
