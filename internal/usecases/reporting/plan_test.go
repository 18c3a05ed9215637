package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/performance-report/internal/domain"
)

func TestCurrentPlanTasks(t *testing.T) {
	start := date(2025, time.April, 1)
	ended := date(2025, time.March, 31)
	endsOnStart := date(2025, time.April, 1)
	later := date(2025, time.June, 30)

	tasks := []domain.PlanTask{
		{Name: "Ativa sem término", Category: domain.PlanCategoryActiveWorkstream},
		{Name: "Sem categoria", Category: ""},
		{Name: "Encerrada antes do período", Category: domain.PlanCategoryActiveWorkstream, EndDate: &ended},
		{Name: "Termina no início do período", Category: domain.PlanCategoryActiveWorkstream, EndDate: &endsOnStart},
		{Name: "Backlog", Category: "Backlog", EndDate: &later},
		{Name: "Futura", Category: " Active Workstream ", EndDate: &later},
	}

	result := CurrentPlanTasks(tasks, start)

	names := make([]string, 0, len(result))
	for _, task := range result {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"Ativa sem término", "Sem categoria", "Termina no início do período", "Futura"}, names)
}

func TestCurrentPlanTasks_Empty(t *testing.T) {
	assert.Empty(t, CurrentPlanTasks(nil, date(2025, time.April, 1)))
}
