package domain

import "time"

// Categoria de tarefas mantidas no plano ativo
const PlanCategoryActiveWorkstream = "Active Workstream"

// PlanTask é uma tarefa do plano de 90 dias
type PlanTask struct {
	Name        string     `json:"name"`
	Description string     `json:"desc"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"-"`
	EndDate     *time.Time `json:"-"`
	Platform    string     `json:"platform,omitempty"`
}

// Plan é uma aba da planilha de plano
type Plan struct {
	Title   string     `json:"title"`
	Current bool       `json:"current"`
	Start   *time.Time `json:"-"`
	End     *time.Time `json:"-"`
	Tasks   []PlanTask `json:"tasks"`
}

// PlanTaskPayload é a tarefa serializada com datas dd/mm/yyyy
type PlanTaskPayload struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Platform    string `json:"platform,omitempty"`
}

// Payload converte a tarefa para o formato enviado ao serviço de comentários
func (t PlanTask) Payload() PlanTaskPayload {
	return PlanTaskPayload{
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status,
		StartDate:   formatOptionalDate(t.StartDate),
		EndDate:     formatOptionalDate(t.EndDate),
		Platform:    t.Platform,
	}
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(ReportDateLayout)
}
