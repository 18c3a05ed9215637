package domain

// CommentaryTask é o resumo de uma tarefa do plano gerado pelo modelo
type CommentaryTask struct {
	Task        string `json:"task"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Summary     string `json:"summary"`
}

type PlanOverview struct {
	Tasks []CommentaryTask `json:"tasks" validate:"dive"`
}

type PerformanceOverview struct {
	Summary string `json:"summary" validate:"required"`
}

type PerformancePoint struct {
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary" validate:"required"`
}

// Commentary é o texto estruturado devolvido pelo serviço de comentários
type Commentary struct {
	PlanOverview        PlanOverview        `json:"plan_overview"`
	PerformanceOverview PerformanceOverview `json:"performance_overview"`
	PerformancePoints   []PerformancePoint  `json:"performance_points" validate:"len=3,dive"`
}

// CommentaryInputs é o payload estruturado enviado ao serviço de comentários
type CommentaryInputs struct {
	Plan             []PlanTaskPayload                   `json:"plans_90_day"`
	Performance      map[string]map[string]MetricDisplay `json:"performance"`
	SiteContext      *SiteContext                        `json:"ga4_context,omitempty"`
	ReportStartDate  string                              `json:"report_start_date"`
	ReportEndDate    string                              `json:"report_end_date"`
	MonthlyBudget    string                              `json:"monthly_budget"`
	ComparisonPeriod ComparisonMode                      `json:"comparison_period"`
	ClientContext    string                              `json:"client_context"`
	ProjectedRunRate string                              `json:"run_rate"`
}

// CommentaryRequest envolve os inputs como no contrato do serviço
type CommentaryRequest struct {
	Inputs CommentaryInputs `json:"inputs"`
}
