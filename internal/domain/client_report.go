package domain

import "time"

// ClientReport é o objeto completo entregue ao notificador
type ClientReport struct {
	Client      Client       `json:"client"`
	Window      ReportWindow `json:"window"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Plan        []PlanTask   `json:"plan,omitempty"`
	Report      Report       `json:"report"`
	RunRate     RunRate      `json:"run_rate"`
	SiteContext *SiteContext `json:"site_context,omitempty"`
	Commentary  *Commentary  `json:"commentary,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// Subject é o assunto do e-mail do relatório
func (r ClientReport) Subject() string {
	return r.Client.Name + " Weekly Report"
}

// Estágios do processamento de um relatório
const (
	StagePlan        = "plan"
	StageFunnel      = "funnel"
	StageSiteContext = "site_context"
	StageCommentary  = "commentary"
	StageNotify      = "notify"
)

// Status de uma execução de relatório
type ReportRunStatus string

const (
	ReportRunStatusSent    ReportRunStatus = "sent"
	ReportRunStatusSkipped ReportRunStatus = "skipped"
	ReportRunStatusPreview ReportRunStatus = "preview"
)

// ReportRun registra o resultado de um relatório para um cliente
type ReportRun struct {
	ID             string          `json:"id"`
	BatchID        string          `json:"batch_id"`
	ClientName     string          `json:"client_name"`
	PeriodStart    time.Time       `json:"period_start"`
	PeriodEnd      time.Time       `json:"period_end"`
	ComparisonMode ComparisonMode  `json:"comparison_mode"`
	Status         ReportRunStatus `json:"status"`
	Stage          string          `json:"stage,omitempty"`
	Error          string          `json:"error,omitempty"`
	RunRate        string          `json:"run_rate,omitempty"`
	Report         *Report         `json:"report,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BatchResult resume uma execução completa do lote
type BatchResult struct {
	BatchID     string      `json:"batch_id"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt time.Time   `json:"completed_at"`
	Sent        int         `json:"sent"`
	Skipped     int         `json:"skipped"`
	Runs        []ReportRun `json:"runs"`
}

// CommentaryRequest monta o payload do serviço de comentários a partir do relatório
func (r ClientReport) CommentaryRequest() CommentaryRequest {
	plan := make([]PlanTaskPayload, 0, len(r.Plan))
	for _, t := range r.Plan {
		plan = append(plan, t.Payload())
	}

	return CommentaryRequest{Inputs: CommentaryInputs{
		Plan:             plan,
		Performance:      r.Report.DisplayMap(),
		SiteContext:      r.SiteContext,
		ReportStartDate:  r.StartDate,
		ReportEndDate:    r.EndDate,
		MonthlyBudget:    r.Client.Budget,
		ComparisonPeriod: r.Window.ComparisonMode,
		ClientContext:    r.Client.ClientContext,
		ProjectedRunRate: r.RunRate.Display,
	}}
}
