package email

import (
	_ "embed"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/osteele/liquid"
	"github.com/vfg2006/performance-report/internal/domain"
)

//go:embed templates/report.html
var reportTemplate string

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	colorUp      = "#1a7f37"
	colorDown    = "#c62828"
	colorNeutral = "#666666"
)

// Renderer monta o HTML do relatório a partir do template Liquid
type Renderer struct {
	template *liquid.Template
}

func NewRenderer() (*Renderer, error) {
	engine := liquid.NewEngine()
	engine.RegisterFilter("trend_color", trendColor)

	tpl, err := engine.ParseString(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("email: template inválido: %w", err)
	}
	return &Renderer{template: tpl}, nil
}

// Render devolve o corpo HTML do e-mail
func (r *Renderer) Render(report domain.ClientReport) (string, error) {
	bindings, err := bindingsFor(report)
	if err != nil {
		return "", err
	}

	out, renderErr := r.template.RenderString(bindings)
	if renderErr != nil {
		return "", fmt.Errorf("email: erro ao renderizar: %w", renderErr)
	}
	return out, nil
}

type viewClient struct {
	Name      string `json:"name"`
	Dashboard string `json:"dashboard,omitempty"`
	Budget    string `json:"budget,omitempty"`
}

type viewPeriod struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	ComparisonLabel string `json:"comparison_label"`
}

type viewMetric struct {
	Name     string `json:"name"`
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Delta    string `json:"delta"`
	Pct      string `json:"pct"`
}

type viewRow struct {
	Key     string       `json:"key"`
	Total   bool         `json:"total"`
	Metrics []viewMetric `json:"metrics"`
}

type viewSiteContext struct {
	Label          string `json:"label"`
	Sessions       string `json:"sessions"`
	Transactions   string `json:"transactions"`
	Revenue        string `json:"revenue"`
	ConversionRate string `json:"conversion_rate"`
	AOV            string `json:"aov"`
}

type view struct {
	Client      viewClient              `json:"client"`
	Period      viewPeriod              `json:"period"`
	Dimension   string                  `json:"dimension"`
	RunRate     string                  `json:"run_rate"`
	MetricNames []string                `json:"metric_names"`
	Rows        []viewRow               `json:"rows"`
	SiteContext []viewSiteContext       `json:"site_context,omitempty"`
	Commentary  *domain.Commentary      `json:"commentary,omitempty"`
	Tasks       []domain.CommentaryTask `json:"tasks"`
}

// bindingsFor converte o relatório em um mapa simples para o Liquid
func bindingsFor(report domain.ClientReport) (map[string]any, error) {
	v := view{
		Client: viewClient{
			Name:      report.Client.Name,
			Dashboard: report.Client.Dashboard,
			Budget:    report.Client.Budget,
		},
		Period: viewPeriod{
			Start:           report.StartDate,
			End:             report.EndDate,
			ComparisonLabel: comparisonLabel(report.Window.ComparisonMode),
		},
		Dimension:   report.Report.Dimension,
		RunRate:     report.RunRate.Display,
		Commentary:  report.Commentary,
		MetricNames: make([]string, 0),
		Rows:        make([]viewRow, 0, len(report.Report.Rows)),
		Tasks:       planTasks(report),
	}

	for i, row := range report.Report.Rows {
		vr := viewRow{Key: row.Key, Total: row.Key == domain.TotalKey}
		for _, m := range row.Metrics {
			if i == 0 {
				v.MetricNames = append(v.MetricNames, string(m.Metric))
			}
			vr.Metrics = append(vr.Metrics, viewMetric{
				Name:     string(m.Metric),
				Current:  m.Display.Current,
				Previous: m.Display.Previous,
				Delta:    m.Display.Delta,
				Pct:      m.Display.Pct,
			})
		}
		v.Rows = append(v.Rows, vr)
	}

	if report.SiteContext != nil {
		for _, row := range report.SiteContext.Rows {
			v.SiteContext = append(v.SiteContext, viewSiteContext{
				Label:          row.Label,
				Sessions:       fmt.Sprintf("%.0f", row.Sessions),
				Transactions:   fmt.Sprintf("%.0f", row.Transactions),
				Revenue:        fmt.Sprintf("%.2f", row.TransactionRevenue),
				ConversionRate: fmt.Sprintf("%.2f%%", row.ConversionRate),
				AOV:            fmt.Sprintf("%.2f", row.AOV),
			})
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	bindings := make(map[string]any)
	if err := json.Unmarshal(data, &bindings); err != nil {
		return nil, err
	}
	return bindings, nil
}

// planTasks usa o resumo do comentário quando existe; senão as tarefas do plano
func planTasks(report domain.ClientReport) []domain.CommentaryTask {
	if report.Commentary != nil && len(report.Commentary.PlanOverview.Tasks) > 0 {
		return report.Commentary.PlanOverview.Tasks
	}

	tasks := make([]domain.CommentaryTask, 0, len(report.Plan))
	for _, t := range report.Plan {
		p := t.Payload()
		tasks = append(tasks, domain.CommentaryTask{
			Task:        p.Name,
			Description: p.Description,
			Status:      p.Status,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Summary:     p.Description,
		})
	}
	return tasks
}

func comparisonLabel(mode domain.ComparisonMode) string {
	if mode == domain.YearOverYear {
		return "compared with the same period last year"
	}
	return "compared with the previous month"
}

func trendColor(pct string) string {
	switch {
	case strings.HasPrefix(pct, "+"):
		return colorUp
	case strings.HasPrefix(pct, "-") && len(pct) > 1:
		return colorDown
	default:
		return colorNeutral
	}
}
