package dispatching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/reporting"
	"github.com/vfg2006/performance-report/pkg/utils"
)

// RunOptions controla uma execução do lote
type RunOptions struct {
	// Today é a data de referência; zero usa o relógio no fuso configurado
	Today time.Time
	// Client restringe a execução a um cliente
	Client string
}

// Service orquestra plano -> funil -> contexto do site -> comentário -> envio para cada cliente
type Service struct {
	clients     ClientSource
	data        DataSource
	plans       PlanSource
	engine      reporting.FunnelBuilder
	notifier    Notifier
	commentator Commentator
	runs        RunRepository
	recorder    Recorder
	location    *time.Location
	now         func() time.Time
}

// NewService cria o serviço de envio em lote
func NewService(
	cfg *config.Config,
	clients ClientSource,
	data DataSource,
	plans PlanSource,
	engine reporting.FunnelBuilder,
	notifier Notifier,
) *Service {
	return &Service{
		clients:  clients,
		data:     data,
		plans:    plans,
		engine:   engine,
		notifier: notifier,
		location: cfg.Location(),
		now:      time.Now,
	}
}

// WithCommentator habilita a geração de comentários
func (s *Service) WithCommentator(commentator Commentator) *Service {
	s.commentator = commentator
	return s
}

// WithHistory habilita o registro das execuções
func (s *Service) WithHistory(runs RunRepository) *Service {
	s.runs = runs
	return s
}

// WithMetrics habilita as métricas das execuções
func (s *Service) WithMetrics(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

func (s *Service) RunBatch(ctx context.Context, opts RunOptions) (*domain.BatchResult, error) {
	today := s.today(opts.Today)

	clients, err := s.clients.GetClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter clientes: %w", err)
	}

	if opts.Client != "" {
		client, found := findClient(clients, opts.Client)
		if !found {
			return nil, ErrClientNotFound
		}
		clients = []domain.Client{client}
	}

	result := &domain.BatchResult{
		BatchID:   uuid.NewString(),
		StartedAt: s.now(),
		Runs:      make([]domain.ReportRun, 0, len(clients)),
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"clients":  len(clients),
		"today":    today.Format(time.DateOnly),
	}).Info("Iniciando lote de relatórios")

	for _, client := range clients {
		if err := ctx.Err(); err != nil {
			result.CompletedAt = s.now()
			return result, err
		}

		run := s.runClient(ctx, result.BatchID, client, today)
		if run.Status == domain.ReportRunStatusSent {
			result.Sent++
		} else {
			result.Skipped++
		}
		result.Runs = append(result.Runs, run)
	}

	result.CompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"sent":     result.Sent,
		"skipped":  result.Skipped,
		"duration": result.CompletedAt.Sub(result.StartedAt).String(),
	}).Info("Lote de relatórios concluído")

	return result, nil
}

// FindClient busca o cliente pelo nome na fonte de clientes; ErrClientNotFound quando não existe
func (s *Service) FindClient(ctx context.Context, clientName string) (domain.Client, error) {
	clients, err := s.clients.GetClients(ctx)
	if err != nil {
		return domain.Client{}, fmt.Errorf("erro ao obter clientes: %w", err)
	}

	client, found := findClient(clients, clientName)
	if !found {
		return domain.Client{}, ErrClientNotFound
	}
	return client, nil
}

// Preview monta o relatório de um cliente sem comentário e sem envio
func (s *Service) Preview(ctx context.Context, clientName string, today time.Time) (*domain.ClientReport, error) {
	client, err := s.FindClient(ctx, clientName)
	if err != nil {
		return nil, err
	}

	report, err := s.build(ctx, client, s.today(today), false)
	if err != nil {
		s.observe(domain.ReportRunStatusSkipped, StageOf(err))
		return nil, err
	}

	s.observe(domain.ReportRunStatusPreview, "")
	return report, nil
}

// runClient processa um cliente; falhas ficam registradas na execução e não interrompem o lote
func (s *Service) runClient(ctx context.Context, batchID string, client domain.Client, today time.Time) domain.ReportRun {
	run := domain.ReportRun{
		ID:         newRunID(),
		BatchID:    batchID,
		ClientName: client.Name,
		CreatedAt:  s.now(),
	}

	report, err := s.build(ctx, client, today, true)
	if report != nil && !report.Window.ReportingStart.IsZero() {
		run.PeriodStart = report.Window.ReportingStart
		run.PeriodEnd = report.Window.ReportingEnd
		run.ComparisonMode = report.Window.ComparisonMode
		run.RunRate = report.RunRate.Display
		run.Report = &report.Report
	}

	if err == nil {
		if notifyErr := s.notifier.Notify(ctx, *report); notifyErr != nil {
			err = newStageError(client.Name, domain.StageNotify, notifyErr)
		}
	}

	if err != nil {
		run.Status = domain.ReportRunStatusSkipped
		run.Stage = StageOf(err)
		run.Error = err.Error()

		logrus.WithFields(logrus.Fields{
			"batch_id": batchID,
			"client":   client.Name,
			"stage":    run.Stage,
			"error":    err.Error(),
		}).Error("Relatório ignorado")
	} else {
		run.Status = domain.ReportRunStatusSent

		logrus.WithFields(logrus.Fields{
			"batch_id": batchID,
			"client":   client.Name,
			"run_rate": run.RunRate,
		}).Info("Relatório enviado")
	}

	s.observe(run.Status, run.Stage)
	s.save(ctx, run)

	return run
}

func (s *Service) build(ctx context.Context, client domain.Client, today time.Time, withCommentary bool) (*domain.ClientReport, error) {
	report := &domain.ClientReport{Client: client, GeneratedAt: s.now()}

	var plan *domain.Plan
	if client.HasPlan() && s.plans != nil {
		p, err := s.plans.GetPlan(ctx, client)
		if err != nil {
			return report, newStageError(client.Name, domain.StagePlan, err)
		}
		plan = p
	}

	set, err := s.data.GetRecords(ctx, client)
	if err != nil {
		return report, newStageError(client.Name, domain.StageFunnel, err)
	}

	started := time.Now()
	funnel, err := s.engine.Build(client, set, today)
	if err != nil {
		return report, newStageError(client.Name, domain.StageFunnel, err)
	}
	if s.recorder != nil {
		s.recorder.ObserveBuildDuration(time.Since(started))
	}

	report.Window = funnel.Window
	report.StartDate = funnel.Window.StartString()
	report.EndDate = funnel.Window.EndString()
	report.Report = funnel.Report
	report.RunRate = funnel.RunRate
	if plan != nil {
		report.Plan = reporting.CurrentPlanTasks(plan.Tasks, funnel.Window.ReportingStart)
	}

	report.SiteContext = reporting.BuildSiteContext(set, funnel.Window)
	logrus.WithFields(logrus.Fields{
		"client":    client.Name,
		"stage":     domain.StageSiteContext,
		"available": report.SiteContext != nil,
	}).Debug("Contexto do site calculado")

	if withCommentary && s.commentator != nil {
		commentary, err := s.commentator.Generate(ctx, report.CommentaryRequest())
		if err != nil {
			return report, newStageError(client.Name, domain.StageCommentary, err)
		}
		report.Commentary = commentary
	}

	return report, nil
}

func (s *Service) save(ctx context.Context, run domain.ReportRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Save(ctx, run); err != nil {
		logrus.WithFields(logrus.Fields{
			"client": run.ClientName,
			"run_id": run.ID,
			"error":  err.Error(),
		}).Error("Erro ao registrar execução do relatório")
	}
}

func (s *Service) observe(status domain.ReportRunStatus, stage string) {
	if s.recorder != nil {
		s.recorder.ObserveRun(status, stage)
	}
}

func (s *Service) today(t time.Time) time.Time {
	if t.IsZero() {
		return s.now().In(s.location)
	}
	return t
}

func findClient(clients []domain.Client, name string) (domain.Client, bool) {
	for _, c := range clients {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return domain.Client{}, false
}

func newRunID() string {
	id, err := utils.GenerateID()
	if err != nil {
		return uuid.NewString()
	}
	return id
}
