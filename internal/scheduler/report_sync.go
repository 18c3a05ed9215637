package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/dispatching"
)

//go:generate mockgen -source=report_sync.go -destination=mocks/report_sync_mock.go -package=mocks

// BatchRunner executa o lote de relatórios
type BatchRunner interface {
	RunBatch(ctx context.Context, opts dispatching.RunOptions) (*domain.BatchResult, error)
}

// HistoryPruner remove execuções antigas do histórico
type HistoryPruner interface {
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

// BatchObserver recebe o resumo de cada lote concluído
type BatchObserver interface {
	ObserveBatch(result *domain.BatchResult)
}

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// ReportSyncService agenda e executa o envio semanal dos relatórios
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	runner              BatchRunner
	pruner              HistoryPruner
	observer            BatchObserver
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.BatchResult
	lastError           string
}

// NewReportSyncService cria o agendador; pruner e observer são opcionais
func NewReportSyncService(
	runner BatchRunner,
	pruner HistoryPruner,
	observer BatchObserver,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule:  appConfig.ReportSync.CronSchedule,
		SyncEnabled:   appConfig.ReportSync.Enabled,
		RetentionDays: appConfig.ReportSync.RetentionDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"retention_days": syncConfig.RetentionDays,
		"timezone":       appConfig.App.Timezone,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    syncConfig,
		runner:    runner,
		pruner:    pruner,
		observer:  observer,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Envio automático de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports(dispatching.RunOptions{})
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReports executa o lote; execuções sobrepostas são ignoradas
func (s *ReportSyncService) syncReports(opts dispatching.RunOptions) {
	if !s.acquire() {
		logrus.Info("Envio de relatórios já em andamento, ignorando")
		return
	}
	defer s.release()

	s.runSync(opts)
}

func (s *ReportSyncService) runSync(opts dispatching.RunOptions) {
	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"client": opts.Client,
	}).Info("Iniciando envio de relatórios")

	result, err := s.runner.RunBatch(s.baseCtx, opts)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao executar lote de relatórios")
	}
	if result != nil && s.observer != nil {
		s.observer.ObserveBatch(result)
	}

	s.pruneHistory()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Envio de relatórios concluído")
}

func (s *ReportSyncService) pruneHistory() {
	if s.pruner == nil || s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.pruner.DeleteOlderThan(s.baseCtx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover execuções antigas do histórico")
		return
	}

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
	}).Debug("Histórico de execuções podado")
}

// TriggerManualSync inicia manualmente um lote; devolve false se já houver um em andamento
func (s *ReportSyncService) TriggerManualSync(opts dispatching.RunOptions) bool {
	if !s.acquire() {
		logrus.Info("Envio de relatórios já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando envio manual de relatórios")
	go func() {
		defer s.release()
		s.runSync(opts)
	}()

	return true
}

// GetStatus retorna o status atual do envio
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_batch_id"] = s.lastResult.BatchID
		status["last_sent"] = s.lastResult.Sent
		status["last_skipped"] = s.lastResult.Skipped
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}

func (s *ReportSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *ReportSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}
