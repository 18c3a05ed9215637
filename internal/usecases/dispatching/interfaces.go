package dispatching

import (
	"context"
	"time"

	"github.com/vfg2006/performance-report/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dispatching_mock.go -package=mocks

// ClientSource define a interface para obter a lista de clientes
type ClientSource interface {
	GetClients(ctx context.Context) ([]domain.Client, error)
}

// DataSource define a interface para obter os registros de funil de um cliente
type DataSource interface {
	GetRecords(ctx context.Context, client domain.Client) (domain.RecordSet, error)
}

// PlanSource define a interface para obter o plano atual de um cliente
type PlanSource interface {
	GetPlan(ctx context.Context, client domain.Client) (*domain.Plan, error)
}

// Commentator define a interface do serviço de comentários
type Commentator interface {
	Generate(ctx context.Context, request domain.CommentaryRequest) (*domain.Commentary, error)
}

// Notifier define a interface de entrega do relatório
type Notifier interface {
	Notify(ctx context.Context, report domain.ClientReport) error
}

// RunRepository define a interface do histórico de execuções
type RunRepository interface {
	Save(ctx context.Context, run domain.ReportRun) error
}

// Recorder define a interface de métricas das execuções
type Recorder interface {
	ObserveRun(status domain.ReportRunStatus, stage string)
	ObserveBuildDuration(d time.Duration)
}
