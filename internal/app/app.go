package app

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/infrastructure/database/postgres"
	"github.com/vfg2006/performance-report/infrastructure/integrator/bedrock"
	"github.com/vfg2006/performance-report/infrastructure/integrator/clientfile"
	"github.com/vfg2006/performance-report/infrastructure/integrator/sheets"
	"github.com/vfg2006/performance-report/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/performance-report/infrastructure/migration"
	"github.com/vfg2006/performance-report/infrastructure/notifier/email"
	"github.com/vfg2006/performance-report/infrastructure/repository"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/metrics"
	"github.com/vfg2006/performance-report/internal/usecases/dispatching"
	"github.com/vfg2006/performance-report/internal/usecases/reporting"
)

const ClientsSourceFile = "file"

// App reúne os componentes montados a partir da configuração
type App struct {
	Config     *config.Config
	DB         *postgres.Connection
	Runs       repository.ReportRunRepository
	Metrics    *metrics.PrometheusMetrics
	Renderer   *email.Renderer
	Dispatcher *dispatching.Service
}

// Build conecta banco, planilhas, Bedrock e e-mail e monta o serviço de envio
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: erro ao conectar ao PostgreSQL: %w", err)
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if cfg.Database.MigrateOnBoot {
		if err := migration.Up(conn.DB); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("app: erro ao aplicar migrações: %w", err)
		}
	}

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("app: erro ao criar cliente do Google Sheets: %w", err)
	}
	integrator := sheets.New(cfg, sheetsClient)

	var awsCfg aws.Config
	if NeedsAWS(cfg) {
		awsCfg, err = bedrock.LoadAWSConfig(ctx, cfg)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	renderer, err := email.NewRenderer()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	notifier := email.NewNotifier(cfg, renderer, email.NewSender(cfg, awsCfg))

	runs := repository.NewReportRunRepository(conn)
	promMetrics := metrics.NewPrometheusMetrics()

	dispatcher := dispatching.NewService(
		cfg,
		ClientSource(cfg, integrator),
		integrator,
		integrator,
		reporting.NewService(cfg),
		notifier,
	).WithHistory(runs).WithMetrics(promMetrics)

	if cfg.Bedrock.Enabled {
		dispatcher = dispatcher.WithCommentator(bedrock.New(cfg, bedrock.NewRuntimeClient(awsCfg)))
	} else {
		logrus.Warn("Bedrock desabilitado, relatórios seguirão com o plano no lugar do comentário")
	}

	return &App{
		Config:     cfg,
		DB:         conn,
		Runs:       runs,
		Metrics:    promMetrics,
		Renderer:   renderer,
		Dispatcher: dispatcher,
	}, nil
}

// ClientSource escolhe entre a aba de configuração da planilha e o arquivo yaml
func ClientSource(cfg *config.Config, fromSheets dispatching.ClientSource) dispatching.ClientSource {
	if cfg.Clients.Source == ClientsSourceFile {
		logrus.WithField("file", cfg.Clients.File).Info("Clientes carregados do arquivo")
		return clientfile.New(cfg.Clients.File)
	}
	return fromSheets
}

// NeedsAWS indica se algum componente habilitado usa a AWS
func NeedsAWS(cfg *config.Config) bool {
	return cfg.Bedrock.Enabled || cfg.Email.Provider == email.ProviderSES
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
