package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/api"
	"github.com/vfg2006/performance-report/internal/app"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/scheduler"
	"github.com/vfg2006/performance-report/internal/usecases/authenticating"
	"github.com/vfg2006/performance-report/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.WithField("level", logrus.GetLevel().String()).Info("Nível de log configurado")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar a aplicação")
	}
	defer application.Close()

	reportSyncService := scheduler.NewReportSyncService(
		application.Dispatcher,
		application.Runs,    // Poda do histórico
		application.Metrics, // Métricas do último lote
		cfg,
	)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		logrus.Info("Agendador de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Authenticator: authenticating.NewService(cfg),
		Trigger:       reportSyncService,
		Clients:       application.Dispatcher,
		Previewer:     application.Dispatcher,
		Renderer:      application.Renderer,
		History:       application.Runs,
		Database:      application.DB,
		Metrics:       application.Metrics.Handler(),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
