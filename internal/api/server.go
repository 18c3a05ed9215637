package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/api/handler"
	"github.com/vfg2006/performance-report/internal/api/handler/router"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/usecases/authenticating"
	"github.com/vfg2006/performance-report/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies agrupa o que a API expõe
type Dependencies struct {
	Authenticator authenticating.Authenticator
	Trigger       handler.ReportTrigger
	Clients       handler.ClientResolver
	Previewer     handler.ReportPreviewer
	Renderer      handler.ReportRenderer
	History       handler.RunHistory
	Database      handler.Pinger
	Metrics       http.Handler
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Authenticator == nil {
		return nil, fmt.Errorf("api: authenticator obrigatório")
	}

	loc := config.Location()

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Reports(deps.Trigger, deps.Clients, deps.History, loc)...),
		router.WithRoutes(handler.Clients(deps.Previewer, deps.Renderer, deps.History, loc)...),
	}
	if deps.Metrics != nil {
		routes = append(routes, router.WithRoutes(handler.Metrics(deps.Metrics)...))
	}
	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
