package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/dispatching"
	"github.com/vfg2006/performance-report/pkg/apiErrors"
	"github.com/vfg2006/performance-report/pkg/log"
	"github.com/vfg2006/performance-report/pkg/middleware"
	"github.com/vfg2006/performance-report/pkg/utils"
)

//go:generate mockgen -source=reports.go -destination=mocks/reports_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// ReportTrigger dispara lotes fora do agendamento e informa o estado do último
type ReportTrigger interface {
	TriggerManualSync(opts dispatching.RunOptions) bool
	GetStatus() map[string]any
}

// ClientResolver confirma que um cliente existe antes de disparar um lote
type ClientResolver interface {
	FindClient(ctx context.Context, clientName string) (domain.Client, error)
}

// ReportPreviewer monta o relatório de um cliente sem enviar
type ReportPreviewer interface {
	Preview(ctx context.Context, clientName string, today time.Time) (*domain.ClientReport, error)
}

// ReportRenderer gera o HTML do e-mail
type ReportRenderer interface {
	Render(report domain.ClientReport) (string, error)
}

// RunHistory consulta o histórico de execuções
type RunHistory interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ReportRun, error)
	GetLatestByClient(ctx context.Context, clientName string) (*domain.ReportRun, error)
}

type runReportsRequest struct {
	Client string `json:"client" validate:"omitempty,max=200"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// RunReports inicia um lote manual; o corpo é opcional
func RunReports(trigger ReportTrigger, clients ClientResolver, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req runReportsRequest
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o corpo da requisição", nil)
			return
		}
		if len(strings.TrimSpace(string(body))) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "JSON inválido", nil)
				return
			}
		}
		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campos inválidos", err.Error())
			return
		}

		today, err := utils.ParseDate(req.Date, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		opts := dispatching.RunOptions{
			Today:  today,
			Client: strings.TrimSpace(req.Client),
		}

		if opts.Client != "" {
			client, err := clients.FindClient(r.Context(), opts.Client)
			if errors.Is(err, dispatching.ErrClientNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", opts.Client)
				return
			}
			if err != nil {
				logger.WithError(err).Error("Erro ao consultar a fonte de clientes")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível consultar os clientes", nil)
				return
			}
			opts.Client = client.Name
		}

		subject := ""
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			subject = claims.Subject
		}

		if !trigger.TriggerManualSync(opts) {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Já existe um envio de relatórios em andamento", nil)
			return
		}

		logger.WithFields(log.Fields{
			"subject": subject,
			"client":  opts.Client,
		}).Info("Envio manual de relatórios iniciado")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Envio de relatórios iniciado",
			"client":  opts.Client,
		})
	}
}

// GetReportStatus retorna o estado do envio agendado
func GetReportStatus(trigger ReportTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, trigger.GetStatus())
	}
}

// ListReportRuns lista as execuções mais recentes
func ListReportRuns(history RunHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxRunsLimit)
		}

		runs, err := history.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}
		if runs == nil {
			runs = []domain.ReportRun{}
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

// GetLatestClientRun devolve a última execução registrada de um cliente
func GetLatestClientRun(history RunHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := httprouter.ParamsFromContext(r.Context()).ByName("client")

		run, err := history.GetLatestByClient(r.Context(), client)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("client", client).Error("Erro ao buscar execução")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução", nil)
			return
		}
		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhuma execução registrada para o cliente", nil)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}

// PreviewReport monta o relatório sem enviar; format=html devolve o e-mail renderizado
func PreviewReport(previewer ReportPreviewer, renderer ReportRenderer, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := httprouter.ParamsFromContext(r.Context()).ByName("client")
		logger := log.ForContext(r.Context()).WithField("client", client)

		today, err := utils.ParseDate(r.URL.Query().Get("date"), loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		report, err := previewer.Preview(r.Context(), client, today)
		if err != nil {
			writePreviewError(w, logger, err)
			return
		}

		if r.URL.Query().Get("format") != "html" {
			writeJSON(w, http.StatusOK, report)
			return
		}

		html, err := renderer.Render(*report)
		if err != nil {
			logger.WithError(err).Error("Erro ao renderizar prévia")
			apiErrors.WriteError(w, apiErrors.ErrRenderingReport, "Erro ao renderizar o relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, html)
	}
}

func writePreviewError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, dispatching.ErrClientNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
		return
	}

	logger.WithError(err).Error("Erro ao montar prévia")
	if stage := dispatching.StageOf(err); stage != "" {
		apiErrors.WriteError(w, apiErrors.ErrReportStage, err.Error(), map[string]string{"stage": stage})
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório", nil)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}
