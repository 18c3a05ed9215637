package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/performance-report/internal/api/handler/router"
	"github.com/vfg2006/performance-report/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Reports(trigger ReportTrigger, clients ClientResolver, history RunHistory, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/run",
			Method:      http.MethodPost,
			Handler:     RunReports(trigger, clients, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/status",
			Method:      http.MethodGet,
			Handler:     GetReportStatus(trigger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/runs",
			Method:      http.MethodGet,
			Handler:     ListReportRuns(history),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Clients(previewer ReportPreviewer, renderer ReportRenderer, history RunHistory, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:client/preview",
			Method:      http.MethodGet,
			Handler:     PreviewReport(previewer, renderer, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:client/runs/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestClientRun(history),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
