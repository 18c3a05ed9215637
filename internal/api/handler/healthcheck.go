package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger verifica uma dependência do serviço
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 enquanto o banco responder; sem banco só confirma que o processo está vivo
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				status["status"] = "degraded"
				status["database"] = err.Error()
				writeJSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}

		writeJSON(w, http.StatusOK, status)
	})
}
