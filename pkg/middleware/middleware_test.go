package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/authenticating"
	"github.com/vfg2006/performance-report/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/performance-report/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	adminClaims := &domain.Claims{Role: domain.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"}}

	tests := []struct {
		name           string
		path           string
		method         string
		header         string
		mockSetup      func(m *mocks.MockAuthenticator)
		expectedStatus int
	}{
		{
			name:           "Healthcheck é público",
			path:           "/healthcheck",
			method:         http.MethodGet,
			mockSetup:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Métricas são públicas",
			path:           "/metrics",
			method:         http.MethodGet,
			mockSetup:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Preflight passa sem token",
			path:           "/v1/reports/run",
			method:         http.MethodOptions,
			mockSetup:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem header",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			mockSetup:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Sem prefixo Bearer",
			path:           "/v1/reports/status",
			method:         http.MethodGet,
			header:         "Token abc",
			mockSetup:      func(m *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/reports/status",
			method: http.MethodGet,
			header: "Bearer abc",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("abc").Return(nil, authenticating.ErrExpiredToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			path:   "/v1/reports/status",
			method: http.MethodGet,
			header: "Bearer abc",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("abc").Return(adminClaims, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.mockSetup(auth)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	claims := &domain.Claims{Role: domain.RoleViewer}
	auth.EXPECT().ValidateToken("abc").Return(claims, nil)

	var got *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/runs", nil)
	req.Header.Set("Authorization", "Bearer abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Same(t, claims, got)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{name: "Sem claims", claims: nil, middleware: AllRoles(), expectedStatus: http.StatusUnauthorized},
		{name: "Admin em rota de admin", claims: &domain.Claims{Role: domain.RoleAdmin}, middleware: AdminOnly(), expectedStatus: http.StatusNoContent},
		{name: "Viewer em rota de admin", claims: &domain.Claims{Role: domain.RoleViewer}, middleware: AdminOnly(), expectedStatus: http.StatusForbidden},
		{name: "Viewer em rota comum", claims: &domain.Claims{Role: domain.RoleViewer}, middleware: AllRoles(), expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reports/status", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/status", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/status", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/reports/run", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/run", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/status", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
