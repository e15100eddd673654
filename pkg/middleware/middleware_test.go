package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(a *mocks.MockAuthenticator)
		wantStatus int
	}{
		{name: "healthcheck é público", path: "/healthcheck", setup: func(a *mocks.MockAuthenticator) {}, wantStatus: http.StatusNoContent},
		{name: "login é público", path: "/v1/auth/login", setup: func(a *mocks.MockAuthenticator) {}, wantStatus: http.StatusNoContent},
		{name: "sem header", path: "/v1/predictions/daily", setup: func(a *mocks.MockAuthenticator) {}, wantStatus: http.StatusUnauthorized},
		{name: "sem prefixo Bearer", path: "/v1/predictions/daily", header: "abc", setup: func(a *mocks.MockAuthenticator) {}, wantStatus: http.StatusUnauthorized},
		{
			name:   "token válido",
			path:   "/v1/predictions/daily",
			header: "Bearer abc",
			setup: func(a *mocks.MockAuthenticator) {
				a.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserID: 1, UserRoleID: RoleAdmin}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "token expirado",
			path:   "/v1/predictions/daily",
			header: "Bearer abc",
			setup: func(a *mocks.MockAuthenticator) {
				a.EXPECT().ValidateToken("abc").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	handler := AdminOrSupervisor()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken("cliente").Return(&domain.Claims{UserID: 2, UserRoleID: RoleClient}, nil)

	req = httptest.NewRequest(http.MethodGet, "/v1/adsets/status", nil)
	req.Header.Set("Authorization", "Bearer cliente")
	rec = httptest.NewRecorder()
	AuthMiddleware(auth)(handler).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/predictions/daily", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/predictions/daily", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, w.Header().Get(CorrelationIDHeader))
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/predictions/daily", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
