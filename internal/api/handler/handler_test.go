package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/middleware"
)

type fixedCycles struct {
	next int
}

func (f *fixedCycles) NextCycle() int {
	c := f.next
	f.next = (f.next + 1) % 8
	return c
}

type fakeCronJob struct {
	triggered int
	status    map[string]any
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any { return f.status }

// serve executa a requisição pelo router com o usuário já autenticado no contexto
func serve(t *testing.T, routes []router.Route, roleID int, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, target, body)
	if roleID > 0 {
		claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
