package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-advisor-api/pkg/middleware"
)

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name                string
		roleID              int
		cronType            string
		wantStatus          int
		wantStatusSync      int
		wantRecommendations int
	}{
		{name: "sincronização de status", roleID: middleware.RoleAdmin, cronType: "status-sync", wantStatus: http.StatusOK, wantStatusSync: 1},
		{name: "recomendações", roleID: middleware.RoleAdmin, cronType: "recommendations", wantStatus: http.StatusOK, wantRecommendations: 1},
		{name: "todas", roleID: middleware.RoleAdmin, cronType: "all", wantStatus: http.StatusOK, wantStatusSync: 1, wantRecommendations: 1},
		{name: "tipo inválido", roleID: middleware.RoleAdmin, cronType: "meta", wantStatus: http.StatusBadRequest},
		{name: "supervisor não executa cron", roleID: middleware.RoleSupervisor, cronType: "all", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statusSync := &fakeCronJob{}
			recommendations := &fakeCronJob{}
			services := CronJobServices{StatusSyncService: statusSync, RecommendationSyncService: recommendations}

			rec := serve(t, CronJobs(services), tt.roleID, http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatusSync, statusSync.triggered)
			assert.Equal(t, tt.wantRecommendations, recommendations.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{
		StatusSyncService:         &fakeCronJob{status: map[string]any{"is_running": false}},
		RecommendationSyncService: &fakeCronJob{status: map[string]any{"next_cycle": 3}},
	}

	rec := serve(t, CronJobs(services), middleware.RoleAdmin, http.MethodGet, "/v1/cron/status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, false, body["status-sync"]["is_running"])
	assert.EqualValues(t, 3, body["recommendations"]["next_cycle"])
}
