package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending/mocks"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func batchResult() *domain.BatchResult {
	return &domain.BatchResult{
		RunID:        "run123",
		Cycle:        0,
		RulesVersion: "2024.06",
		Decisions:    []domain.Decision{{Action: domain.ActionPause}, {Action: domain.ActionOptimize}},
		Groups:       []domain.Group{{ID: "campanha|origem"}},
		Summary:      domain.Summary{TotalAdset: 2, PriorityDistribution: map[string]int{"1": 1, "4": 1}},
	}
}

func TestGetDailyPredictions(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "sucesso", wantStatus: http.StatusOK},
		{
			name:       "oráculo indisponível retorna 503",
			err:        &recommending.OracleError{Err: errors.New("timeout")},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrModelUnavailable,
		},
		{
			name:       "fonte de relatórios indisponível retorna 502",
			err:        &recommending.SourceError{Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrExternalService,
		},
		{
			name:       "erro inesperado retorna 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recommender := mocks.NewMockRecommender(ctrl)

			if tt.err != nil {
				recommender.EXPECT().DailyRecommendations(gomock.Any(), 0).Return(nil, tt.err)
			} else {
				recommender.EXPECT().DailyRecommendations(gomock.Any(), 0).Return(batchResult(), nil)
			}

			rec := serve(t, Predictions(recommender, &fixedCycles{}), middleware.RoleClient, http.MethodGet, "/v1/predictions/daily", nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				var body apiErrors.APIError
				decodeBody(t, rec, &body)
				assert.Equal(t, tt.wantCode, body.Code)
				return
			}

			var body struct {
				Success bool           `json:"success"`
				Data    []domain.Group `json:"data"`
				Summary domain.Summary `json:"summary"`
				Meta    map[string]any `json:"meta"`
			}
			decodeBody(t, rec, &body)
			assert.True(t, body.Success)
			assert.Len(t, body.Data, 1)
			assert.Equal(t, 2, body.Summary.TotalAdset)
			assert.Equal(t, "run123", body.Meta["run_id"])
			assert.EqualValues(t, 2, body.Meta["decisions"])
		})
	}
}

func TestGetDailyPredictions_AdvancesCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	recommender := mocks.NewMockRecommender(ctrl)
	cycles := &fixedCycles{next: 7}

	gomock.InOrder(
		recommender.EXPECT().DailyRecommendations(gomock.Any(), 7).Return(batchResult(), nil),
		recommender.EXPECT().DailyRecommendations(gomock.Any(), 0).Return(batchResult(), nil),
	)

	routes := Predictions(recommender, cycles)
	assert.Equal(t, http.StatusOK, serve(t, routes, middleware.RoleClient, http.MethodGet, "/v1/predictions/daily", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, routes, middleware.RoleClient, http.MethodGet, "/v1/predictions/daily", nil).Code)
}

func TestGetDailyPredictions_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	recommender := mocks.NewMockRecommender(ctrl)

	rec := serve(t, Predictions(recommender, &fixedCycles{}), 0, http.MethodGet, "/v1/predictions/daily", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRangePredictions(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		expectCall bool
		wantStatus int
	}{
		{name: "período válido", query: "?start_date=2024-06-01&end_date=2024-06-03", expectCall: true, wantStatus: http.StatusOK},
		{name: "sem datas", query: "", wantStatus: http.StatusBadRequest},
		{name: "data malformada", query: "?start_date=01/06/2024&end_date=2024-06-03", wantStatus: http.StatusBadRequest},
		{name: "início depois do fim", query: "?start_date=2024-06-05&end_date=2024-06-03", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recommender := mocks.NewMockRecommender(ctrl)

			if tt.expectCall {
				recommender.EXPECT().
					RangeRecommendations(gomock.Any(), gomock.Any(), 0).
					DoAndReturn(func(_ any, filters *domain.ReportFilters, _ int) (*domain.BatchResult, error) {
						from, to := filters.Dates()
						assert.Equal(t, "2024-06-01", from)
						assert.Equal(t, "2024-06-03", to)
						return batchResult(), nil
					})
			}

			rec := serve(t, Predictions(recommender, &fixedCycles{}), middleware.RoleClient, http.MethodGet, "/v1/predictions/range"+tt.query, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetAdsetRangePredictions(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		expectCall bool
		wantStatus int
	}{
		{name: "período válido", query: "?start_date=2024-06-01&end_date=2024-06-03", expectCall: true, wantStatus: http.StatusOK},
		{name: "sem data final", query: "?start_date=2024-06-01", wantStatus: http.StatusBadRequest},
		{
			name:       "oráculo indisponível retorna 503",
			query:      "?start_date=2024-06-01&end_date=2024-06-03",
			err:        &recommending.OracleError{Err: errors.New("timeout")},
			expectCall: true,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recommender := mocks.NewMockRecommender(ctrl)

			if tt.expectCall {
				result := batchResult()
				if tt.err != nil {
					result = nil
				}
				recommender.EXPECT().
					AdsetRangeRecommendations(gomock.Any(), gomock.Any(), 0).
					Return(result, tt.err)
			}

			rec := serve(t, Predictions(recommender, &fixedCycles{}), middleware.RoleClient, http.MethodGet, "/v1/predictions/range/adsets"+tt.query, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestEvaluatePredictions(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(r *mocks.MockRecommender)
		wantStatus int
		wantCode   string
	}{
		{
			name: "registros rotulados",
			body: `{"records":[{"adset_id":"1","cost":10,"roi":20,"cluster":4}],"day_buckets":true}`,
			setup: func(r *mocks.MockRecommender) {
				r.EXPECT().
					Evaluate(gomock.Any(), gomock.Len(1), recommending.RunOptions{Cycle: 0, DayBuckets: true}).
					Return(batchResult(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "registro sem cluster retorna 422",
			body: `{"records":[{"adset_id":"1","cost":10}]}`,
			setup: func(r *mocks.MockRecommender) {
				r.EXPECT().
					Evaluate(gomock.Any(), gomock.Len(1), gomock.Any()).
					Return(nil, &recommending.MissingClusterLabelError{Index: 0, AdsetID: "1"})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrUnprocessable,
		},
		{
			name:       "corpo inválido",
			body:       `{"records":`,
			setup:      func(r *mocks.MockRecommender) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "sem records",
			body:       `{"day_buckets":false}`,
			setup:      func(r *mocks.MockRecommender) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			recommender := mocks.NewMockRecommender(ctrl)
			tt.setup(recommender)

			rec := serve(t, Predictions(recommender, &fixedCycles{}), middleware.RoleClient, http.MethodPost, "/v1/predictions/evaluate", jsonBody(tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				var body apiErrors.APIError
				decodeBody(t, rec, &body)
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}
