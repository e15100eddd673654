package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	trackerdomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/domain"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/mocks"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestTrackerService_FetchReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	cfg := &config.Config{Tracker: config.Tracker{Timezone: "Europe/Amsterdam", RowLimit: 100000}}
	svc := New(cfg, client)

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		BuildReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req trackerdomain.ReportRequest) (*trackerdomain.ReportResponse, error) {
			assert.Equal(t, "2024-06-01", req.Range.From)
			assert.Equal(t, "2024-06-01", req.Range.To)
			assert.Equal(t, "Europe/Amsterdam", req.Range.Timezone)
			assert.Equal(t, trackerdomain.ReportGrouping, req.Grouping)
			assert.Contains(t, req.Metrics, "roi_confirmed")
			assert.Equal(t, 100000, req.Limit)

			return &trackerdomain.ReportResponse{Rows: []map[string]any{
				{
					"sub_id_6":      "Camp +-+ US",
					"sub_id_3":      "feed",
					"sub_id_5":      "ad-9",
					"sub_id_2":      "120210",
					"roi_confirmed": 40.0,
					"cost":          10.0,
					"day":           "2024-06-01",
				},
			}}, nil
		})

	rows, err := svc.FetchReport(context.Background(), &domain.ReportFilters{StartDate: &day, EndDate: &day})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Camp +-+ US", row[domain.FieldSourceKey])
	assert.Equal(t, "feed", row[domain.FieldSubSourceKey])
	assert.Equal(t, "ad-9", row[domain.FieldAdKey])
	assert.Equal(t, "120210", row[domain.FieldAdsetID])
	assert.Equal(t, 40.0, row[domain.FieldROI])
	assert.Equal(t, 10.0, row[domain.FieldCost])
	assert.NotContains(t, row, "sub_id_2")
	assert.NotContains(t, row, "roi_confirmed")
}

func TestTrackerService_FetchReportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	svc := New(&config.Config{}, client)

	client.EXPECT().BuildReport(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	day := time.Now()
	rows, err := svc.FetchReport(context.Background(), &domain.ReportFilters{StartDate: &day, EndDate: &day})
	assert.Nil(t, rows)
	assert.Error(t, err)
}
