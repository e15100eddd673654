package tracker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	trackerdomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/domain"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/trackerclient"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// columnRenames traduz as colunas do tracker para os nomes usados pelo normalizador
var columnRenames = map[string]string{
	trackerdomain.ColumnSourceKey:    domain.FieldSourceKey,
	trackerdomain.ColumnSubSourceKey: domain.FieldSubSourceKey,
	trackerdomain.ColumnAdKey:        domain.FieldAdKey,
	trackerdomain.ColumnAdsetID:      domain.FieldAdsetID,
	trackerdomain.ColumnROIConfirmed: domain.FieldROI,
}

// TrackerIntegrator é a fonte de relatórios consumida pelo caso de uso de recomendações
type TrackerIntegrator interface {
	FetchReport(ctx context.Context, filters *domain.ReportFilters) ([]domain.RawRow, error)
}

type TrackerService struct {
	cfg    *config.Config
	Client trackerclient.Client
}

func New(cfg *config.Config, client trackerclient.Client) TrackerIntegrator {
	return &TrackerService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TrackerService) FetchReport(ctx context.Context, filters *domain.ReportFilters) ([]domain.RawRow, error) {
	from, to := filters.Dates()

	request := trackerdomain.ReportRequest{
		Range: trackerdomain.ReportRange{
			From:     from,
			To:       to,
			Timezone: s.cfg.Tracker.Timezone,
		},
		Columns:  trackerdomain.ReportColumns,
		Metrics:  trackerdomain.ReportMetrics,
		Grouping: trackerdomain.ReportGrouping,
		Filters:  []any{},
		Limit:    s.cfg.Tracker.RowLimit,
		Extended: true,
	}

	start := time.Now()
	resp, err := s.Client.BuildReport(ctx, request)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RawRow, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, renameColumns(r))
	}

	logrus.WithFields(logrus.Fields{
		"from":        from,
		"to":          to,
		"rows":        len(rows),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("tracker: report fetched")

	return rows, nil
}

// renameColumns aplica columnRenames; a coluna do tracker prevalece sobre uma
// coluna de mesmo nome já presente na linha
func renameColumns(row map[string]any) domain.RawRow {
	renamed := make(domain.RawRow, len(row))
	for column, value := range row {
		if _, ok := columnRenames[column]; !ok {
			renamed[column] = value
		}
	}
	for column, name := range columnRenames {
		if value, ok := row[column]; ok {
			renamed[name] = value
		}
	}
	return renamed
}
