package recommending

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/repository"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

type Service struct {
	cfg          *config.Config
	source       ReportSource
	oracle       ClusterAssigner
	normalizer   *Normalizer
	pipeline     *Pipeline
	statusRepo   repository.AdsetStatusRepository
	decisionRepo repository.DecisionRepository
}

func NewService(
	cfg *config.Config,
	source ReportSource,
	oracle ClusterAssigner,
	geo GeoResolver,
	statusRepo repository.AdsetStatusRepository,
	decisionRepo repository.DecisionRepository,
) Recommender {
	return &Service{
		cfg:          cfg,
		source:       source,
		oracle:       oracle,
		normalizer:   NewNormalizer(geo),
		pipeline:     NewPipeline(cfg.Pipeline.Workers),
		statusRepo:   statusRepo,
		decisionRepo: decisionRepo,
	}
}

// reportMode define como as linhas do relatório viram grupos de campanha
type reportMode int

const (
	// modeDaily remove adsets duplicados do dia corrente
	modeDaily reportMode = iota
	// modeRange mantém uma linha por adset e dia e aninha os dias em cada campanha
	modeRange
	// modeAdsetRange soma cada adset sobre o período inteiro
	modeAdsetRange
)

func (s *Service) DailyRecommendations(ctx context.Context, cycle int) (*domain.BatchResult, error) {
	today := utils.Today(s.cfg.Tracker.Timezone)
	filters := &domain.ReportFilters{StartDate: &today, EndDate: &today}

	return s.recommend(ctx, filters, cycle, modeDaily)
}

func (s *Service) RangeRecommendations(ctx context.Context, filters *domain.ReportFilters, cycle int) (*domain.BatchResult, error) {
	if err := requireDates(filters); err != nil {
		return nil, err
	}

	result, err := s.recommend(ctx, filters, cycle, modeRange)
	if err != nil {
		return nil, err
	}

	SortByLatestDay(result.Groups)
	return result, nil
}

func (s *Service) AdsetRangeRecommendations(ctx context.Context, filters *domain.ReportFilters, cycle int) (*domain.BatchResult, error) {
	if err := requireDates(filters); err != nil {
		return nil, err
	}

	return s.recommend(ctx, filters, cycle, modeAdsetRange)
}

func requireDates(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return &InputValidationError{Row: -1, Reason: "start and end dates are required"}
	}
	return nil
}

func (s *Service) recommend(ctx context.Context, filters *domain.ReportFilters, cycle int, mode reportMode) (*domain.BatchResult, error) {
	logger := log.ForContext(ctx)
	startDate, endDate := filters.Dates()

	rows, err := s.source.FetchReport(ctx, filters)
	if err != nil {
		logger.WithError(err).Error("recommending: failed to fetch report")
		return nil, &SourceError{Err: err}
	}

	normalized := s.normalizer.Normalize(rows, NormalizeOptions{DedupeByAdset: mode == modeDaily})
	if mode == modeAdsetRange {
		normalized.Records = SumByAdset(normalized.Records)
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, fmt.Errorf("recommending: generate run id: %w", err)
	}

	opts := RunOptions{RunID: runID, Cycle: cycle, DayBuckets: mode == modeRange}

	if len(normalized.Records) == 0 {
		logrus.WithFields(logrus.Fields{
			"start_date": startDate,
			"end_date":   endDate,
		}).Info("recommending: report returned no usable rows")
		return s.pipeline.Run(ctx, nil, opts)
	}

	labeled, err := s.label(ctx, normalized.Records)
	if err != nil {
		logger.WithError(err).Error("recommending: clustering failed")
		return nil, err
	}

	opts.Statuses = s.syncStatuses(labeled)

	result, err := s.pipeline.Run(ctx, labeled, opts)
	if err != nil {
		return nil, err
	}

	s.persist(result)

	logrus.WithFields(logrus.Fields{
		"run_id":     runID,
		"cycle":      cycle,
		"start_date": startDate,
		"end_date":   endDate,
		"adsets":     result.Summary.TotalAdset,
		"groups":     len(result.Groups),
	}).Info("recommending: recommendations generated")

	return result, nil
}

// label consulta o oráculo e devolve cópias dos registros com o cluster atribuído
func (s *Service) label(ctx context.Context, records []domain.MetricRecord) ([]domain.MetricRecord, error) {
	labels, err := s.oracle.AssignClusters(ctx, records)
	if err != nil {
		return nil, &OracleError{Err: err}
	}

	if len(labels) != len(records) {
		return nil, &OracleError{Err: fmt.Errorf("oracle returned %d labels for %d records", len(labels), len(records))}
	}

	labeled := make([]domain.MetricRecord, len(records))
	for i, r := range records {
		labeled[i] = r.WithCluster(labels[i])
	}

	return labeled, nil
}

// syncStatuses registra os adsets novos como ativos e devolve o status de cada um.
// Falhas de banco apenas deixam os status como unknown.
func (s *Service) syncStatuses(records []domain.MetricRecord) map[string]string {
	ids := numericAdsetIDs(records)
	statuses := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return statuses
	}

	created, err := s.statusRepo.EnsureActive(ids)
	if err != nil {
		logrus.WithError(err).Warn("recommending: failed to register new adsets")
	} else if created > 0 {
		logrus.WithField("created", created).Info("recommending: new adsets registered as active")
	}

	stored, err := s.statusRepo.GetStatuses(ids)
	if err != nil {
		logrus.WithError(err).Warn("recommending: failed to load adset statuses")
		return statuses
	}

	for _, id := range ids {
		statuses[id] = stored[id].Label()
	}

	return statuses
}

// persist grava o histórico das decisões com adset numérico; falhas só são registradas
func (s *Service) persist(result *domain.BatchResult) {
	persistable := make([]domain.Decision, 0, len(result.Decisions))
	for _, d := range result.Decisions {
		if isNumericID(d.AdsetID) {
			persistable = append(persistable, d)
		}
	}

	if len(persistable) == 0 {
		return
	}

	if err := s.decisionRepo.SaveBatch(result.RunID, result.Cycle, persistable); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": result.RunID,
			"error":  err.Error(),
		}).Error("recommending: failed to persist decisions")
	}
}

func numericAdsetIDs(records []domain.MetricRecord) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if !isNumericID(r.AdsetID) {
			continue
		}
		if _, ok := seen[r.AdsetID]; ok {
			continue
		}
		seen[r.AdsetID] = struct{}{}
		ids = append(ids, r.AdsetID)
	}
	return ids
}

func isNumericID(id string) bool {
	if id == "" {
		return false
	}
	_, err := strconv.ParseUint(id, 10, 64)
	return err == nil
}
