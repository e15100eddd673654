package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

// CycleCounter entrega o próximo valor do contador de ciclos de execução
type CycleCounter interface {
	NextCycle() int
}

type EvaluateRequest struct {
	Records    []domain.RawRow `json:"records"`
	DayBuckets bool            `json:"day_buckets"`
}

type predictionMeta struct {
	RunID        string `json:"run_id,omitempty"`
	Cycle        int    `json:"cycle"`
	RulesVersion string `json:"rules_version"`
	Decisions    int    `json:"decisions"`
}

func GetDailyPredictions(service recommending.Recommender, cycles CycleCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		cycle := cycles.NextCycle()

		logger.WithField("cycle", cycle).Info("predictions: building daily recommendations")

		result, err := service.DailyRecommendations(r.Context(), cycle)
		if err != nil {
			logger.WithError(err).Error("predictions: daily recommendations failed")
			writeRecommendationError(w, err)
			return
		}

		writePredictions(w, r, result)
	})
}

func GetRangePredictions(service recommending.Recommender, cycles CycleCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := rangeFilters(w, r)
		if !ok {
			return
		}

		result, err := service.RangeRecommendations(r.Context(), filters, cycles.NextCycle())
		if err != nil {
			logger.WithError(err).Error("predictions: range recommendations failed")
			writeRecommendationError(w, err)
			return
		}

		writePredictions(w, r, result)
	})
}

func GetAdsetRangePredictions(service recommending.Recommender, cycles CycleCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := rangeFilters(w, r)
		if !ok {
			return
		}

		result, err := service.AdsetRangeRecommendations(r.Context(), filters, cycles.NextCycle())
		if err != nil {
			logger.WithError(err).Error("predictions: adset range recommendations failed")
			writeRecommendationError(w, err)
			return
		}

		writePredictions(w, r, result)
	})
}

// rangeFilters lê start_date e end_date da query; em caso de erro já responde 400
func rangeFilters(w http.ResponseWriter, r *http.Request) (*domain.ReportFilters, bool) {
	query := r.URL.Query()

	startDate, endDate, err := utils.ParseDateRange(query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"start_date": query.Get("start_date"),
			"end_date":   query.Get("end_date"),
			"error":      err.Error(),
		}).Warn("predictions: invalid date range")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	return &domain.ReportFilters{StartDate: startDate, EndDate: endDate}, true
}

func EvaluatePredictions(service recommending.Recommender, cycles CycleCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req EvaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Records == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo records é obrigatório", nil)
			return
		}

		opts := recommending.RunOptions{
			Cycle:      cycles.NextCycle(),
			DayBuckets: req.DayBuckets,
		}

		result, err := service.Evaluate(r.Context(), req.Records, opts)
		if err != nil {
			logger.WithError(err).Warn("predictions: evaluation failed")
			writeRecommendationError(w, err)
			return
		}

		writePredictions(w, r, result)
	})
}

func writePredictions(w http.ResponseWriter, r *http.Request, result *domain.BatchResult) {
	writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    result.Groups,
		Summary: result.Summary,
		Meta: predictionMeta{
			RunID:        result.RunID,
			Cycle:        result.Cycle,
			RulesVersion: result.RulesVersion,
			Decisions:    len(result.Decisions),
		},
	})
}

// writeRecommendationError traduz os erros do caso de uso em códigos da API
func writeRecommendationError(w http.ResponseWriter, err error) {
	var missingLabel *recommending.MissingClusterLabelError
	var inputErr *recommending.InputValidationError

	switch {
	case errors.As(err, &missingLabel):
		apiErrors.WriteError(w, apiErrors.ErrUnprocessable, err.Error(), map[string]any{
			"error":    "MissingClusterLabel",
			"index":    missingLabel.Index,
			"adset_id": missingLabel.AdsetID,
		})
	case errors.As(err, &inputErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, inputErr.Reason, nil)
	case errors.Is(err, recommending.ErrClusteringOracleUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrModelUnavailable, "Modelo de clusterização indisponível", nil)
	case errors.Is(err, recommending.ErrReportingSourceUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar o relatório de performance", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar recomendações", nil)
	}
}
