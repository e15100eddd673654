package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/repository"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
)

// GetRunDecisions devolve as decisões gravadas de uma execução anterior
func GetRunDecisions(repo repository.DecisionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		runID := httprouter.ParamsFromContext(r.Context()).ByName("run_id")
		if runID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "run_id não informado", nil)
			return
		}

		entries, err := repo.ListByRun(runID)
		if err != nil {
			logger.WithFields(log.Fields{
				"run_id": runID,
				"error":  err.Error(),
			}).Error("predictions: failed to list run decisions")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de decisões", nil)
			return
		}

		if len(entries) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Execução não encontrada", map[string]string{
				"run_id": runID,
			})
			return
		}

		writeJSON(w, r, http.StatusOK, Response{
			Success: true,
			Data:    entries,
		})
	})
}
