package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/repository"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
)

// UpdateAdsetStatus ativa ou pausa manualmente um adset já conhecido
func UpdateAdsetStatus(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.UpdateAdsetStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.AdsetID = strings.TrimSpace(req.AdsetID)
		if req.AdsetID == "" || req.IsActive == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "adset_id e is_active são obrigatórios", nil)
			return
		}

		err := service.UpdateAdsetStatus(r.Context(), req.AdsetID, *req.IsActive)
		if errors.Is(err, repository.ErrAdsetNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Adset não encontrado", map[string]string{
				"adset_id": req.AdsetID,
			})
			return
		}
		if err != nil {
			logger.WithFields(log.Fields{
				"adset_id": req.AdsetID,
				"error":    err.Error(),
			}).Error("adsets: failed to update status")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do adset", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, Response{
			Success: true,
			Message: "Status atualizado com sucesso",
			Data: map[string]any{
				"adset_id":  req.AdsetID,
				"is_active": *req.IsActive,
			},
		})
	})
}
