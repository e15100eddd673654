package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-advisor-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response é o envelope padrão das respostas de sucesso
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Summary any    `json:"summary,omitempty"`
	Meta    any    `json:"meta,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode response")
	}
}
