package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{"credenciais inválidas", ErrInvalidCredentials, http.StatusUnauthorized},
		{"recurso não encontrado", ErrResourceNotFound, http.StatusNotFound},
		{"dados impossíveis de processar", ErrUnprocessable, http.StatusUnprocessableEntity},
		{"serviço externo", ErrExternalService, http.StatusBadGateway},
		{"modelo indisponível", ErrModelUnavailable, http.StatusServiceUnavailable},
		{"código desconhecido vira erro interno", "XXX_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)

	apiErr = FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
