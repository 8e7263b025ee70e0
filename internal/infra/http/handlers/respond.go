package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prospecta/prospecta-api/internal/infra/integration/lovable"
	"github.com/prospecta/prospecta-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusForError traduz a taxonomia de erros dos usecases para HTTP.
// Rate-limit e falta de créditos do gateway de IA têm mensagens dedicadas.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, lovable.ErrRateLimited):
		return http.StatusTooManyRequests, err.Error()
	case errors.Is(err, lovable.ErrInsufficientCredits):
		return http.StatusPaymentRequired, err.Error()
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == usecase.CodeCampaignNotFound {
			return http.StatusNotFound, domainErr.Message
		}
		return http.StatusBadRequest, domainErr.Message
	}

	return http.StatusInternalServerError, err.Error()
}
