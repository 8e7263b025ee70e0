package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prospecta/prospecta-api/internal/entity"
)

type LeadHandler struct {
	LeadRepo        entity.LeadRepositoryInterface
	InteractionRepo entity.InteractionRepositoryInterface
}

func NewLeadHandler(leadRepo entity.LeadRepositoryInterface, interactionRepo entity.InteractionRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		LeadRepo:        leadRepo,
		InteractionRepo: interactionRepo,
	}
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id do lead é obrigatório")
		return
	}

	lead, err := h.LeadRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Lead não encontrado")
			return
		}
		writeError(w, http.StatusInternalServerError, "Erro ao buscar lead")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus move o lead no funil (new → contacted → ... → won/lost)
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id do lead é obrigatório")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if !entity.IsValidLeadStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "status inválido")
		return
	}

	if err := h.LeadRepo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Lead não encontrado")
			return
		}
		writeError(w, http.StatusInternalServerError, "Erro ao atualizar status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

type AddInteractionRequest struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

func (h *LeadHandler) AddInteraction(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if leadID == "" {
		writeError(w, http.StatusBadRequest, "id do lead é obrigatório")
		return
	}

	var req AddInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if req.UserID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "user_id e content são obrigatórios")
		return
	}

	if !entity.IsValidInteractionType(req.Type) {
		writeError(w, http.StatusBadRequest, "type inválido (note, email, call, meeting)")
		return
	}

	interaction := entity.NewLeadInteraction(leadID, req.UserID, req.Type, req.Content)

	if err := h.InteractionRepo.Create(r.Context(), interaction); err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao salvar interação")
		return
	}

	writeJSON(w, http.StatusCreated, interaction)
}

func (h *LeadHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if leadID == "" {
		writeError(w, http.StatusBadRequest, "id do lead é obrigatório")
		return
	}

	interactions, err := h.InteractionRepo.ListByLead(r.Context(), leadID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao listar interações")
		return
	}

	writeJSON(w, http.StatusOK, interactions)
}
