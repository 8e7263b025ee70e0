package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prospecta/prospecta-api/internal/entity"
	"github.com/prospecta/prospecta-api/internal/usecase"
)

type CampaignHandler struct {
	CreateUC *usecase.CreateCampaignUseCase
	LeadRepo entity.LeadRepositoryInterface
}

func NewCampaignHandler(createUC *usecase.CreateCampaignUseCase, leadRepo entity.LeadRepositoryInterface) *CampaignHandler {
	return &CampaignHandler{
		CreateUC: createUC,
		LeadRepo: leadRepo,
	}
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCampaignInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		status, message := statusForError(err)
		writeError(w, status, message)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *CampaignHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")
	if campaignID == "" {
		writeError(w, http.StatusBadRequest, "id da campanha é obrigatório")
		return
	}

	leads, err := h.LeadRepo.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao listar leads")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}
