package handlers

import (
	"net/http"

	"github.com/prospecta/prospecta-api/internal/entity"
)

type DashboardHandler struct {
	LeadRepo     entity.LeadRepositoryInterface
	CampaignRepo entity.CampaignRepositoryInterface
}

func NewDashboardHandler(leadRepo entity.LeadRepositoryInterface, campaignRepo entity.CampaignRepositoryInterface) *DashboardHandler {
	return &DashboardHandler{
		LeadRepo:     leadRepo,
		CampaignRepo: campaignRepo,
	}
}

// Handle devolve os agregados que o painel exibe
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id é obrigatório")
		return
	}

	stats, err := h.LeadRepo.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao calcular estatísticas")
		return
	}

	campaigns, err := h.CampaignRepo.CountByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao calcular estatísticas")
		return
	}
	stats.TotalCampaigns = campaigns

	writeJSON(w, http.StatusOK, stats)
}
