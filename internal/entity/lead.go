package entity

import (
	"context"
	"time"
)

const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusNegotiation = "negotiation"
	LeadStatusWon         = "won"
	LeadStatusLost        = "lost"
)

// Score mínimo para o lead já nascer como "qualified"
const QualifiedScoreThreshold = 7.0

type Lead struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CampaignID  string    `json:"campaign_id"`
	CompanyName string    `json:"company_name"`
	Website     string    `json:"website,omitempty"`
	Score       *float64  `json:"score,omitempty"`
	Status      string    `json:"status"`
	Reasoning   string    `json:"reasoning,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardStats agrega os números que o painel consome
type DashboardStats struct {
	TotalLeads     int     `json:"total_leads"`
	QualifiedLeads int     `json:"qualified_leads"`
	TotalCampaigns int     `json:"total_campaigns"`
	AverageScore   float64 `json:"average_score"`
}

type LeadRepositoryInterface interface {
	BulkInsert(ctx context.Context, leads []*Lead) (int, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Stats(ctx context.Context, userID string) (*DashboardStats, error)
}

func IsValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusNegotiation, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// StatusForScore aplica a regra fixa de negócio: score >= 7 nasce qualificado
func StatusForScore(score float64) string {
	if score >= QualifiedScoreThreshold {
		return LeadStatusQualified
	}
	return LeadStatusNew
}
