package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCampaignNotFound = errors.New("campanha não encontrada")

const (
	CampaignStatusActive   = "active"
	CampaignStatusInactive = "inactive"
)

// Entidade: Campaign (uma rodada de prospecção com uma busca)
type Campaign struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Query     string    `json:"query"`
	Status    string    `json:"status"` // active, inactive
	CreatedAt time.Time `json:"created_at"`
}

type CampaignRepositoryInterface interface {
	Create(ctx context.Context, c *Campaign) error
	FindByID(ctx context.Context, id string) (*Campaign, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// NewCampaign cria uma campanha ativa com ID e timestamp
func NewCampaign(userID, name, query string) *Campaign {
	return &Campaign{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Query:     query,
		Status:    CampaignStatusActive,
		CreatedAt: time.Now(),
	}
}
