package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	InteractionTypeNote    = "note"
	InteractionTypeEmail   = "email"
	InteractionTypeCall    = "call"
	InteractionTypeMeeting = "meeting"
)

// LeadInteraction registra o histórico de contato com um lead (CRM)
type LeadInteraction struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"` // note, email, call, meeting
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type InteractionRepositoryInterface interface {
	Create(ctx context.Context, i *LeadInteraction) error
	ListByLead(ctx context.Context, leadID string) ([]*LeadInteraction, error)
}

func IsValidInteractionType(t string) bool {
	switch t {
	case InteractionTypeNote, InteractionTypeEmail, InteractionTypeCall, InteractionTypeMeeting:
		return true
	}
	return false
}

func NewLeadInteraction(leadID, userID, interactionType, content string) *LeadInteraction {
	return &LeadInteraction{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		UserID:    userID,
		Type:      interactionType,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
