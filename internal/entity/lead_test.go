package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospecta/prospecta-api/internal/entity"
)

func TestStatusForScore(t *testing.T) {
	assert.Equal(t, entity.LeadStatusNew, entity.StatusForScore(0))
	assert.Equal(t, entity.LeadStatusNew, entity.StatusForScore(6.9))
	assert.Equal(t, entity.LeadStatusQualified, entity.StatusForScore(7))
	assert.Equal(t, entity.LeadStatusQualified, entity.StatusForScore(10))
}

func TestIsValidLeadStatus(t *testing.T) {
	for _, status := range []string{"new", "contacted", "qualified", "negotiation", "won", "lost"} {
		assert.True(t, entity.IsValidLeadStatus(status), status)
	}
	assert.False(t, entity.IsValidLeadStatus("banana"))
	assert.False(t, entity.IsValidLeadStatus(""))
	assert.False(t, entity.IsValidLeadStatus("Qualified"))
}

func TestNewCampaignDefaults(t *testing.T) {
	c := entity.NewCampaign("user-1", "Consultorias SP", "consultorias em SP")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, entity.CampaignStatusActive, c.Status)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestNewLeadInteraction(t *testing.T) {
	i := entity.NewLeadInteraction("lead-1", "user-1", entity.InteractionTypeCall, "Liguei, pediu proposta")

	assert.NotEmpty(t, i.ID)
	assert.Equal(t, "lead-1", i.LeadID)
	assert.Equal(t, entity.InteractionTypeCall, i.Type)
	assert.False(t, i.CreatedAt.IsZero())
}
