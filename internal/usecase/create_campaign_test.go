package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prospecta/prospecta-api/internal/entity"
	"github.com/prospecta/prospecta-api/internal/usecase"
)

func TestCreateCampaignSuccess(t *testing.T) {
	ctx := context.Background()

	mockCampaignRepo := new(MockCampaignRepository)
	mockProducer := new(MockQueueProducer)

	mockCampaignRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Campaign) bool {
		return c.UserID == "user-1" && c.Name == "Consultorias SP" && c.Status == entity.CampaignStatusActive
	})).Return(nil)
	mockProducer.On("PublishGeneration", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)

	output, err := uc.Execute(ctx, usecase.CreateCampaignInput{
		UserID: "user-1",
		Name:   "Consultorias SP",
		Query:  "consultorias em SP",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, entity.CampaignStatusActive, output.Status)
	assert.Equal(t, "Campanha criada com sucesso!", output.Msg)

	mockCampaignRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestCreateCampaignValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockCampaignRepo := new(MockCampaignRepository)
	mockProducer := new(MockQueueProducer)

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)

	output, err := uc.Execute(ctx, usecase.CreateCampaignInput{
		UserID: "user-1",
		Name:   "",
		Query:  "",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "query")

	// Entrada inválida não toca no banco nem na fila
	mockCampaignRepo.AssertNotCalled(t, "Create")
	mockProducer.AssertNotCalled(t, "PublishGeneration")
}

func TestCreateCampaignInvalidNotifyEmail(t *testing.T) {
	ctx := context.Background()

	mockCampaignRepo := new(MockCampaignRepository)
	mockProducer := new(MockQueueProducer)

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)

	output, err := uc.Execute(ctx, usecase.CreateCampaignInput{
		UserID:      "user-1",
		Name:        "Consultorias SP",
		Query:       "consultorias em SP",
		NotifyEmail: "isso-nao-e-email",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "notify_email")
}

func TestCreateCampaignRepositoryFailure(t *testing.T) {
	ctx := context.Background()

	mockCampaignRepo := new(MockCampaignRepository)
	mockProducer := new(MockQueueProducer)

	mockCampaignRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)

	output, err := uc.Execute(ctx, usecase.CreateCampaignInput{
		UserID: "user-1",
		Name:   "Consultorias SP",
		Query:  "consultorias em SP",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))

	mockProducer.AssertNotCalled(t, "PublishGeneration")
}

// Fila fora do ar não invalida a campanha criada
func TestCreateCampaignQueueFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()

	mockCampaignRepo := new(MockCampaignRepository)
	mockProducer := new(MockQueueProducer)

	mockCampaignRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockProducer.On("PublishGeneration", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)

	output, err := uc.Execute(ctx, usecase.CreateCampaignInput{
		UserID: "user-1",
		Name:   "Consultorias SP",
		Query:  "consultorias em SP",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "Campanha criada com sucesso!", output.Msg)
}
