package usecase

import (
	"context"
	"log"

	"github.com/prospecta/prospecta-api/internal/entity"
	"github.com/prospecta/prospecta-api/internal/infra/queue"
)

type CreateCampaignInput struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Query  string `json:"query"`

	// Email opcional para receber o resumo quando a geração assíncrona terminar
	NotifyEmail string `json:"notify_email,omitempty"`
}

type CreateCampaignOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

func NewCreateCampaignUseCase(
	campaignRepo entity.CampaignRepositoryInterface,
	producer QueueProducerInterface,
) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{
		CampaignRepo: campaignRepo,
		Queue:        producer,
	}
}

// Execute cria a campanha e dispara a geração de leads pela fila.
// A publicação é best-effort: fila fora do ar não invalida a campanha criada,
// o usuário ainda pode disparar a geração manualmente pelo endpoint síncrono.
func (uc *CreateCampaignUseCase) Execute(ctx context.Context, input CreateCampaignInput) (*CreateCampaignOutput, error) {

	validationErrors := ValidateCreateCampaignInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: errMsg,
		}
	}

	campaign := entity.NewCampaign(input.UserID, input.Name, input.Query)

	if err := uc.CampaignRepo.Create(ctx, campaign); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist campaign: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		job := queue.GenerationJob{
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			Query:        campaign.Query,
			UserID:       campaign.UserID,
			NotifyEmail:  input.NotifyEmail,
			Origin:       "CAMPAIGN_CREATED",
		}
		if err := uc.Queue.PublishGeneration(ctx, job); err != nil {
			log.Printf("⚠️ Campanha %s criada, mas falha ao publicar na fila: %v", campaign.ID, err)
		}
	}

	return &CreateCampaignOutput{
		ID:     campaign.ID,
		Status: campaign.Status,
		Msg:    "Campanha criada com sucesso!",
	}, nil
}
