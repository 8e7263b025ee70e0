package usecase

import (
	"context"

	"github.com/prospecta/prospecta-api/internal/entity"
	"github.com/prospecta/prospecta-api/internal/infra/integration/lovable"
	"github.com/prospecta/prospecta-api/internal/infra/integration/serper"
	"github.com/prospecta/prospecta-api/internal/infra/queue"
)

// SearchProvider é o Search Adapter: uma busca, lista limitada de resultados
type SearchProvider interface {
	Search(ctx context.Context, query string, num int) ([]serper.SearchResult, error)
}

// AIGateway é o gateway de chat-completion usado na qualificação
type AIGateway interface {
	ChatCompletion(ctx context.Context, messages []lovable.Message, temperature float64) (string, error)
}

// LeadWriterInterface é o Lead Persistence Gateway: um bulk insert por execução
type LeadWriterInterface interface {
	BulkInsert(ctx context.Context, leads []*entity.Lead) (int, error)
}

type QueueProducerInterface interface {
	PublishGeneration(ctx context.Context, job queue.GenerationJob) error
}

type GenerateLeadsUseCase struct {
	CampaignRepo entity.CampaignRepositoryInterface
	LeadRepo     LeadWriterInterface
	Search       SearchProvider
	AI           AIGateway

	// Quantos resultados pedimos ao Serper por execução
	ResultLimit int
	// Fan-out da qualificação; 1 = sequencial
	Workers int
}

type CreateCampaignUseCase struct {
	CampaignRepo entity.CampaignRepositoryInterface
	Queue        QueueProducerInterface
}
