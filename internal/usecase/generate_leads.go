package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/prospecta/prospecta-api/internal/entity"
	"github.com/prospecta/prospecta-api/internal/infra/integration/lovable"
	"github.com/prospecta/prospecta-api/internal/infra/integration/serper"
)

const qualificationSystemPrompt = `Você é um especialista em qualificação de leads B2B. Analise o resultado de busca e atribua um score de 0 a 10 baseado em:
- Relevância do negócio para a busca
- Clareza das informações
- Potencial como lead de vendas
Retorne APENAS um JSON válido no formato: {"score": número, "company_name": "nome", "reasoning": "breve explicação"}`

// Temperatura baixa: queremos scores estáveis, não criatividade
const qualificationTemperature = 0.3

type GenerateLeadsInput struct {
	CampaignID string `json:"campaign_id"`
	Query      string `json:"query"`
}

type GenerateLeadsOutput struct {
	Message      string `json:"message"`
	LeadsCreated int    `json:"leads_created"`
	TotalResults int    `json:"total_results"`
}

func NewGenerateLeadsUseCase(
	campaignRepo entity.CampaignRepositoryInterface,
	leadRepo LeadWriterInterface,
	search SearchProvider,
	ai AIGateway,
	resultLimit int,
	workers int,
) *GenerateLeadsUseCase {
	if resultLimit <= 0 {
		resultLimit = 10
	}
	if workers <= 0 {
		workers = 1
	}
	return &GenerateLeadsUseCase{
		CampaignRepo: campaignRepo,
		LeadRepo:     leadRepo,
		Search:       search,
		AI:           ai,
		ResultLimit:  resultLimit,
		Workers:      workers,
	}
}

// Execute roda o pipeline completo: resolve a campanha, busca no Serper,
// qualifica cada resultado com a IA e grava os aprovados em um bulk insert.
// Falha de um candidato nunca derruba o lote — o pipeline devolve o
// subconjunto que conseguiu qualificar.
func (uc *GenerateLeadsUseCase) Execute(ctx context.Context, input GenerateLeadsInput) (*GenerateLeadsOutput, error) {

	if strings.TrimSpace(input.CampaignID) == "" || strings.TrimSpace(input.Query) == "" {
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: "campaign_id e query são obrigatórios",
		}
	}

	// 1. Resolver a campanha (e o dono) ANTES de gastar qualquer chamada externa
	campaign, err := uc.CampaignRepo.FindByID(ctx, input.CampaignID)
	if err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			return nil, &DomainError{
				Code:    CodeCampaignNotFound,
				Message: "Campanha não encontrada",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "falha ao buscar campanha: " + err.Error(),
		}
	}

	// 2. Buscar empresas no Serper
	log.Printf("🔎 Buscando empresas com Serper: %q", input.Query)
	results, err := uc.Search.Search(ctx, input.Query, uc.ResultLimit)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeSearchFailed,
			Message: "Erro ao buscar resultados",
		}
	}

	if len(results) == 0 {
		return &GenerateLeadsOutput{
			Message:      "Nenhum resultado encontrado",
			LeadsCreated: 0,
			TotalResults: 0,
		}, nil
	}

	log.Printf("🤖 Encontrados %d resultados, qualificando com IA...", len(results))

	// 3. Fan-out da qualificação. Cada candidato é independente: erro de um
	// vira skip, nunca aborta o lote. Sem retry/backoff — um 429 da IA
	// descarta o candidato, igual a qualquer outra falha.
	var mu sync.Mutex
	leadsToInsert := []*entity.Lead{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.Workers)

	for _, result := range results {
		result := result
		g.Go(func() error {
			lead, err := uc.qualify(gctx, campaign, input.Query, result)
			if err != nil {
				log.Printf("⚠️ Candidato descartado (%s): %v", result.Link, err)
				return nil // skip, não propaga
			}

			mu.Lock()
			leadsToInsert = append(leadsToInsert, lead)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	// 4. Bulk insert dos aprovados (lista vazia = no-op, 0 leads)
	created, err := uc.LeadRepo.BulkInsert(ctx, leadsToInsert)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "Erro ao salvar leads",
		}
	}

	log.Printf("✅ %d lead(s) criados para a campanha %s (%d resultados)", created, campaign.ID, len(results))

	return &GenerateLeadsOutput{
		Message:      "Leads gerados com sucesso",
		LeadsCreated: created,
		TotalResults: len(results),
	}, nil
}

// qualify manda um resultado de busca para a IA e monta o lead a partir do
// veredito: score clampado em [0,10], nome da empresa com fallback para o
// título e status derivado da regra fixa de corte.
func (uc *GenerateLeadsUseCase) qualify(ctx context.Context, campaign *entity.Campaign, query string, result serper.SearchResult) (*entity.Lead, error) {
	snippet := result.Snippet
	if snippet == "" {
		snippet = "Sem descrição"
	}

	userContent := fmt.Sprintf(`Qualifique este resultado:
Título: %s
URL: %s
Descrição: %s

Query original: %s`, result.Title, result.Link, snippet, query)

	messages := []lovable.Message{
		{Role: "system", Content: qualificationSystemPrompt},
		{Role: "user", Content: userContent},
	}

	content, err := uc.AI.ChatCompletion(ctx, messages, qualificationTemperature)
	if err != nil {
		return nil, err
	}

	analysis, err := DecodeLeadAnalysis(content)
	if err != nil {
		return nil, err
	}

	companyName := analysis.CompanyName
	if companyName == "" {
		companyName = result.Title
	}

	score := ClampScore(analysis.Score)

	return &entity.Lead{
		ID:          uuid.New().String(),
		UserID:      campaign.UserID,
		CampaignID:  campaign.ID,
		CompanyName: companyName,
		Website:     result.Link,
		Score:       &score,
		Status:      entity.StatusForScore(score),
		Reasoning:   analysis.Reasoning,
		CreatedAt:   time.Now(),
	}, nil
}

// GenerateForCampaign é o adaptador que o worker da fila consome
func (uc *GenerateLeadsUseCase) GenerateForCampaign(ctx context.Context, campaignID, query string) (int, int, error) {
	out, err := uc.Execute(ctx, GenerateLeadsInput{CampaignID: campaignID, Query: query})
	if err != nil {
		return 0, 0, err
	}
	return out.LeadsCreated, out.TotalResults, nil
}
