package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prospecta/prospecta-api/internal/entity"
	"github.com/prospecta/prospecta-api/internal/infra/http/handlers"
	"github.com/prospecta/prospecta-api/internal/infra/queue"
	"github.com/prospecta/prospecta-api/internal/usecase"
)

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishGeneration(ctx context.Context, job queue.GenerationJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func TestCampaignHandlerCreate(t *testing.T) {
	mockCampaignRepo := new(MockCampaignRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockProducer := new(MockQueueProducer)

	mockCampaignRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockProducer.On("PublishGeneration", mock.Anything, mock.MatchedBy(func(job queue.GenerationJob) bool {
		return job.Query == "consultorias em SP" && job.Origin == "CAMPAIGN_CREATED"
	})).Return(nil)

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)
	h := handlers.NewCampaignHandler(uc, mockLeadRepo)

	body := bytes.NewBufferString(`{"user_id": "user-1", "name": "Consultorias SP", "query": "consultorias em SP"}`)
	req := httptest.NewRequest(http.MethodPost, "/campaigns", body)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp usecase.CreateCampaignOutput
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.CampaignStatusActive, resp.Status)
	assert.Equal(t, "Campanha criada com sucesso!", resp.Msg)

	mockProducer.AssertExpectations(t)
}

func TestCampaignHandlerCreateValidation(t *testing.T) {
	mockCampaignRepo := new(MockCampaignRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockProducer := new(MockQueueProducer)

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)
	h := handlers.NewCampaignHandler(uc, mockLeadRepo)

	body := bytes.NewBufferString(`{"user_id": "", "name": "", "query": ""}`)
	req := httptest.NewRequest(http.MethodPost, "/campaigns", body)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCampaignRepo.AssertNotCalled(t, "Create")
}

func TestCampaignHandlerListLeads(t *testing.T) {
	mockCampaignRepo := new(MockCampaignRepository)
	mockLeadRepo := new(MockLeadRepository)
	mockProducer := new(MockQueueProducer)

	score := 9.0
	mockLeadRepo.On("ListByCampaign", mock.Anything, "camp-123").Return([]*entity.Lead{
		{ID: "lead-1", CampaignID: "camp-123", CompanyName: "Consultoria Alfa", Score: &score, Status: entity.LeadStatusQualified},
		{ID: "lead-2", CampaignID: "camp-123", CompanyName: "Beta Assessoria", Status: entity.LeadStatusNew},
	}, nil)

	uc := usecase.NewCreateCampaignUseCase(mockCampaignRepo, mockProducer)
	h := handlers.NewCampaignHandler(uc, mockLeadRepo)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/campaigns/camp-123/leads", nil), "id", "camp-123")
	rr := httptest.NewRecorder()
	h.ListLeads(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var leads []*entity.Lead
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &leads))
	assert.Len(t, leads, 2)
	assert.Equal(t, "Consultoria Alfa", leads[0].CompanyName)
}

func TestDashboardHandler(t *testing.T) {
	mockCampaignRepo := new(MockCampaignRepository)
	mockLeadRepo := new(MockLeadRepository)

	mockLeadRepo.On("Stats", mock.Anything, "user-1").Return(&entity.DashboardStats{
		TotalLeads:     42,
		QualifiedLeads: 15,
		AverageScore:   6.8,
	}, nil)
	mockCampaignRepo.On("CountByUser", mock.Anything, "user-1").Return(3, nil)

	h := handlers.NewDashboardHandler(mockLeadRepo, mockCampaignRepo)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats?user_id=user-1", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var stats entity.DashboardStats
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 42, stats.TotalLeads)
	assert.Equal(t, 15, stats.QualifiedLeads)
	assert.Equal(t, 3, stats.TotalCampaigns)
	assert.Equal(t, 6.8, stats.AverageScore)
}

func TestDashboardHandlerMissingUser(t *testing.T) {
	mockCampaignRepo := new(MockCampaignRepository)
	mockLeadRepo := new(MockLeadRepository)

	h := handlers.NewDashboardHandler(mockLeadRepo, mockCampaignRepo)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockLeadRepo.AssertNotCalled(t, "Stats")
}
