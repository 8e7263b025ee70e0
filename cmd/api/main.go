package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prospecta/prospecta-api/internal/config"
	"github.com/prospecta/prospecta-api/internal/infra/database"
	"github.com/prospecta/prospecta-api/internal/infra/http/handlers"
	appmiddleware "github.com/prospecta/prospecta-api/internal/infra/http/middleware"
	"github.com/prospecta/prospecta-api/internal/infra/integration/lovable"
	"github.com/prospecta/prospecta-api/internal/infra/integration/serper"
	"github.com/prospecta/prospecta-api/internal/infra/mail"
	"github.com/prospecta/prospecta-api/internal/infra/queue"
	"github.com/prospecta/prospecta-api/internal/usecase"
)

func main() {
	godotenv.Load()

	// Config validada uma vez no startup; nada de os.Getenv por request
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	campaignRepo := database.NewCampaignRepository(db)
	leadRepo := database.NewLeadRepository(db)
	interactionRepo := database.NewInteractionRepository(db)

	// 2. Integrações externas
	searchClient := serper.NewClient(cfg.SerperAPIKey, cfg.SerperURL)
	aiClient := lovable.NewClient(cfg.LovableAPIKey, cfg.LovableURL, cfg.LovableModel)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var mailSender *mail.EmailSender
	if cfg.MailHost != "" {
		mailSender = mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}

	// 3. UseCases
	generateUC := usecase.NewGenerateLeadsUseCase(
		campaignRepo, leadRepo, searchClient, aiClient,
		cfg.SearchResultLimit, cfg.QualifyWorkers,
	)
	createCampaignUC := usecase.NewCreateCampaignUseCase(campaignRepo, producer)

	// 4. Worker (consome a fila e roda o pipeline)
	var summaryMailer queue.SummaryMailer
	if mailSender != nil {
		summaryMailer = mailSender
	}
	worker := queue.NewWorker(rabbitMQ.Ch, generateUC, summaryMailer)
	go worker.Start(queue.QueueName)

	// 5. Handlers
	generateHandler := handlers.NewGenerateLeadsHandler(generateUC)
	campaignHandler := handlers.NewCampaignHandler(createCampaignUC, leadRepo)
	leadHandler := handlers.NewLeadHandler(leadRepo, interactionRepo)
	dashboardHandler := handlers.NewDashboardHandler(leadRepo, campaignRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/generate-leads", generateHandler.Handle)
	r.Post("/campaigns", campaignHandler.Create)
	r.Get("/campaigns/{id}/leads", campaignHandler.ListLeads)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Patch("/leads/{id}/status", leadHandler.UpdateStatus)
	r.Post("/leads/{id}/interactions", leadHandler.AddInteraction)
	r.Get("/leads/{id}/interactions", leadHandler.ListInteractions)
	r.Get("/dashboard/stats", dashboardHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 Server Prospecta rodando na porta %s", addr)
	http.ListenAndServe(addr, r)
}
