package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config concentra toda a configuração lida do ambiente. É carregada e
// validada uma única vez no startup e injetada nos componentes — nenhum
// componente lê os.Getenv em tempo de request.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	SerperAPIKey string `env:"SERPER_API_KEY"`
	SerperURL    string `env:"SERPER_URL" envDefault:"https://google.serper.dev"`

	LovableAPIKey string `env:"LOVABLE_API_KEY"`
	LovableURL    string `env:"LOVABLE_URL" envDefault:"https://ai.gateway.lovable.dev"`
	LovableModel  string `env:"LOVABLE_MODEL" envDefault:"google/gemini-3-flash-preview"`

	// Quantos resultados pedimos ao Serper por campanha
	SearchResultLimit int `env:"SEARCH_RESULT_LIMIT" envDefault:"10"`
	// Fan-out da qualificação (chamadas de IA simultâneas)
	QualifyWorkers int `env:"QUALIFY_WORKERS" envDefault:"3"`

	RabbitUser string `env:"RABBITMQ_USER" envDefault:"guest"`
	RabbitPass string `env:"RABBITMQ_PASS" envDefault:"guest"`
	RabbitHost string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	RabbitPort string `env:"RABBITMQ_PORT" envDefault:"5672"`

	MailHost string `env:"MAIL_HOST"`
	MailPort int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser string `env:"MAIL_USER"`
	MailPass string `env:"MAIL_PASS"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL é obrigatória")
	}
	if cfg.SerperAPIKey == "" {
		return nil, errors.New("SERPER_API_KEY é obrigatória")
	}
	if cfg.LovableAPIKey == "" {
		return nil, errors.New("LOVABLE_API_KEY é obrigatória")
	}
	if cfg.QualifyWorkers < 1 {
		cfg.QualifyWorkers = 1
	}

	return &cfg, nil
}
