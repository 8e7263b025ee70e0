package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// GenerationJob é o payload publicado quando uma campanha pede geração de leads
type GenerationJob struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Query        string `json:"query"`
	UserID       string `json:"user_id"`

	// Email opcional para o resumo da execução
	NotifyEmail string `json:"notify_email,omitempty"`

	Origin string `json:"origin"` // CAMPAIGN_CREATED, MANUAL
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishGeneration(ctx context.Context, job GenerationJob) error {

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("erro ao converter job: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Job salvo no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
