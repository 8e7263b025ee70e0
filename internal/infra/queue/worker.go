package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadGenerator define o contrato do pipeline que o worker executa
type LeadGenerator interface {
	GenerateForCampaign(ctx context.Context, campaignID, query string) (created, total int, err error)
}

// SummaryMailer envia o resumo da execução para o dono da campanha
type SummaryMailer interface {
	SendLeadsSummary(to, campaignName string, created, total int) error
}

type Worker struct {
	Channel   *amqp.Channel
	Generator LeadGenerator
	Mailer    SummaryMailer // opcional; nil desliga o email de resumo
}

func NewWorker(ch *amqp.Channel, generator LeadGenerator, mailer SummaryMailer) *Worker {
	return &Worker{
		Channel:   ch,
		Generator: generator,
		Mailer:    mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Job de geração recebido do RabbitMQ")

			var job GenerationJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Gerando leads para campanha %s (%q)", job.CampaignID, job.Query)

			created, total, err := w.Generator.GenerateForCampaign(context.Background(), job.CampaignID, job.Query)
			if err != nil {
				log.Printf("❌ [WORKER] Pipeline falhou: %s", err)
				// Erros terminais (campanha sumiu, Serper fora) vão pra DLQ;
				// requeue aqui só faria o mesmo job falhar em loop.
				d.Nack(false, false)
				continue
			}

			log.Printf("✅ [WORKER] Campanha %s: %d lead(s) de %d resultado(s)", job.CampaignID, created, total)

			if w.Mailer != nil && job.NotifyEmail != "" {
				if err := w.Mailer.SendLeadsSummary(job.NotifyEmail, job.CampaignName, created, total); err != nil {
					// Email é cortesia, não motivo de reprocessar o job
					log.Printf("⚠️ [WORKER] Falha ao enviar resumo por email: %s", err)
				}
			}

			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
