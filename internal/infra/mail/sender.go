package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const summaryTemplate = `<html>
<body style="font-family: sans-serif; color: #1f2937;">
	<h2>Sua campanha "{{.CampaignName}}" terminou de rodar 🎯</h2>
	<p>A busca retornou <strong>{{.TotalResults}}</strong> resultado(s) e a IA
	qualificou <strong>{{.LeadsCreated}}</strong> novo(s) lead(s).</p>
	<p>Acesse o painel para ver os scores e começar a abordagem.</p>
</body>
</html>`

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendLeadsSummary envia o resumo de uma execução do pipeline para o usuário
func (s *EmailSender) SendLeadsSummary(to, campaignName string, created, total int) error {
	data := SummaryEmailData{
		CampaignName: campaignName,
		LeadsCreated: created,
		TotalResults: total,
	}

	t, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@prospecta.app")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Campanha %q: %d novo(s) lead(s) 🚀", campaignName, created))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
