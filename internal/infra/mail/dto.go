package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

// SummaryEmailData alimenta o template do resumo de geração
type SummaryEmailData struct {
	CampaignName string
	LeadsCreated int
	TotalResults int
}
