package usecase

// DomainError é erro de regra de negócio (entrada inválida, campanha
// inexistente). O handler traduz o Code para o status HTTP.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError é falha de infraestrutura (busca externa, banco)
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Códigos usados pelo pipeline de geração de leads
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeCampaignNotFound = "CAMPAIGN_NOT_FOUND"
	CodeSearchFailed     = "SEARCH_FAILED"
	CodeDatabaseError    = "DATABASE_ERROR"
)
