package usecase

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// LeadAnalysis é o veredito devolvido pela IA para um resultado de busca
type LeadAnalysis struct {
	Score       float64 `json:"score"`
	CompanyName string  `json:"company_name"`
	Reasoning   string  `json:"reasoning"`
}

var ErrUnparsableAnalysis = errors.New("resposta da IA não contém JSON válido")

// Pega do primeiro "{" ao último "}" — cobre JSON embrulhado em markdown
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// DecodeLeadAnalysis extrai o JSON da resposta livre do modelo.
// Estratégia 1: parse direto. Estratégia 2: extrair o bloco entre chaves
// (modelos adoram devolver ```json ... ```). Se ambas falham, o candidato
// é descartado pelo chamador.
func DecodeLeadAnalysis(content string) (*LeadAnalysis, error) {
	content = strings.TrimSpace(content)

	var analysis LeadAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err == nil {
		return &analysis, nil
	}

	block := jsonBlockRe.FindString(content)
	if block == "" {
		return nil, ErrUnparsableAnalysis
	}

	if err := json.Unmarshal([]byte(block), &analysis); err != nil {
		return nil, ErrUnparsableAnalysis
	}

	return &analysis, nil
}

// ClampScore força o score para dentro de [0, 10], seja lá o que o modelo devolver
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
