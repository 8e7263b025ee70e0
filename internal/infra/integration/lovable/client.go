package lovable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Erros com mensagem dedicada, distinguindo rate-limit de falta de créditos
var (
	ErrRateLimited         = errors.New("Limite de requisições excedido. Tente novamente em alguns instantes.")
	ErrInsufficientCredits = errors.New("Créditos insuficientes. Adicione créditos na sua conta Lovable.")
	ErrEmptyResponse       = errors.New("resposta da IA vazia")
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ChatCompletion envia o array de mensagens e devolve o texto da primeira
// escolha. Temperatura baixa favorece respostas determinísticas.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message, temperature float64) (string, error) {
	url := fmt.Sprintf("%s/v1/chat/completions", c.baseURL)

	payload := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal chat: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request gateway de IA: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrInsufficientCredits
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("❌ ERRO GATEWAY IA (status %d): %s\n", resp.StatusCode, string(body))
		return "", fmt.Errorf("gateway de IA rejeitou (status %d)", resp.StatusCode)
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro decode gateway de IA: %w", err)
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return response.Choices[0].Message.Content, nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ProspectaAPI/1.0")
}
