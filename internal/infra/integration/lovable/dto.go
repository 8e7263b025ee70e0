package lovable

// Message é uma mensagem no formato chat-completion do gateway
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// --- PAYLOAD: O que mandamos pro gateway ---
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// --- RESPONSE: O que o gateway devolve (formato OpenAI) ---
type chatChoice struct {
	Message Message `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}
