package serper

// SearchResult é um resultado orgânico devolvido pelo Serper
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// --- PAYLOAD: O que mandamos pro Serper ---
type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// --- RESPONSE: O que o Serper devolve (só o que consumimos) ---
type searchResponse struct {
	Organic []SearchResult `json:"organic"`
}
