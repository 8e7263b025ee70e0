package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/prospecta/prospecta-api/internal/infra/integration/serper"
)

// Teste manual da integração com o Serper. Rode com SERPER_API_KEY setada:
//
//	go run ./sample/test-serper-integration "consultorias em SP"
func main() {
	godotenv.Load()

	apiKey := os.Getenv("SERPER_API_KEY")
	if apiKey == "" {
		log.Fatal("SERPER_API_KEY é obrigatória")
	}

	query := "consultorias em SP"
	if len(os.Args) > 1 {
		query = os.Args[1]
	}

	client := serper.NewClient(apiKey, "https://google.serper.dev")

	results, err := client.Search(context.Background(), query, 10)
	if err != nil {
		log.Fatalf("❌ Busca falhou: %v", err)
	}

	fmt.Printf("✅ %d resultado(s) para %q\n\n", len(results), query)
	for i, r := range results {
		fmt.Printf("%2d. %s\n    %s\n    %s\n\n", i+1, r.Title, r.Link, r.Snippet)
	}
}
