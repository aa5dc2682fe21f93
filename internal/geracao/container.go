package geracao

import (
	"context"
	"log"

	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

type GeracaoContainer struct {
	Handler *Handler
	Invoker *ia.Invoker
}

func NewGeracaoContainer(uso UsoRecorder) *GeracaoContainer {
	ctx := context.Background()
	cfg := ia.ConfigFromEnv()

	provider, err := ia.NewGeminiProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create Gemini provider: %v", err)
	}

	invoker := ia.NewInvoker(provider, cfg)
	service := NewService(invoker, uso)
	handler := NewHandler(service)

	return &GeracaoContainer{
		Handler: handler,
		Invoker: invoker,
	}
}
