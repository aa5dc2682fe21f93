package ia

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Anexo é um arquivo de apoio enviado pelo professor (prova antiga,
// capítulo em PDF, imagem de exercício) repassado inline ao modelo.
type Anexo struct {
	Nome     string `json:"nome"`
	MimeType string `json:"mimeType"`
	Dados    []byte `json:"dados,omitempty"`
}

type Provider interface {
	GenerateContent(ctx context.Context, modelo, prompt string, anexos []Anexo) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	cfg    Config
}

func NewGeminiProvider(ctx context.Context, cfg Config) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{client: client, cfg: cfg}, nil
}

func (p *geminiProvider) GenerateContent(ctx context.Context, modelo, prompt string, anexos []Anexo) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	for _, a := range anexos {
		if len(a.Dados) == 0 || a.MimeType == "" {
			continue
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: a.MimeType,
				Data:     a.Dados,
			},
		})
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	temp := p.cfg.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: p.cfg.MaxOutputTokens,
	}

	result, err := p.client.Models.GenerateContent(ctx, modelo, contents, config)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	texto := result.Text()
	if texto == "" {
		return "", errors.New("resposta vazia do modelo")
	}
	return texto, nil
}
