package geracao

import (
	"context"

	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/config"
	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

const (
	quantidadePadrao = 5
	quantidadeMaxima = 30
)

// UsoRecorder registra o evento de geração para o painel de uso.
// Implementado por uso.Service; nil desliga o rastreamento.
type UsoRecorder interface {
	RegistrarGeracao(ctx context.Context, userID uuid.UUID, recurso, modelo string, sucesso bool)
}

// Invocador é o contrato do laço de candidatos de ia.Invoker, extraído
// para permitir dublês nos testes.
type Invocador interface {
	Invoke(ctx context.Context, prompt string, anexos []ia.Anexo) (texto, modelo string, err error)
}

type Service interface {
	GerarQuestoes(ctx context.Context, userID uuid.UUID, req GerarQuestoesRequest) (*QuestoesGeradas, error)
}

type service struct {
	invoker Invocador
	uso     UsoRecorder
}

func NewService(invoker Invocador, uso UsoRecorder) Service {
	return &service{invoker: invoker, uso: uso}
}

// GerarQuestoes executa o pipeline completo: prompt → modelo → extração
// → normalização → validação. Tudo síncrono dentro de uma requisição;
// falha em qualquer etapa descarta o trabalho parcial e devolve um único
// erro terminal — o professor reinicia do zero se quiser tentar de novo.
func (s *service) GerarQuestoes(ctx context.Context, userID uuid.UUID, req GerarQuestoesRequest) (*QuestoesGeradas, error) {
	log := config.WithContext(ctx)

	if req.Quantidade <= 0 {
		req.Quantidade = quantidadePadrao
	}
	if req.Quantidade > quantidadeMaxima {
		req.Quantidade = quantidadeMaxima
	}

	prompt := BuildPrompt(req)

	bruto, modelo, err := s.invoker.Invoke(ctx, prompt, req.Anexos)
	if err != nil {
		s.registrar(ctx, userID, modelo, false)
		return nil, err
	}

	questoes, err := ParseQuestoes(bruto, req.PontosPadrao(), req.Quantidade)
	if err != nil {
		log.WithError(err).Errorf("Resposta do modelo %s não rendeu questões", modelo)
		s.registrar(ctx, userID, modelo, false)
		return nil, err
	}

	log.Infof("Geradas %d questões com o modelo %s", len(questoes), modelo)
	s.registrar(ctx, userID, modelo, true)

	return &QuestoesGeradas{Questoes: questoes, Modelo: modelo}, nil
}

func (s *service) registrar(ctx context.Context, userID uuid.UUID, modelo string, sucesso bool) {
	if s.uso == nil {
		return
	}
	s.uso.RegistrarGeracao(ctx, userID, "avaliacao", modelo, sucesso)
}
