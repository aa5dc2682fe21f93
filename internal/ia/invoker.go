package ia

import (
	"context"

	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

// Invoker tenta cada modelo candidato em sequência e para no primeiro
// sucesso. As chamadas são aguardadas uma a uma: no máximo
// len(candidatos) requisições por ação do usuário.
type Invoker struct {
	provider   Provider
	candidatos []string
}

func NewInvoker(provider Provider, cfg Config) *Invoker {
	return &Invoker{
		provider:   provider,
		candidatos: cfg.Candidatos(),
	}
}

// Invoke retorna o texto bruto da primeira chamada bem-sucedida e o
// modelo que a atendeu. Se todos os candidatos falharem, retorna
// *ErrIndisponivel com a mensagem derivada do último erro.
func (i *Invoker) Invoke(ctx context.Context, prompt string, anexos []Anexo) (texto, modelo string, err error) {
	log := config.WithContext(ctx)

	var ultimoErr error
	for _, candidato := range i.candidatos {
		texto, err := i.provider.GenerateContent(ctx, candidato, prompt, anexos)
		if err == nil {
			return texto, candidato, nil
		}

		ultimoErr = err
		log.WithError(err).Warnf("Modelo %s falhou, tentando o próximo candidato", candidato)

		if ctx.Err() != nil {
			break
		}
	}

	log.WithError(ultimoErr).Error("Todos os modelos candidatos falharam")
	return "", "", &ErrIndisponivel{
		Motivo: classificarFalha(ultimoErr),
		Err:    ultimoErr,
	}
}

// Candidatos expõe a lista efetiva, na ordem de tentativa.
func (i *Invoker) Candidatos() []string {
	out := make([]string, len(i.candidatos))
	copy(out, i.candidatos)
	return out
}
