package ia

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ErrIndisponivel indica que todos os modelos candidatos falharam.
// Motivo carrega a mensagem apresentável ao professor; a causa técnica
// fica em Err e vai apenas para o log.
type ErrIndisponivel struct {
	Motivo string
	Err    error
}

func (e *ErrIndisponivel) Error() string {
	return fmt.Sprintf("serviço de IA indisponível: %s", e.Motivo)
}

func (e *ErrIndisponivel) Unwrap() error { return e.Err }

const (
	motivoModelo       = "Modelo de IA não encontrado. Verifique o nome do modelo configurado."
	motivoChave        = "Falha de autenticação com o serviço de IA. Verifique a chave de API."
	motivoLimite       = "Limite de uso do serviço de IA atingido. Tente novamente em alguns minutos."
	motivoConetividade = "Não foi possível conectar ao serviço de IA. Tente novamente."
)

// classificarFalha escolhe a mensagem do usuário a partir do último erro.
// Prefere o código estruturado do APIError; a busca por substring é o
// último recurso, para erros opacos de transporte.
func classificarFalha(err error) string {
	if err == nil {
		return motivoConetividade
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return motivoModelo
		case http.StatusUnauthorized, http.StatusForbidden:
			return motivoChave
		case http.StatusTooManyRequests:
			return motivoLimite
		}
	}

	texto := strings.ToLower(err.Error())
	switch {
	case strings.Contains(texto, "not found") || strings.Contains(texto, "not_found"):
		return motivoModelo
	case strings.Contains(texto, "api key") || strings.Contains(texto, "unauthorized") ||
		strings.Contains(texto, "permission"):
		return motivoChave
	case strings.Contains(texto, "429") || strings.Contains(texto, "quota") ||
		strings.Contains(texto, "resource_exhausted") || strings.Contains(texto, "rate limit"):
		return motivoLimite
	default:
		return motivoConetividade
	}
}
