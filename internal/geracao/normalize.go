package geracao

import (
	"fmt"
	"strconv"
	"strings"
)

// Aliases de campo aceitos do modelo. O upstream não garante os nomes
// pedidos no prompt, então o normalizador reconhece variantes em
// português e inglês.
var (
	camposTipo         = []string{"tipo", "type", "kind"}
	camposEnunciado    = []string{"enunciado", "pergunta", "questao", "statement", "question", "texto"}
	camposAlternativas = []string{"alternativas", "opcoes", "options", "choices"}
	camposResposta     = []string{"respostaCorreta", "resposta_correta", "gabarito", "resposta", "correctAnswer", "correct_answer", "answer"}
	camposPontos       = []string{"pontos", "valor", "points", "peso"}
)

// NormalizeQuestao mapeia um item frouxamente tipado do modelo para uma
// Questao canônica. É total: nunca falha — todo acesso a campo tem
// default, e cabe a ParseQuestoes descartar itens inaproveitáveis.
func NormalizeQuestao(item map[string]interface{}, pontosPadrao float64) Questao {
	q := Questao{
		Tipo:      inferirTipo(campoTexto(item, camposTipo...)),
		Enunciado: strings.TrimSpace(campoTexto(item, camposEnunciado...)),
		Pontos:    campoPontos(item, pontosPadrao),
	}

	if q.Tipo == TipoObjetiva {
		q.Alternativas = ajustarAlternativas(campoLista(item, camposAlternativas...))
	}

	resposta := strings.TrimSpace(campoTexto(item, camposResposta...))
	q.RespostaCorreta = resolverResposta(resposta, q)

	return q
}

// inferirTipo é uma heurística de substring, não um match exato de enum:
// "dissertativa", "discursiva" e "essay" caem todas em dissertativa.
func inferirTipo(bruto string) TipoQuestao {
	t := strings.ToLower(strings.TrimSpace(bruto))
	if strings.Contains(t, "dis") || strings.Contains(t, "essay") || strings.Contains(t, "aberta") {
		return TipoDissertativa
	}
	return TipoObjetiva
}

// ajustarAlternativas força exatamente numAlternativas entradas:
// corta o excedente e completa com strings vazias no final.
func ajustarAlternativas(alternativas []string) []string {
	ajustadas := make([]string, numAlternativas)
	for i := 0; i < numAlternativas && i < len(alternativas); i++ {
		ajustadas[i] = strings.TrimSpace(alternativas[i])
	}
	return ajustadas
}

// resolverResposta traduz a resposta para o rótulo da alternativa quando
// o modelo devolve o texto da alternativa em vez da letra.
func resolverResposta(resposta string, q Questao) string {
	if resposta == "" {
		if q.Tipo == TipoObjetiva && temAlternativa(q.Alternativas) {
			return "A"
		}
		return resposta
	}

	if q.Tipo != TipoObjetiva {
		return resposta
	}

	if len(resposta) == 1 {
		return strings.ToUpper(resposta)
	}

	for i, alt := range q.Alternativas {
		if alt != "" && strings.EqualFold(resposta, alt) {
			return string(rune('A' + i))
		}
	}
	return resposta
}

func temAlternativa(alternativas []string) bool {
	for _, a := range alternativas {
		if a != "" {
			return true
		}
	}
	return false
}

func campoTexto(item map[string]interface{}, chaves ...string) string {
	for _, chave := range chaves {
		v, ok := item[chave]
		if !ok || v == nil {
			continue
		}
		switch valor := v.(type) {
		case string:
			if strings.TrimSpace(valor) != "" {
				return valor
			}
		case float64:
			return strconv.FormatFloat(valor, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(valor)
		}
	}
	return ""
}

func campoLista(item map[string]interface{}, chaves ...string) []string {
	for _, chave := range chaves {
		bruto, ok := item[chave].([]interface{})
		if !ok {
			continue
		}
		lista := make([]string, 0, len(bruto))
		for _, elem := range bruto {
			lista = append(lista, stringificar(elem))
		}
		return lista
	}
	return nil
}

// stringificar cobre modelos que devolvem alternativas como objetos
// {"letra": "A", "texto": "..."} em vez de strings.
func stringificar(v interface{}) string {
	switch valor := v.(type) {
	case string:
		return valor
	case float64:
		return strconv.FormatFloat(valor, 'f', -1, 64)
	case map[string]interface{}:
		if texto := campoTexto(valor, "texto", "text", "descricao", "conteudo"); texto != "" {
			return texto
		}
		return ""
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", valor)
	}
}

func campoPontos(item map[string]interface{}, pontosPadrao float64) float64 {
	for _, chave := range camposPontos {
		v, ok := item[chave]
		if !ok || v == nil {
			continue
		}
		switch valor := v.(type) {
		case float64:
			if valor < 0 {
				return 0
			}
			return valor
		case string:
			if p, err := strconv.ParseFloat(strings.ReplaceAll(valor, ",", "."), 64); err == nil {
				if p < 0 {
					return 0
				}
				return p
			}
		}
	}
	return pontosPadrao
}
