package geracao

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNenhumaQuestao indica que nem o parse estruturado nem o fallback de
// linhas produziram itens aproveitáveis. Nunca devolvemos um conjunto
// vazio como sucesso.
var ErrNenhumaQuestao = errors.New("nenhuma questão pôde ser extraída da resposta do modelo")

// Chaves de embrulho conhecidas para o array de questões.
var chavesEmbrulho = []string{"questoes", "questões", "questions", "perguntas", "itens", "items"}

// ParseQuestoes transforma a resposta bruta do modelo no conjunto final
// de questões: extrai o JSON, normaliza item a item, descarta os
// inaproveitáveis e corta o excedente em quantidade. Menos questões
// válidas que o pedido é aceito; zero é erro.
func ParseQuestoes(bruto string, pontosPadrao float64, quantidade int) ([]Questao, error) {
	var questoes []Questao
	if itens, ok := parseEstruturado(bruto); ok {
		for _, item := range itens {
			q := NormalizeQuestao(item, pontosPadrao)
			if descartar(q) {
				continue
			}
			questoes = append(questoes, q)
		}
	} else {
		// O parse falhou por inteiro: recuperação heurística por linhas.
		questoes = fallbackLinhas(bruto, pontosPadrao)
	}

	if quantidade > 0 && len(questoes) > quantidade {
		questoes = questoes[:quantidade]
	}

	if len(questoes) == 0 {
		return nil, ErrNenhumaQuestao
	}
	return questoes, nil
}

func parseEstruturado(bruto string) ([]map[string]interface{}, bool) {
	candidato := ExtractJSON(bruto)

	var raiz interface{}
	if err := json.Unmarshal([]byte(candidato), &raiz); err != nil {
		return nil, false
	}

	var lista []interface{}
	switch valor := raiz.(type) {
	case []interface{}:
		lista = valor
	case map[string]interface{}:
		for _, chave := range chavesEmbrulho {
			if arr, ok := valor[chave].([]interface{}); ok {
				lista = arr
				break
			}
		}
		if lista == nil {
			// objeto único em vez de array: trata como um item
			lista = []interface{}{valor}
		}
	default:
		return nil, false
	}

	itens := make([]map[string]interface{}, 0, len(lista))
	for _, elem := range lista {
		if item, ok := elem.(map[string]interface{}); ok {
			itens = append(itens, item)
		}
	}
	return itens, len(itens) > 0
}

// descartar aplica os critérios mínimos por item: enunciado não vazio e,
// para objetivas, ao menos uma alternativa preenchida.
func descartar(q Questao) bool {
	if q.Enunciado == "" {
		return true
	}
	if q.Tipo == TipoObjetiva && !temAlternativa(q.Alternativas) {
		return true
	}
	return false
}

var marcadorLista = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)\s]|[a-zA-Z][.)])\s*`)
var separadorBlocos = regexp.MustCompile(`\n\s*\n`)

// fallbackLinhas é a recuperação degradada para respostas curtas em que
// o modelo ignora a diretiva de JSON: cada bloco separado por linha em
// branco vira uma questão dissertativa, dividindo enunciado e gabarito
// no marcador literal "Resposta:".
func fallbackLinhas(bruto string, pontosPadrao float64) []Questao {
	var questoes []Questao

	for _, bloco := range separadorBlocos.Split(bruto, -1) {
		linhas := strings.Split(bloco, "\n")
		for i, linha := range linhas {
			linhas[i] = marcadorLista.ReplaceAllString(linha, "")
		}
		texto := strings.TrimSpace(strings.Join(linhas, "\n"))
		if texto == "" {
			continue
		}

		enunciado := texto
		resposta := ""
		if antes, depois, achou := strings.Cut(texto, "Resposta:"); achou {
			enunciado = strings.TrimSpace(antes)
			resposta = strings.TrimSpace(depois)
		}
		if enunciado == "" {
			continue
		}

		questoes = append(questoes, Questao{
			Tipo:            TipoDissertativa,
			Enunciado:       enunciado,
			RespostaCorreta: resposta,
			Pontos:          pontosPadrao,
		})
	}

	return questoes
}
