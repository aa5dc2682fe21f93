package geracao

import "github.com/avaliapro/avaliapro-lambda/internal/ia"

type TipoQuestao string

const (
	TipoObjetiva     TipoQuestao = "objetiva"
	TipoDissertativa TipoQuestao = "dissertativa"
)

// numAlternativas é fixo: a tela de edição de avaliações trabalha sempre
// com quatro alternativas por questão objetiva.
const numAlternativas = 4

// Questao é o registro canônico produzido pelo pipeline de geração.
// Para dissertativas, RespostaCorreta guarda o gabarito resumido e
// Alternativas fica vazio.
type Questao struct {
	Tipo            TipoQuestao `json:"tipo"`
	Enunciado       string      `json:"enunciado"`
	Alternativas    []string    `json:"alternativas,omitempty"`
	RespostaCorreta string      `json:"respostaCorreta"`
	Pontos          float64     `json:"pontos"`
}

type GerarQuestoesRequest struct {
	Tema             string     `json:"tema"`
	Disciplina       string     `json:"disciplina"`
	Serie            string     `json:"serie"`
	Quantidade       int        `json:"quantidade"`
	QtdObjetivas     int        `json:"qtdObjetivas"`
	QtdDissertativas int        `json:"qtdDissertativas"`
	Dificuldade      string     `json:"dificuldade"`
	Objetivo         string     `json:"objetivo"`
	ValorTotal       float64    `json:"valorTotal"`
	Anexos           []ia.Anexo `json:"anexos,omitempty"`
}

// PontosPadrao divide o valor total da prova igualmente entre as questões
// pedidas. Sem valor total, cada questão vale 1.
func (r GerarQuestoesRequest) PontosPadrao() float64 {
	if r.ValorTotal > 0 && r.Quantidade > 0 {
		return r.ValorTotal / float64(r.Quantidade)
	}
	return 1
}

type QuestoesGeradas struct {
	Questoes []Questao `json:"questoes"`
	Modelo   string    `json:"modelo"`
}
