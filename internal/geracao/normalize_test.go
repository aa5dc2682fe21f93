package geracao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuestao_Tipo(t *testing.T) {
	casos := []struct {
		nome string
		item map[string]interface{}
		tipo TipoQuestao
	}{
		{"TipoExato", map[string]interface{}{"tipo": "dissertativa"}, TipoDissertativa},
		{"Discursiva", map[string]interface{}{"tipo": "Discursiva"}, TipoDissertativa},
		{"EssayEmIngles", map[string]interface{}{"type": "essay"}, TipoDissertativa},
		{"QuestaoAberta", map[string]interface{}{"tipo": "aberta"}, TipoDissertativa},
		{"ObjetivaExplicita", map[string]interface{}{"tipo": "objetiva"}, TipoObjetiva},
		{"MultiplaEscolha", map[string]interface{}{"tipo": "multipla escolha"}, TipoObjetiva},
		{"TipoAusente", map[string]interface{}{}, TipoObjetiva},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.tipo, NormalizeQuestao(c.item, 1).Tipo)
		})
	}
}

func TestNormalizeQuestao_Enunciado(t *testing.T) {
	t.Run("AliasesEmOrdem", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"pergunta": "  Qual a capital do Brasil?  ",
		}, 1)
		assert.Equal(t, "Qual a capital do Brasil?", q.Enunciado)
	})

	t.Run("AliasIngles", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{"statement": "What is 2+2?"}, 1)
		assert.Equal(t, "What is 2+2?", q.Enunciado)
	})

	t.Run("SomenteEspacosViraVazio", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{"enunciado": "   "}, 1)
		assert.Empty(t, q.Enunciado)
	})
}

func TestNormalizeQuestao_Alternativas(t *testing.T) {
	t.Run("MenosDeQuatroCompletaComVazias", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado":    "Escolha",
			"alternativas": []interface{}{"Brasília", "São Paulo"},
		}, 1)

		assert.Equal(t, []string{"Brasília", "São Paulo", "", ""}, q.Alternativas)
	})

	t.Run("MaisDeQuatroCorta", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado":    "Escolha",
			"options":      []interface{}{"a", "b", "c", "d", "e", "f"},
		}, 1)

		assert.Equal(t, []string{"a", "b", "c", "d"}, q.Alternativas)
	})

	t.Run("ElementosNaoString", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado":    "Escolha",
			"alternativas": []interface{}{float64(10), map[string]interface{}{"texto": "vinte"}},
		}, 1)

		assert.Equal(t, []string{"10", "vinte", "", ""}, q.Alternativas)
	})

	t.Run("DissertativaNaoTemAlternativas", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"tipo":         "dissertativa",
			"enunciado":    "Explique",
			"alternativas": []interface{}{"a", "b"},
		}, 1)

		assert.Nil(t, q.Alternativas)
	})
}

func TestNormalizeQuestao_RespostaCorreta(t *testing.T) {
	t.Run("TextoDaAlternativaViraLetra", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado":       "Capital do Brasil?",
			"alternativas":    []interface{}{"Rio de Janeiro", "Brasília", "Salvador", "Curitiba"},
			"respostaCorreta": "brasília",
		}, 1)

		assert.Equal(t, "B", q.RespostaCorreta)
	})

	t.Run("LetraMinusculaNormalizada", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado":    "Escolha",
			"alternativas": []interface{}{"a1", "a2", "a3", "a4"},
			"gabarito":     "c",
		}, 1)

		assert.Equal(t, "C", q.RespostaCorreta)
	})

	t.Run("AusenteAssumePrimeiraAlternativa", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado":    "Escolha",
			"alternativas": []interface{}{"a1", "a2"},
		}, 1)

		assert.Equal(t, "A", q.RespostaCorreta)
	})

	t.Run("AliasGabarito", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"tipo":      "dissertativa",
			"enunciado": "Explique a fotossíntese",
			"gabarito":  "Processo de conversão de luz em energia química.",
		}, 1)

		assert.Equal(t, "Processo de conversão de luz em energia química.", q.RespostaCorreta)
	})
}

func TestNormalizeQuestao_Pontos(t *testing.T) {
	t.Run("UsaPadraoQuandoAusente", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{"enunciado": "x", "alternativas": []interface{}{"a"}}, 2.5)
		assert.Equal(t, 2.5, q.Pontos)
	})

	t.Run("ExplicitoVence", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado": "x", "alternativas": []interface{}{"a"}, "pontos": float64(3),
		}, 2.5)
		assert.Equal(t, 3.0, q.Pontos)
	})

	t.Run("StringComVirgula", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado": "x", "alternativas": []interface{}{"a"}, "valor": "1,5",
		}, 1)
		assert.Equal(t, 1.5, q.Pontos)
	})

	t.Run("NegativoViraZero", func(t *testing.T) {
		q := NormalizeQuestao(map[string]interface{}{
			"enunciado": "x", "alternativas": []interface{}{"a"}, "pontos": float64(-2),
		}, 1)
		assert.Equal(t, 0.0, q.Pontos)
	})
}
