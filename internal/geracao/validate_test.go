package geracao

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemObjetiva(enunciado string) map[string]interface{} {
	return map[string]interface{}{
		"tipo":            "objetiva",
		"enunciado":       enunciado,
		"alternativas":    []interface{}{"A1", "A2", "A3", "A4"},
		"respostaCorreta": "A",
	}
}

func respostaJSON(t *testing.T, itens []map[string]interface{}) string {
	t.Helper()
	b, err := json.Marshal(itens)
	require.NoError(t, err)
	return string(b)
}

func TestParseQuestoes_Estruturado(t *testing.T) {
	t.Run("ArrayBemFormado", func(t *testing.T) {
		bruto := respostaJSON(t, []map[string]interface{}{
			itemObjetiva("Q1"), itemObjetiva("Q2"), itemObjetiva("Q3"),
		})

		questoes, err := ParseQuestoes(bruto, 1, 3)

		require.NoError(t, err)
		require.Len(t, questoes, 3)
		assert.Equal(t, "Q1", questoes[0].Enunciado)
		assert.Equal(t, "Q3", questoes[2].Enunciado)
	})

	t.Run("EmbrulhadoEmObjeto", func(t *testing.T) {
		bruto := `{"questoes":` + respostaJSON(t, []map[string]interface{}{itemObjetiva("Q1")}) + `}`

		questoes, err := ParseQuestoes(bruto, 1, 1)

		require.NoError(t, err)
		assert.Len(t, questoes, 1)
	})

	t.Run("DescartaEnunciadoVazio", func(t *testing.T) {
		bruto := respostaJSON(t, []map[string]interface{}{
			itemObjetiva("Q1"), itemObjetiva("   "), itemObjetiva("Q3"),
		})

		questoes, err := ParseQuestoes(bruto, 1, 5)

		require.NoError(t, err)
		require.Len(t, questoes, 2)
		assert.Equal(t, "Q3", questoes[1].Enunciado)
	})

	t.Run("DescartaObjetivaSemAlternativas", func(t *testing.T) {
		bruto := respostaJSON(t, []map[string]interface{}{
			{"tipo": "objetiva", "enunciado": "Sem alternativas"},
			itemObjetiva("Q2"),
		})

		questoes, err := ParseQuestoes(bruto, 1, 5)

		require.NoError(t, err)
		require.Len(t, questoes, 1)
		assert.Equal(t, "Q2", questoes[0].Enunciado)
	})

	t.Run("CortaExcedenteNuncaCompleta", func(t *testing.T) {
		bruto := respostaJSON(t, []map[string]interface{}{
			itemObjetiva("Q1"), itemObjetiva("Q2"), itemObjetiva("Q3"), itemObjetiva("Q4"),
		})

		questoes, err := ParseQuestoes(bruto, 1, 2)

		require.NoError(t, err)
		assert.Len(t, questoes, 2)

		// menos itens válidos que o pedido não é erro
		questoes, err = ParseQuestoes(bruto, 1, 10)
		require.NoError(t, err)
		assert.Len(t, questoes, 4)
	})
}

func TestParseQuestoes_FallbackLinhas(t *testing.T) {
	t.Run("TextoSemJSON", func(t *testing.T) {
		bruto := "1. Explique o ciclo da água. Resposta: Evaporação, condensação e precipitação.\n\n" +
			"2. O que é fotossíntese? Resposta: Conversão de luz em energia química."

		questoes, err := ParseQuestoes(bruto, 2, 5)

		require.NoError(t, err)
		require.Len(t, questoes, 2)
		assert.Equal(t, TipoDissertativa, questoes[0].Tipo)
		assert.Equal(t, "Explique o ciclo da água.", questoes[0].Enunciado)
		assert.Equal(t, "Evaporação, condensação e precipitação.", questoes[0].RespostaCorreta)
		assert.Equal(t, 2.0, questoes[1].Pontos)
	})

	t.Run("MarcadoresDeListaRemovidos", func(t *testing.T) {
		bruto := "- Primeira questão sem resposta\n\n* Segunda questão"

		questoes, err := ParseQuestoes(bruto, 1, 5)

		require.NoError(t, err)
		require.Len(t, questoes, 2)
		assert.Equal(t, "Primeira questão sem resposta", questoes[0].Enunciado)
		assert.Equal(t, "Segunda questão", questoes[1].Enunciado)
	})

	t.Run("VazioRetornaErro", func(t *testing.T) {
		_, err := ParseQuestoes("   \n\n  ", 1, 5)
		assert.ErrorIs(t, err, ErrNenhumaQuestao)
	})

	t.Run("JSONValidoMasTodosDescartadosRetornaErro", func(t *testing.T) {
		bruto := respostaJSON(t, []map[string]interface{}{
			{"tipo": "objetiva", "enunciado": ""},
		})

		_, err := ParseQuestoes(bruto, 1, 5)
		assert.ErrorIs(t, err, ErrNenhumaQuestao)
	})
}

// Cenário A do fluxo completo: 3 questões pedidas, 3 bem formadas na
// resposta, ordem preservada e objetivas com 4 alternativas.
func TestParseQuestoes_CenarioCompleto(t *testing.T) {
	bruto := "```json\n" + respostaJSON(t, []map[string]interface{}{
		itemObjetiva("Objetiva um"),
		itemObjetiva("Objetiva dois"),
		{"tipo": "dissertativa", "enunciado": "Disserte sobre o tema", "gabarito": "Resumo esperado"},
	}) + "\n```"

	questoes, err := ParseQuestoes(bruto, 1, 3)

	require.NoError(t, err)
	require.Len(t, questoes, 3)
	assert.Equal(t, TipoObjetiva, questoes[0].Tipo)
	assert.Equal(t, TipoObjetiva, questoes[1].Tipo)
	assert.Equal(t, TipoDissertativa, questoes[2].Tipo)
	assert.Len(t, questoes[0].Alternativas, 4)
	assert.Len(t, questoes[1].Alternativas, 4)
	assert.Nil(t, questoes[2].Alternativas)
}

// Cenário B: 5 pedidas com valor total 10, uma cai por enunciado vazio.
// O padrão de pontos deriva da quantidade pedida (10/5 = 2), não das
// sobreviventes; pontos explícitos do item vencem o padrão.
func TestParseQuestoes_PontosDerivadosDoPedido(t *testing.T) {
	req := GerarQuestoesRequest{Quantidade: 5, ValorTotal: 10}
	itens := []map[string]interface{}{
		itemObjetiva("Q1"),
		itemObjetiva("Q2"),
		itemObjetiva("   "),
		itemObjetiva("Q4"),
		itemObjetiva("Q5"),
	}
	itens[3]["pontos"] = float64(4)

	questoes, err := ParseQuestoes(respostaJSON(t, itens), req.PontosPadrao(), req.Quantidade)

	require.NoError(t, err)
	require.Len(t, questoes, 4)
	assert.Equal(t, 2.0, questoes[0].Pontos)
	assert.Equal(t, 2.0, questoes[1].Pontos)
	assert.Equal(t, 4.0, questoes[2].Pontos)
	assert.Equal(t, 2.0, questoes[3].Pontos)
}
