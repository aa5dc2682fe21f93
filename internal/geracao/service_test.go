package geracao

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

type fakeInvocador struct {
	texto   string
	modelo  string
	err     error
	prompts []string
}

func (f *fakeInvocador) Invoke(_ context.Context, prompt string, _ []ia.Anexo) (string, string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.texto, f.modelo, f.err
}

type fakeUso struct {
	recursos []string
	modelos  []string
	sucessos []bool
}

func (f *fakeUso) RegistrarGeracao(_ context.Context, _ uuid.UUID, recurso, modelo string, sucesso bool) {
	f.recursos = append(f.recursos, recurso)
	f.modelos = append(f.modelos, modelo)
	f.sucessos = append(f.sucessos, sucesso)
}

func TestGerarQuestoes(t *testing.T) {
	userID := uuid.New()

	t.Run("FluxoCompleto", func(t *testing.T) {
		inv := &fakeInvocador{
			texto:  `[{"tipo":"objetiva","enunciado":"Q1","alternativas":["a","b","c","d"],"respostaCorreta":"A"}]`,
			modelo: "gemini-2.0-flash",
		}
		uso := &fakeUso{}
		svc := NewService(inv, uso)

		resultado, err := svc.GerarQuestoes(context.Background(), userID, GerarQuestoesRequest{
			Tema: "Frações", Quantidade: 1,
		})

		require.NoError(t, err)
		require.Len(t, resultado.Questoes, 1)
		assert.Equal(t, "gemini-2.0-flash", resultado.Modelo)
		assert.Equal(t, []string{"avaliacao"}, uso.recursos)
		assert.Equal(t, []bool{true}, uso.sucessos)
	})

	t.Run("QuantidadeForaDosLimites", func(t *testing.T) {
		inv := &fakeInvocador{texto: `[{"enunciado":"Q","alternativas":["a"]}]`, modelo: "m"}
		svc := NewService(inv, nil)

		_, err := svc.GerarQuestoes(context.Background(), userID, GerarQuestoesRequest{Quantidade: 0})
		require.NoError(t, err)
		assert.Contains(t, inv.prompts[0], "Gere exatamente 5 questões.")

		_, err = svc.GerarQuestoes(context.Background(), userID, GerarQuestoesRequest{Quantidade: 99})
		require.NoError(t, err)
		assert.Contains(t, inv.prompts[1], "Gere exatamente 30 questões.")
	})

	t.Run("IndisponibilidadePropagada", func(t *testing.T) {
		inv := &fakeInvocador{err: &ia.ErrIndisponivel{Motivo: "sem conexão"}}
		uso := &fakeUso{}
		svc := NewService(inv, uso)

		_, err := svc.GerarQuestoes(context.Background(), userID, GerarQuestoesRequest{Quantidade: 3})

		var indisp *ia.ErrIndisponivel
		require.ErrorAs(t, err, &indisp)
		assert.Equal(t, []bool{false}, uso.sucessos)
	})

	t.Run("RespostaSemQuestoes", func(t *testing.T) {
		inv := &fakeInvocador{texto: "   ", modelo: "m"}
		uso := &fakeUso{}
		svc := NewService(inv, uso)

		_, err := svc.GerarQuestoes(context.Background(), userID, GerarQuestoesRequest{Quantidade: 3})

		assert.ErrorIs(t, err, ErrNenhumaQuestao)
		assert.Equal(t, []bool{false}, uso.sucessos)
	})
}
