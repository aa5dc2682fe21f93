package material

import (
	"context"
	"strings"
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
	sucessos []bool
}

func (f *fakeUso) RegistrarGeracao(_ context.Context, _ uuid.UUID, recurso, _ string, sucesso bool) {
	f.recursos = append(f.recursos, recurso)
	f.sucessos = append(f.sucessos, sucesso)
}

func TestBuildPromptMaterial(t *testing.T) {
	req := GerarMaterialRequest{
		Tipo:       TipoPlanoAula,
		Tema:       "Fotossíntese",
		Disciplina: "Ciências",
		Serie:      "7º ano",
		Duracao:    "50 minutos",
	}

	prompt := BuildPromptMaterial(req)

	assert.Equal(t, prompt, BuildPromptMaterial(req), "o prompt deve ser determinístico")
	assert.Contains(t, prompt, "plano de aula")
	assert.Contains(t, prompt, "Tema: Fotossíntese")
	assert.Contains(t, prompt, "Duração prevista: 50 minutos")
	assert.NotContains(t, prompt, "Objetivo pedagógico:", "campo vazio não entra no prompt")

	rubrica := BuildPromptMaterial(GerarMaterialRequest{Tipo: TipoRubrica, Tema: "Redação"})
	assert.Contains(t, rubrica, "rubrica de correção")

	slides := BuildPromptMaterial(GerarMaterialRequest{Tipo: TipoSlides, Tema: "Revolução Industrial"})
	assert.Contains(t, slides, "apresentação de slides")
}

func TestGerarMaterial(t *testing.T) {
	userID := uuid.New()

	t.Run("FluxoCompleto", func(t *testing.T) {
		inv := &fakeInvocador{texto: "# Plano de Aula\n\nConteúdo...", modelo: "gemini-2.0-flash"}
		uso := &fakeUso{}
		svc := NewService(nil, inv, uso)

		resultado, err := svc.Gerar(context.Background(), userID, GerarMaterialRequest{
			Tipo: TipoPlanoAula, Tema: "Frações",
		})

		require.NoError(t, err)
		assert.Equal(t, "# Plano de Aula\n\nConteúdo...", resultado.Conteudo)
		assert.Equal(t, "gemini-2.0-flash", resultado.Modelo)
		assert.Equal(t, []string{"PLANO_AULA"}, uso.recursos)
		assert.Equal(t, []bool{true}, uso.sucessos)

		require.Len(t, inv.prompts, 1)
		assert.True(t, strings.Contains(inv.prompts[0], "Tema: Frações"))
	})

	t.Run("RespostaVazia", func(t *testing.T) {
		inv := &fakeInvocador{texto: "   \n", modelo: "gemini-2.0-flash"}
		uso := &fakeUso{}
		svc := NewService(nil, inv, uso)

		_, err := svc.Gerar(context.Background(), userID, GerarMaterialRequest{Tipo: TipoRubrica})

		require.ErrorIs(t, err, ErrConteudoVazio)
		assert.Equal(t, []bool{false}, uso.sucessos)
	})

	t.Run("IAIndisponivel", func(t *testing.T) {
		inv := &fakeInvocador{err: &ia.ErrIndisponivel{Motivo: "limite"}}
		svc := NewService(nil, inv, nil)

		_, err := svc.Gerar(context.Background(), userID, GerarMaterialRequest{Tipo: TipoSlides})

		var indisp *ia.ErrIndisponivel
		require.ErrorAs(t, err, &indisp)
	})
}
