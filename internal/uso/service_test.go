package uso

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	eventos []*EventoUso
	resumo  []ResumoUso
	err     error
}

func (f *fakeRepo) Create(e *EventoUso) error {
	if f.err != nil {
		return f.err
	}
	f.eventos = append(f.eventos, e)
	return nil
}

func (f *fakeRepo) ResumoPorUsuario(_ string, _ time.Time) ([]ResumoUso, error) {
	return f.resumo, f.err
}

func TestRegistrarGeracao(t *testing.T) {
	userID := uuid.New()

	t.Run("RegistraEvento", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		svc.RegistrarGeracao(context.Background(), userID, "avaliacao", "gemini-2.0-flash", true)

		require.Len(t, repo.eventos, 1)
		evento := repo.eventos[0]
		assert.Equal(t, userID, evento.UserID)
		assert.Equal(t, "avaliacao", evento.Recurso)
		assert.Equal(t, "gemini-2.0-flash", evento.Modelo)
		assert.True(t, evento.Sucesso)
	})

	t.Run("ErroNaoPropaga", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("banco fora do ar")}
		svc := NewService(repo)

		assert.NotPanics(t, func() {
			svc.RegistrarGeracao(context.Background(), userID, "PLANO_AULA", "", false)
		})
	})
}

func TestResumoDoMes(t *testing.T) {
	t.Run("SemEventos", func(t *testing.T) {
		svc := NewService(&fakeRepo{})

		resumo, err := svc.ResumoDoMes(context.Background(), uuid.NewString())

		require.NoError(t, err)
		assert.NotNil(t, resumo)
		assert.Empty(t, resumo)
	})

	t.Run("ComEventos", func(t *testing.T) {
		svc := NewService(&fakeRepo{resumo: []ResumoUso{
			{Recurso: "avaliacao", Total: 3, Sucessos: 2},
		}})

		resumo, err := svc.ResumoDoMes(context.Background(), uuid.NewString())

		require.NoError(t, err)
		require.Len(t, resumo, 1)
		assert.Equal(t, int64(3), resumo[0].Total)
	})
}
