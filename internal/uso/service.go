package uso

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

type UsoService interface {
	RegistrarGeracao(ctx context.Context, userID uuid.UUID, recurso, modelo string, sucesso bool)
	ResumoDoMes(ctx context.Context, userID string) ([]ResumoUso, error)
}

type usoService struct {
	repo UsoRepository
}

func NewService(repo UsoRepository) UsoService {
	return &usoService{repo: repo}
}

// RegistrarGeracao nunca propaga erro: a contabilidade de uso não pode
// derrubar o fluxo de geração que a chamou.
func (s *usoService) RegistrarGeracao(ctx context.Context, userID uuid.UUID, recurso, modelo string, sucesso bool) {
	evento := &EventoUso{
		ID:      uuid.New(),
		UserID:  userID,
		Recurso: recurso,
		Modelo:  modelo,
		Sucesso: sucesso,
	}

	if err := s.repo.Create(evento); err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao registrar evento de uso")
	}
}

func (s *usoService) ResumoDoMes(ctx context.Context, userID string) ([]ResumoUso, error) {
	agora := time.Now()
	inicioDoMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)

	resumo, err := s.repo.ResumoPorUsuario(userID, inicioDoMes)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao consultar resumo de uso")
		return nil, err
	}
	if resumo == nil {
		resumo = []ResumoUso{}
	}
	return resumo, nil
}
