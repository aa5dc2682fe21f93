package avaliacao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

var ErrAvaliacaoNaoEncontrada = errors.New("avaliação não encontrada")

type AvaliacaoService interface {
	CriarComQuestoes(ctx context.Context, a *Avaliacao, questoes []*QuestaoAvaliacao) error
	Deletar(ctx context.Context, avaliacaoID string) error
	AdicionarQuestao(ctx context.Context, avaliacaoID string, questao *QuestaoAvaliacao) error
	RemoverQuestao(ctx context.Context, questaoID string) error
	BuscarComQuestoes(ctx context.Context, avaliacaoID string) (*AvaliacaoComQuestoesDTO, error)
	ListarPorUsuario(ctx context.Context, userID string) ([]*Avaliacao, error)
}

type avaliacaoService struct {
	repo AvaliacaoRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo AvaliacaoRepository) AvaliacaoService {
	return &avaliacaoService{
		repo: repo,
		db:   db,
	}
}

func (s *avaliacaoService) CriarComQuestoes(ctx context.Context, a *Avaliacao, questoes []*QuestaoAvaliacao) error {
	log := config.WithContext(ctx)
	log.Info("Salvando nova avaliação...")

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			log.Errorf("Erro ao criar avaliação: %v", err)
			return err
		}

		for i := range questoes {
			questoes[i].AvaliacaoID = a.ID
			questoes[i].Ordem = i
		}

		if len(questoes) > 0 {
			if err := tx.Create(&questoes).Error; err != nil {
				log.Errorf("Erro ao criar questões da avaliação: %v", err)
				return err
			}
		}

		log.Infof("Avaliação %s salva com %d questões", a.ID, len(questoes))
		return nil
	})
}

func (s *avaliacaoService) Deletar(ctx context.Context, avaliacaoID string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(avaliacaoID); err != nil {
		log.Errorf("Erro ao deletar avaliação: %v", err)
		return err
	}

	log.Info("Avaliação deletada com sucesso")
	return nil
}

func (s *avaliacaoService) AdicionarQuestao(ctx context.Context, avaliacaoID string, questao *QuestaoAvaliacao) error {
	log := config.WithContext(ctx)

	a, err := s.repo.GetByID(avaliacaoID)
	if err != nil {
		log.Errorf("Erro ao buscar avaliação: %v", err)
		return err
	}
	if a == nil {
		return ErrAvaliacaoNaoEncontrada
	}

	questao.AvaliacaoID = a.ID
	if questao.ID == uuid.Nil {
		questao.ID = uuid.New()
	}

	if err := s.repo.AddQuestoes([]*QuestaoAvaliacao{questao}); err != nil {
		log.Errorf("Erro ao adicionar questão: %v", err)
		return err
	}

	log.Infof("Questão %s adicionada à avaliação %s", questao.ID, avaliacaoID)
	return nil
}

func (s *avaliacaoService) RemoverQuestao(ctx context.Context, questaoID string) error {
	log := config.WithContext(ctx)

	if err := s.repo.DeleteQuestao(questaoID); err != nil {
		log.Errorf("Erro ao remover questão: %v", err)
		return err
	}

	log.Infof("Questão %s removida", questaoID)
	return nil
}

func (s *avaliacaoService) BuscarComQuestoes(ctx context.Context, avaliacaoID string) (*AvaliacaoComQuestoesDTO, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.GetByID(avaliacaoID)
	if err != nil {
		log.Errorf("Erro ao buscar avaliação: %v", err)
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	questoes, err := s.repo.ListQuestoesByAvaliacao(avaliacaoID)
	if err != nil {
		log.Errorf("Erro ao listar questões da avaliação: %v", err)
		return nil, err
	}

	return &AvaliacaoComQuestoesDTO{
		Avaliacao: a,
		Questoes:  questoes,
	}, nil
}

func (s *avaliacaoService) ListarPorUsuario(ctx context.Context, userID string) ([]*Avaliacao, error) {
	log := config.WithContext(ctx)

	avaliacoes, err := s.repo.ListByUser(userID)
	if err != nil {
		log.Errorf("Erro ao listar avaliações do usuário: %v", err)
		return nil, err
	}

	return avaliacoes, nil
}
