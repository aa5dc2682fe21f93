package avaliacao

import (
	"errors"

	"gorm.io/gorm"
)

type AvaliacaoRepository interface {
	Create(a *Avaliacao) error
	GetByID(id string) (*Avaliacao, error)
	Delete(id string) error

	AddQuestoes(questoes []*QuestaoAvaliacao) error
	ListQuestoesByAvaliacao(avaliacaoID string) ([]*QuestaoAvaliacao, error)
	DeleteQuestao(id string) error
	ListByUser(userID string) ([]*Avaliacao, error)
}

type avaliacaoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AvaliacaoRepository {
	return &avaliacaoRepository{db: db}
}

func (r *avaliacaoRepository) Create(a *Avaliacao) error {
	return r.db.Create(a).Error
}

func (r *avaliacaoRepository) GetByID(id string) (*Avaliacao, error) {
	var a Avaliacao
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *avaliacaoRepository) Delete(id string) error {
	return r.db.Delete(&Avaliacao{}, "id = ?", id).Error
}

func (r *avaliacaoRepository) AddQuestoes(questoes []*QuestaoAvaliacao) error {
	if len(questoes) == 0 {
		return nil
	}
	return r.db.Create(&questoes).Error
}

func (r *avaliacaoRepository) ListQuestoesByAvaliacao(avaliacaoID string) ([]*QuestaoAvaliacao, error) {
	var questoes []*QuestaoAvaliacao
	if err := r.db.
		Where("avaliacao_id = ?", avaliacaoID).
		Order("ordem ASC").
		Find(&questoes).Error; err != nil {
		return nil, err
	}
	return questoes, nil
}

func (r *avaliacaoRepository) DeleteQuestao(id string) error {
	return r.db.Delete(&QuestaoAvaliacao{}, "id = ?", id).Error
}

func (r *avaliacaoRepository) ListByUser(userID string) ([]*Avaliacao, error) {
	var avaliacoes []*Avaliacao
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&avaliacoes).Error; err != nil {
		return nil, err
	}
	return avaliacoes, nil
}
