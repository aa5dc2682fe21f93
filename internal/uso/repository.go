package uso

import (
	"time"

	"gorm.io/gorm"
)

type UsoRepository interface {
	Create(evento *EventoUso) error
	ResumoPorUsuario(userID string, desde time.Time) ([]ResumoUso, error)
}

type usoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UsoRepository {
	return &usoRepository{db: db}
}

func (r *usoRepository) Create(evento *EventoUso) error {
	return r.db.Create(evento).Error
}

func (r *usoRepository) ResumoPorUsuario(userID string, desde time.Time) ([]ResumoUso, error) {
	var resumo []ResumoUso
	err := r.db.Model(&EventoUso{}).
		Select("recurso, COUNT(*) AS total, COUNT(*) FILTER (WHERE sucesso) AS sucessos").
		Where("user_id = ? AND created_at >= ?", userID, desde).
		Group("recurso").
		Order("recurso ASC").
		Scan(&resumo).Error
	if err != nil {
		return nil, err
	}
	return resumo, nil
}
