package material

import (
	"errors"

	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(m *Material) error
	GetByID(id string) (*Material, error)
	ListByUser(userID string) ([]*Material, error)
	Update(m *Material) error
	Delete(id string) error
}

type materialRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(m *Material) error {
	return r.db.Create(m).Error
}

func (r *materialRepository) GetByID(id string) (*Material, error) {
	var m Material
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *materialRepository) ListByUser(userID string) ([]*Material, error) {
	var materiais []*Material
	if err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&materiais).Error; err != nil {
		return nil, err
	}
	return materiais, nil
}

func (r *materialRepository) Update(m *Material) error {
	return r.db.Save(m).Error
}

func (r *materialRepository) Delete(id string) error {
	return r.db.Delete(&Material{}, "id = ?", id).Error
}
