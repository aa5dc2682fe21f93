package avaliacao

import "gorm.io/gorm"

type AvaliacaoContainer struct {
	Handler *Handler
}

func NewAvaliacaoContainer(db *gorm.DB) *AvaliacaoContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &AvaliacaoContainer{
		Handler: handler,
	}
}
