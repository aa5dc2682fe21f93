package uso

import "gorm.io/gorm"

type UsoContainer struct {
	Handler *Handler
	Service UsoService
}

func NewUsoContainer(db *gorm.DB) *UsoContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &UsoContainer{
		Handler: handler,
		Service: service,
	}
}
