package material

import "gorm.io/gorm"

type MaterialContainer struct {
	Handler *Handler
}

// NewMaterialContainer reaproveita o invocador de IA já construído pelo
// container de geração em vez de abrir outro cliente Gemini.
func NewMaterialContainer(db *gorm.DB, invocador Invocador, uso UsoRecorder) *MaterialContainer {
	repo := NewRepository(db)
	service := NewService(repo, invocador, uso)
	handler := NewHandler(service)

	return &MaterialContainer{
		Handler: handler,
	}
}
