package material

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/gerar", h.Gerar)
	r.Post("/", h.Salvar)
	r.Get("/", h.Listar)
	r.Get("/{id}", h.Buscar)
	r.Put("/{id}", h.Atualizar)
	r.Delete("/{id}", h.Deletar)
	return r
}
