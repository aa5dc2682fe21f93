package avaliacao

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CriarAvaliacao)
	r.Get("/", h.ListarAvaliacoes)
	r.Get("/{id}", h.BuscarAvaliacao)
	r.Delete("/{id}", h.DeletarAvaliacao)
	r.Post("/{id}/questoes", h.AdicionarQuestao)
	r.Delete("/questoes/{questaoID}", h.RemoverQuestao)
	return r
}
