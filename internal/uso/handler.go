package uso

import (
	"net/http"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

type Handler struct {
	service UsoService
}

func NewHandler(s UsoService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resumo, err := h.service.ResumoDoMes(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao montar resumo de uso")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resumo)
}
