package geracao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GerarQuestoes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para gerar questões")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req GerarQuestoesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar questões")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resultado, err := h.service.GerarQuestoes(r.Context(), userID, req)
	if err != nil {
		var indisp *ia.ErrIndisponivel
		switch {
		case errors.As(err, &indisp):
			log.WithError(err).Error("Serviço de IA indisponível")
			config.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": indisp.Motivo})
		case errors.Is(err, ErrNenhumaQuestao):
			config.JSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": "A IA não retornou questões aproveitáveis. Ajuste o tema e tente novamente.",
			})
		default:
			log.WithError(err).Error("Erro ao gerar questões")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, resultado)
}
