package avaliacao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

type Handler struct {
	service AvaliacaoService
}

func NewHandler(s AvaliacaoService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CriarAvaliacao(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para salvar avaliação")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Avaliacao Avaliacao           `json:"avaliacao"`
		Questoes  []*QuestaoAvaliacao `json:"questoes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para salvar avaliação")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if payload.Avaliacao.Titulo == "" {
		http.Error(w, "titulo required", http.StatusBadRequest)
		return
	}

	if len(payload.Questoes) == 0 {
		log.Warn("Tentativa de salvar avaliação sem questões")
		http.Error(w, "avaliacao must contain at least one question", http.StatusBadRequest)
		return
	}

	payload.Avaliacao.UserID = uuid.MustParse(claims.UserID)

	if payload.Avaliacao.ID == uuid.Nil {
		payload.Avaliacao.ID = uuid.New()
	}

	for _, q := range payload.Questoes {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.AvaliacaoID = payload.Avaliacao.ID
	}

	if err := h.service.CriarComQuestoes(r.Context(), &payload.Avaliacao, payload.Questoes); err != nil {
		log.WithError(err).Error("Erro ao salvar avaliação com questões")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"avaliacao": payload.Avaliacao,
		"questoes":  payload.Questoes,
	})
}

func (h *Handler) DeletarAvaliacao(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	avaliacaoID := chi.URLParam(r, "id")
	if avaliacaoID == "" {
		http.Error(w, "avaliacao id required", http.StatusBadRequest)
		return
	}

	if err := h.service.Deletar(r.Context(), avaliacaoID); err != nil {
		log.WithError(err).Error("Erro ao deletar avaliação")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "avaliacao deleted successfully",
	})
}

func (h *Handler) AdicionarQuestao(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	avaliacaoID := chi.URLParam(r, "id")
	if avaliacaoID == "" {
		http.Error(w, "avaliacao id required", http.StatusBadRequest)
		return
	}

	var questao QuestaoAvaliacao
	if err := json.NewDecoder(r.Body).Decode(&questao); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para adicionar questão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if questao.ID == uuid.Nil {
		questao.ID = uuid.New()
	}

	if err := h.service.AdicionarQuestao(r.Context(), avaliacaoID, &questao); err != nil {
		if errors.Is(err, ErrAvaliacaoNaoEncontrada) {
			http.Error(w, "avaliacao not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao adicionar questão à avaliação")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "questao added successfully",
		"questao": questao,
	})
}

func (h *Handler) RemoverQuestao(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questaoID := chi.URLParam(r, "questaoID")
	if questaoID == "" {
		http.Error(w, "questao id required", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoverQuestao(r.Context(), questaoID); err != nil {
		log.WithError(err).Error("Erro ao remover questão da avaliação")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "questao removed successfully",
	})
}

func (h *Handler) BuscarAvaliacao(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	avaliacaoID := chi.URLParam(r, "id")
	if avaliacaoID == "" {
		http.Error(w, "avaliacao id required", http.StatusBadRequest)
		return
	}

	dto, err := h.service.BuscarComQuestoes(r.Context(), avaliacaoID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar avaliação com questões")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if dto == nil {
		http.Error(w, "avaliacao not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, dto)
}

func (h *Handler) ListarAvaliacoes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	avaliacoes, err := h.service.ListarPorUsuario(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar avaliações do usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, avaliacoes)
}
