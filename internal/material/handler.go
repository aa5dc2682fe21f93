package material

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

type Handler struct {
	service MaterialService
}

func NewHandler(s MaterialService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromContext(r)
	if err != nil {
		log.Warn("Usuário não autenticado para gerar material")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req GerarMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar material")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !req.Tipo.Valido() {
		http.Error(w, "tipo must be one of PLANO_AULA, SLIDES, RUBRICA", http.StatusBadRequest)
		return
	}

	resultado, err := h.service.Gerar(r.Context(), userID, req)
	if err != nil {
		var indisp *ia.ErrIndisponivel
		switch {
		case errors.As(err, &indisp):
			log.WithError(err).Error("Serviço de IA indisponível")
			config.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": indisp.Motivo})
		case errors.Is(err, ErrConteudoVazio):
			config.JSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": "A IA não retornou conteúdo aproveitável. Ajuste o tema e tente novamente.",
			})
		default:
			log.WithError(err).Error("Erro ao gerar material")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, resultado)
}

func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var m Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para salvar material")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !m.Tipo.Valido() {
		http.Error(w, "tipo must be one of PLANO_AULA, SLIDES, RUBRICA", http.StatusBadRequest)
		return
	}
	if m.Titulo == "" {
		http.Error(w, "titulo required", http.StatusBadRequest)
		return
	}
	if m.Conteudo == "" {
		http.Error(w, "conteudo required", http.StatusBadRequest)
		return
	}

	m.UserID = userID
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := h.service.Salvar(r.Context(), &m); err != nil {
		log.WithError(err).Error("Erro ao salvar material")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, m)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	materiais, err := h.service.ListarPorUsuario(r.Context(), userID.String())
	if err != nil {
		log.WithError(err).Error("Erro ao listar materiais")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, materiais)
}

func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "material id required", http.StatusBadRequest)
		return
	}

	m, err := h.service.Buscar(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMaterialNaoEncontrado) {
			http.Error(w, "material not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar material")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "material id required", http.StatusBadRequest)
		return
	}

	var req AtualizarMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para atualizar material")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.Atualizar(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrMaterialNaoEncontrado) {
			http.Error(w, "material not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao atualizar material")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "material id required", http.StatusBadRequest)
		return
	}

	if err := h.service.Deletar(r.Context(), id); err != nil {
		if errors.Is(err, ErrMaterialNaoEncontrado) {
			http.Error(w, "material not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao deletar material")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "material deletado com sucesso"})
}

func userIDFromContext(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}
