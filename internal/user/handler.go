package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, tokens, err := h.service.LoginComGoogle(r.Context(), req.Code)
	if err != nil {
		log.WithError(err).Error("Erro no login com Google")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	auth.SetSessionCookies(w, tokens.AccessToken, tokens.RefreshToken)
	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		http.Error(w, "refresh token required", http.StatusUnauthorized)
		return
	}

	tokens, err := h.service.RenovarTokens(r.Context(), cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Refresh token inválido")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	auth.SetSessionCookies(w, tokens.AccessToken, tokens.RefreshToken)
	config.JSON(w, http.StatusOK, map[string]string{"message": "tokens renewed"})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.BuscarPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUsuarioNaoEncontrado) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := userIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req AtualizarPerfilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.AtualizarPerfil(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrUsuarioNaoEncontrado) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao atualizar perfil")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func userIDFromContext(r *http.Request) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.UserID)
}
