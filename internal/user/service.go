package user

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
)

var ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type Service interface {
	LoginComGoogle(ctx context.Context, code string) (*User, *Tokens, error)
	RenovarTokens(ctx context.Context, refreshToken string) (*Tokens, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*User, error)
	AtualizarPerfil(ctx context.Context, id uuid.UUID, req AtualizarPerfilRequest) (*User, error)
}

type service struct {
	repo   Repository
	google GoogleClient
}

func NewService(repo Repository, google GoogleClient) Service {
	return &service{repo: repo, google: google}
}

func (s *service) LoginComGoogle(ctx context.Context, code string) (*User, *Tokens, error) {
	log := config.WithContext(ctx)

	token, info, err := s.google.ExchangeCode(ctx, code)
	if err != nil {
		log.WithError(err).Error("Falha no login com Google")
		return nil, nil, err
	}

	u, err := s.repo.FindByGoogleID(info.ID)
	if err != nil {
		return nil, nil, err
	}

	if u == nil {
		u = &User{
			ID:        uuid.New(),
			Nome:      info.Name,
			Email:     info.Email,
			AvatarURL: info.Picture,
			GoogleID:  info.ID,
			Role:      "professor",
		}
		if err := s.guardarRefreshToken(u, token.RefreshToken); err != nil {
			return nil, nil, err
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Erro ao criar usuário no login")
			return nil, nil, err
		}
		log.Infof("Novo professor cadastrado: %s", u.Email)
	} else {
		u.Nome = info.Name
		u.AvatarURL = info.Picture
		if err := s.guardarRefreshToken(u, token.RefreshToken); err != nil {
			return nil, nil, err
		}
		if err := s.repo.Update(u); err != nil {
			return nil, nil, err
		}
	}

	tokens, err := s.emitirTokens(u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// guardarRefreshToken cifra o token do Google antes de gravar. O Google
// só devolve refresh token no primeiro consentimento; vazio não apaga o
// que já temos.
func (s *service) guardarRefreshToken(u *User, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	cifrado, err := config.Encrypt(refreshToken)
	if err != nil {
		return err
	}
	u.GoogleRefreshToken = cifrado
	return nil
}

func (s *service) RenovarTokens(ctx context.Context, refreshToken string) (*Tokens, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}

	return s.emitirTokens(u)
}

func (s *service) emitirTokens(u *User) (*Tokens, error) {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) BuscarPorID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return u, nil
}

func (s *service) AtualizarPerfil(ctx context.Context, id uuid.UUID, req AtualizarPerfilRequest) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}

	if req.Nome != "" {
		u.Nome = req.Nome
	}
	u.Escola = req.Escola

	if u.Disciplinas, err = json.Marshal(req.Disciplinas); err != nil {
		return nil, err
	}
	if u.Series, err = json.Marshal(req.Series); err != nil {
		return nil, err
	}
	u.OnboardingConcluido = true

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Erro ao atualizar perfil do professor")
		return nil, err
	}

	log.Infof("Perfil atualizado: %s", u.Email)
	return u, nil
}
