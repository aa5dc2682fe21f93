package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/avaliacao"
	"github.com/avaliapro/avaliapro-lambda/internal/geracao"
	"github.com/avaliapro/avaliapro-lambda/internal/material"
	"github.com/avaliapro/avaliapro-lambda/internal/middlewares"
	"github.com/avaliapro/avaliapro-lambda/internal/user"
	"github.com/avaliapro/avaliapro-lambda/internal/uso"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	GeracaoHandler   *geracao.Handler
	AvaliacaoHandler *avaliacao.Handler
	MaterialHandler  *material.Handler
	UsoHandler       *uso.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/geracao", geracao.Routes(cfg.GeracaoHandler))
		r.Mount("/avaliacoes", avaliacao.Routes(cfg.AvaliacaoHandler))
		r.Mount("/materiais", material.Routes(cfg.MaterialHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/uso", uso.Routes(cfg.UsoHandler))
	})
	return r
}
