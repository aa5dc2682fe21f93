package container

import (
	"context"
	"log"
	"os"

	"github.com/avaliapro/avaliapro-lambda/internal/auth"
	"github.com/avaliapro/avaliapro-lambda/internal/avaliacao"
	"github.com/avaliapro/avaliapro-lambda/internal/config"
	"github.com/avaliapro/avaliapro-lambda/internal/geracao"
	"github.com/avaliapro/avaliapro-lambda/internal/material"
	"github.com/avaliapro/avaliapro-lambda/internal/user"
	"github.com/avaliapro/avaliapro-lambda/internal/uso"
)

type Container struct {
	UserContainer      *user.UserContainer
	GeracaoContainer   *geracao.GeracaoContainer
	AvaliacaoContainer *avaliacao.AvaliacaoContainer
	MaterialContainer  *material.MaterialContainer
	UsoContainer       *uso.UsoContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.Migrate(
		&user.User{},
		&avaliacao.Avaliacao{},
		&avaliacao.QuestaoAvaliacao{},
		&material.Material{},
		&uso.EventoUso{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	usoContainer := uso.NewUsoContainer(config.DB)
	geracaoContainer := geracao.NewGeracaoContainer(usoContainer.Service)
	avaliacaoContainer := avaliacao.NewAvaliacaoContainer(config.DB)
	materialContainer := material.NewMaterialContainer(config.DB, geracaoContainer.Invoker, usoContainer.Service)

	return &Container{
		UserContainer:      userContainer,
		GeracaoContainer:   geracaoContainer,
		AvaliacaoContainer: avaliacaoContainer,
		MaterialContainer:  materialContainer,
		UsoContainer:       usoContainer,
	}
}
