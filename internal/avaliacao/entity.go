package avaliacao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	util "github.com/avaliapro/avaliapro-lambda/internal/utils"
)

// Avaliacao é o conjunto de questões que o professor revisou e decidiu
// guardar. A geração em si nunca persiste nada; só chegamos aqui na
// confirmação explícita.
type Avaliacao struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Titulo      string    `gorm:"type:text;not null" json:"titulo"`
	Disciplina  string    `gorm:"type:text" json:"disciplina,omitempty"`
	Serie       string    `gorm:"type:text" json:"serie,omitempty"`
	Tema        string    `gorm:"type:text" json:"tema,omitempty"`
	Dificuldade string    `gorm:"type:text" json:"dificuldade,omitempty"`
	ValorTotal  float64   `gorm:"not null;default:0" json:"valor_total"`
	ModeloIA    string    `gorm:"type:text" json:"modelo_ia,omitempty"`

	AplicadaEm *util.LocalDateTime `json:"aplicada_em,omitempty"`
	CreatedAt  time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	Questoes []QuestaoAvaliacao `gorm:"foreignKey:AvaliacaoID;constraint:OnDelete:CASCADE" json:"questoes,omitempty"`
}

type QuestaoAvaliacao struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AvaliacaoID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"avaliacao_id"`
	Tipo            string         `gorm:"type:text;not null" json:"tipo"`
	Enunciado       string         `gorm:"type:text;not null" json:"enunciado"`
	Alternativas    datatypes.JSON `gorm:"type:jsonb" json:"alternativas,omitempty"`
	RespostaCorreta string         `gorm:"type:text" json:"resposta_correta"`
	Pontos          float64        `gorm:"not null;default:1" json:"pontos"`
	Ordem           int            `gorm:"not null" json:"ordem"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
