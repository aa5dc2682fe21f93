package material

import (
	"time"

	"github.com/google/uuid"
)

// Material é um artefato pedagógico gerado por IA e editável pelo
// professor: plano de aula, roteiro de slides ou rubrica de correção.
// O conteúdo é Markdown.
type Material struct {
	ID         uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Tipo       TipoMaterial `gorm:"type:text;not null" json:"tipo"`
	Titulo     string       `gorm:"type:text;not null" json:"titulo"`
	Disciplina string       `gorm:"type:text" json:"disciplina,omitempty"`
	Serie      string       `gorm:"type:text" json:"serie,omitempty"`
	Conteudo   string       `gorm:"type:text;not null" json:"conteudo"`
	ModeloIA   string       `gorm:"type:text" json:"modelo_ia,omitempty"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type GerarMaterialRequest struct {
	Tipo       TipoMaterial `json:"tipo"`
	Tema       string       `json:"tema"`
	Disciplina string       `json:"disciplina"`
	Serie      string       `json:"serie"`
	Duracao    string       `json:"duracao"`
	Objetivo   string       `json:"objetivo"`
}

type MaterialGerado struct {
	Conteudo string `json:"conteudo"`
	Modelo   string `json:"modelo"`
}

type AtualizarMaterialRequest struct {
	Titulo   string `json:"titulo"`
	Conteudo string `json:"conteudo"`
}
