package uso

import (
	"time"

	"github.com/google/uuid"
)

// EventoUso registra cada chamada de geração por IA feita por um usuário,
// tenha ela sucedido ou não. Serve para o resumo de consumo e para
// eventuais limites de plano.
type EventoUso struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Recurso   string    `gorm:"type:text;not null" json:"recurso"`
	Modelo    string    `gorm:"type:text" json:"modelo,omitempty"`
	Sucesso   bool      `gorm:"not null" json:"sucesso"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// ResumoUso agrega os eventos de um usuário por recurso.
type ResumoUso struct {
	Recurso  string `json:"recurso"`
	Total    int64  `json:"total"`
	Sucessos int64  `json:"sucessos"`
}
