package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Nome      string    `gorm:"type:text;not null" json:"nome"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url,omitempty"`
	GoogleID  string    `gorm:"type:text;uniqueIndex" json:"-"`
	Role      string    `gorm:"type:text;not null;default:professor" json:"role"`

	// Perfil preenchido no onboarding.
	Escola              string         `gorm:"type:text" json:"escola,omitempty"`
	Disciplinas         datatypes.JSON `gorm:"type:jsonb" json:"disciplinas,omitempty"`
	Series              datatypes.JSON `gorm:"type:jsonb" json:"series,omitempty"`
	OnboardingConcluido bool           `gorm:"not null;default:false" json:"onboarding_concluido"`

	// Refresh token do Google, cifrado com config.Encrypt antes de persistir.
	GoogleRefreshToken string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type AtualizarPerfilRequest struct {
	Nome        string   `json:"nome"`
	Escola      string   `json:"escola"`
	Disciplinas []string `json:"disciplinas"`
	Series      []string `json:"series"`
}

type GoogleLoginRequest struct {
	Code string `json:"code"`
}
