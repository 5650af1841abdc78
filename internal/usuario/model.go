package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é uma pessoa do back office com acesso ao painel de faturas.
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome    string `gorm:"size:255;not null" json:"nome"`
	Email   string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Senha   string `gorm:"size:255;not null" json:"-"`
	IsAdmin bool   `json:"isAdmin"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
