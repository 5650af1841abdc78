package responsavel

import (
	"time"

	"gorm.io/gorm"
)

// Responsavel liga o prefixo do nome de uma transportadora à pessoa do back
// office que cuida das faturas dela. Tabela pequena, editada por admins.
type Responsavel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Transportadora string `gorm:"size:255;not null;uniqueIndex" json:"transportadora"`
	Nome           string `gorm:"size:255;not null" json:"nome"`
}

func (Responsavel) TableName() string {
	return "responsaveis"
}
