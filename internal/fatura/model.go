package fatura

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fatura representa uma fatura de transportadora acompanhada pelo back office.
type Fatura struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Transportadora string          `gorm:"size:255;not null;index" json:"transportadora"`
	NumeroFatura   string          `gorm:"size:100;not null;index" json:"numeroFatura"`
	Valor          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valor"`
	// Meia-noite UTC do dia de vencimento; ver relogio.Data.
	DataVencimento time.Time `gorm:"type:date;not null;index" json:"dataVencimento"`
	Status         Status    `gorm:"size:20;not null;index" json:"status"`
	Observacao     string    `gorm:"type:text" json:"observacao"`

	// Preenchido exatamente enquanto Status == paga.
	PagoEm *time.Time `json:"pagoEm,omitempty"`
}

func (Fatura) TableName() string {
	return "faturas"
}
