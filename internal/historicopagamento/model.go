package historicopagamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HistoricoPagamento é uma fotografia da fatura no instante em que foi marcada
// como paga. As linhas só são criadas e apagadas pelo registrador de pagamento
// da fatura, sempre dentro da mesma transação da alteração de status.
type HistoricoPagamento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	FaturaID       uint            `gorm:"not null;index" json:"faturaId"`
	Transportadora string          `gorm:"size:255;not null" json:"transportadora"`
	Responsavel    string          `gorm:"size:255" json:"responsavel"`
	NumeroFatura   string          `gorm:"size:100;not null" json:"numeroFatura"`
	Valor          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"valor"`
	DataVencimento time.Time       `gorm:"type:date;not null" json:"dataVencimento"`
	PagoEm         time.Time       `gorm:"not null;index" json:"pagoEm"`
}

func (HistoricoPagamento) TableName() string {
	return "historico_pagamentos"
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HistoricoPagamento{})
}
