package historicopagamento

import (
	"time"

	"gorm.io/gorm"
)

// Filtro de listagem/exportação; campos zerados são ignorados.
type Filtro struct {
	Transportadora string
	Inicio         *time.Time
	Fim            *time.Time
}

type Repository interface {
	Listar(db *gorm.DB, filtro Filtro) ([]HistoricoPagamento, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtro Filtro) ([]HistoricoPagamento, error) {
	q := db.Model(&HistoricoPagamento{})
	if filtro.Transportadora != "" {
		q = q.Where("transportadora = ?", filtro.Transportadora)
	}
	if filtro.Inicio != nil {
		q = q.Where("pago_em >= ?", *filtro.Inicio)
	}
	if filtro.Fim != nil {
		q = q.Where("pago_em < ?", filtro.Fim.AddDate(0, 0, 1))
	}

	var entradas []HistoricoPagamento
	err := q.Order("pago_em DESC").Find(&entradas).Error
	return entradas, err
}
