package fatura

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, f *Fatura) error
	BuscarPorID(db *gorm.DB, id uint) (*Fatura, error)
	Listar(db *gorm.DB, filtro Filtro) ([]Fatura, error)
	Deletar(db *gorm.DB, id uint) error
	Existe(db *gorm.DB, id uint) (bool, error)
	ExisteDuplicada(db *gorm.DB, transportadora, numero string, ignorarID uint) (bool, error)
	PromoverAtrasadas(db *gorm.DB, corte time.Time) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, f *Fatura) error {
	return db.Save(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Fatura, error) {
	var f Fatura
	err := db.First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) Listar(db *gorm.DB, filtro Filtro) ([]Fatura, error) {
	q := db.Model(&Fatura{})
	if filtro.Transportadora != "" {
		q = q.Where("transportadora = ?", filtro.Transportadora)
	}
	if filtro.Status != nil {
		q = q.Where("status = ?", *filtro.Status)
	}
	if filtro.Inicio != nil {
		q = q.Where("data_vencimento >= ?", *filtro.Inicio)
	}
	if filtro.Fim != nil {
		q = q.Where("data_vencimento <= ?", *filtro.Fim)
	}

	var faturas []Fatura
	err := q.Order("data_vencimento").Find(&faturas).Error
	return faturas, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Fatura{}, id).Error
}

func (r *repositoryImpl) Existe(db *gorm.DB, id uint) (bool, error) {
	var total int64
	err := db.Model(&Fatura{}).Where("id = ?", id).Count(&total).Error
	return total > 0, err
}

// ExisteDuplicada verifica o par (transportadora, número). ignorarID permite
// que um PUT na própria fatura não conte como duplicata.
func (r *repositoryImpl) ExisteDuplicada(db *gorm.DB, transportadora, numero string, ignorarID uint) (bool, error) {
	q := db.Model(&Fatura{}).
		Where("transportadora = ? AND numero_fatura = ?", transportadora, numero)
	if ignorarID != 0 {
		q = q.Where("id <> ?", ignorarID)
	}
	var total int64
	err := q.Count(&total).Error
	return total > 0, err
}

// PromoverAtrasadas grava atrasada em toda pendente vencida até o corte, num
// único UPDATE. Promoção é definitiva: nada aqui volta para pendente.
func (r *repositoryImpl) PromoverAtrasadas(db *gorm.DB, corte time.Time) (int64, error) {
	res := db.Model(&Fatura{}).
		Where("status = ? AND data_vencimento <= ?", StatusPendente, corte).
		Update("status", StatusAtrasada)
	return res.RowsAffected, res.Error
}
