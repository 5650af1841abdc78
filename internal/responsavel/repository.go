package responsavel

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, r *Responsavel) error
	ListarTodos(db *gorm.DB) ([]Responsavel, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Responsavel) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (rp *repositoryImpl) Salvar(db *gorm.DB, r *Responsavel) error {
	return db.Save(r).Error
}

func (rp *repositoryImpl) ListarTodos(db *gorm.DB) ([]Responsavel, error) {
	var responsaveis []Responsavel
	err := db.Order("transportadora").Find(&responsaveis).Error
	return responsaveis, err
}

func (rp *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Responsavel) error {
	var existente Responsavel
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Transportadora = novosDados.Transportadora
	existente.Nome = novosDados.Nome

	return db.Save(&existente).Error
}

func (rp *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Responsavel{}, id).Error
}
