package anexo

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, a *Anexo) error
	BuscarPorID(db *gorm.DB, id uint) (*Anexo, error)
	ListarPorFatura(db *gorm.DB, faturaID uint) ([]Anexo, error)
	Deletar(db *gorm.DB, id uint) error
	DeletarPorFatura(db *gorm.DB, faturaID uint) ([]string, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Anexo) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Anexo, error) {
	var a Anexo
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListarPorFatura(db *gorm.DB, faturaID uint) ([]Anexo, error) {
	var anexos []Anexo
	err := db.Where("fatura_id = ?", faturaID).Order("id").Find(&anexos).Error
	return anexos, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Anexo{}, id).Error
}

// DeletarPorFatura apaga os registros e devolve as chaves dos objetos, para o
// chamador remover do storage depois do commit.
func (r *repositoryImpl) DeletarPorFatura(db *gorm.DB, faturaID uint) ([]string, error) {
	anexos, err := r.ListarPorFatura(db, faturaID)
	if err != nil {
		return nil, err
	}
	chaves := make([]string, 0, len(anexos))
	for _, a := range anexos {
		chaves = append(chaves, a.ChaveObjeto)
	}
	if err := db.Where("fatura_id = ?", faturaID).Delete(&Anexo{}).Error; err != nil {
		return nil, err
	}
	return chaves, nil
}
