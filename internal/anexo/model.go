package anexo

import "time"

// Anexo é um arquivo pendurado numa fatura (comprovante, boleto digitalizado).
// Os bytes moram no object storage; aqui fica só o apontador.
type Anexo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	FaturaID    uint   `gorm:"not null;index" json:"faturaId"`
	ChaveObjeto string `gorm:"size:512;not null;uniqueIndex" json:"-"`
	NomeArquivo string `gorm:"size:255;not null" json:"nomeArquivo"`
	ContentType string `gorm:"size:100" json:"contentType"`
	Tamanho     int64  `json:"tamanho"`
}

func (Anexo) TableName() string {
	return "anexos"
}
