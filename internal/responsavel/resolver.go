package responsavel

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// PrefixoTransportadora reduz um nome composto ("Garcia - Juliana") ao trecho
// antes do primeiro "-", que é a chave da tabela de responsáveis.
func PrefixoTransportadora(transportadora string) string {
	antes, _, _ := strings.Cut(transportadora, "-")
	return strings.TrimSpace(antes)
}

// Resolver devolve o nome do responsável pela transportadora, ou "" quando não
// há mapeamento. Ausência de responsável nunca é erro.
func Resolver(db *gorm.DB, transportadora string) (string, error) {
	prefixo := PrefixoTransportadora(transportadora)
	if prefixo == "" {
		return "", nil
	}

	var r Responsavel
	err := db.Where("LOWER(transportadora) = LOWER(?)", prefixo).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return r.Nome, nil
}
