package fatura

import (
	"fmt"
	"strings"
)

// Status é a classificação fechada de uma fatura. O sistema antigo guardava
// texto livre e comparava sem caixa; aqui o valor gravado é sempre um destes
// três, e o parse aceita as grafias históricas.
type Status string

const (
	StatusPendente Status = "pendente"
	StatusAtrasada Status = "atrasada"
	StatusPaga     Status = "paga"
)

// ParseStatus normaliza as grafias encontradas nas planilhas e versões
// antigas (pendente/pending, atrasada/atrasado/late, paga/pago/paid).
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendente", "pending":
		return StatusPendente, nil
	case "atrasada", "atrasado", "late":
		return StatusAtrasada, nil
	case "paga", "pago", "paid":
		return StatusPaga, nil
	}
	return "", fmt.Errorf("status desconhecido: %q", s)
}

func (s Status) Valido() bool {
	return s == StatusPendente || s == StatusAtrasada || s == StatusPaga
}
