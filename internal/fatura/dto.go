package fatura

import (
	"errors"
	"time"

	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"github.com/shopspring/decimal"
)

// FaturaRequest é o corpo de criação e de atualização (PUT integral).
type FaturaRequest struct {
	Transportadora string          `json:"transportadora"`
	NumeroFatura   string          `json:"numeroFatura"`
	Valor          decimal.Decimal `json:"valor"`
	DataVencimento string          `json:"dataVencimento"` // AAAA-MM-DD
	Status         string          `json:"status"`
	Observacao     string          `json:"observacao"`
}

// Validar confere os campos obrigatórios e devolve os valores normalizados.
func (r *FaturaRequest) Validar() (Status, time.Time, error) {
	if r.Transportadora == "" {
		return "", time.Time{}, errors.New("transportadora é obrigatória")
	}
	if r.NumeroFatura == "" {
		return "", time.Time{}, errors.New("número da fatura é obrigatório")
	}
	if !r.Valor.IsPositive() {
		return "", time.Time{}, errors.New("valor deve ser maior que zero")
	}
	if r.Valor.Exponent() < -2 {
		return "", time.Time{}, errors.New("valor deve ter no máximo 2 casas decimais")
	}
	venc, err := time.Parse("2006-01-02", r.DataVencimento)
	if err != nil {
		return "", time.Time{}, errors.New("data de vencimento inválida (use AAAA-MM-DD)")
	}
	status, err := ParseStatus(r.Status)
	if err != nil {
		return "", time.Time{}, err
	}
	return status, relogio.Data(venc), nil
}

// Filtro reúne os parâmetros opcionais de listagem. Início/Fim nulos
// significam "sem limite"; datas ilegíveis na query nunca chegam aqui
// (ver relogio.ParseData).
type Filtro struct {
	Transportadora string
	Status         *Status
	Inicio         *time.Time
	Fim            *time.Time
}
