package dashboard

import (
	"time"

	"github.com/MshopLogistica/api-faturas/internal/fatura"
)

// Categoria do painel. Toda fatura cai em exatamente uma.
type Categoria int

const (
	CategoriaPaga Categoria = iota
	CategoriaAtrasada
	CategoriaEmDia
)

// Classificar decide a categoria de uma fatura para um corte fixo. Pendentes
// já vencidas contam como atrasadas mesmo que a varredura preguiçosa ainda não
// tenha gravado a promoção: o painel é sempre consistente com o "agora".
func Classificar(f fatura.Fatura, corte time.Time) Categoria {
	switch {
	case f.Status == fatura.StatusPaga:
		return CategoriaPaga
	case f.Status == fatura.StatusAtrasada:
		return CategoriaAtrasada
	case !f.DataVencimento.After(corte):
		return CategoriaAtrasada
	default:
		return CategoriaEmDia
	}
}

// MontarResumo agrega contagem e soma por categoria.
func MontarResumo(faturas []fatura.Fatura, corte time.Time) Resumo {
	var resumo Resumo
	for _, f := range faturas {
		switch Classificar(f, corte) {
		case CategoriaPaga:
			resumo.Pagas.Quantidade++
			resumo.Pagas.Valor = resumo.Pagas.Valor.Add(f.Valor)
		case CategoriaAtrasada:
			resumo.Atrasadas.Quantidade++
			resumo.Atrasadas.Valor = resumo.Atrasadas.Valor.Add(f.Valor)
		case CategoriaEmDia:
			resumo.EmDia.Quantidade++
			resumo.EmDia.Valor = resumo.EmDia.Valor.Add(f.Valor)
		}
	}

	resumo.TotalPendente = Totais{
		Quantidade: resumo.Atrasadas.Quantidade + resumo.EmDia.Quantidade,
		Valor:      resumo.Atrasadas.Valor.Add(resumo.EmDia.Valor),
	}
	resumo.TotalGeral = Totais{
		Quantidade: resumo.Pagas.Quantidade + resumo.TotalPendente.Quantidade,
		Valor:      resumo.Pagas.Valor.Add(resumo.TotalPendente.Valor),
	}
	return resumo
}
