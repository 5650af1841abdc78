package dashboard

import "github.com/shopspring/decimal"

// Totais é um par quantidade/soma de uma categoria do painel.
type Totais struct {
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// Resumo particiona as faturas filtradas em três categorias disjuntas e
// exaustivas (pagas, atrasadas, em dia) e traz os agregados derivados:
// totalPendente = atrasadas + em dia, totalGeral = as três somadas.
type Resumo struct {
	Pagas         Totais `json:"pagas"`
	Atrasadas     Totais `json:"atrasadas"`
	EmDia         Totais `json:"emDia"`
	TotalPendente Totais `json:"totalPendente"`
	TotalGeral    Totais `json:"totalGeral"`
}
