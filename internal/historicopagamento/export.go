package historicopagamento

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

var colunasExport = []string{
	"fatura_id", "transportadora", "responsavel", "numero_fatura",
	"valor", "data_vencimento", "pago_em",
}

func linhaExport(e HistoricoPagamento) []string {
	return []string{
		fmt.Sprintf("%d", e.FaturaID),
		e.Transportadora,
		e.Responsavel,
		e.NumeroFatura,
		e.Valor.StringFixed(2),
		e.DataVencimento.Format("2006-01-02"),
		e.PagoEm.Format(time.RFC3339),
	}
}

// EscreverCSV serializa as entradas com cabeçalho, uma linha por pagamento.
func EscreverCSV(w io.Writer, entradas []HistoricoPagamento) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(colunasExport); err != nil {
		return err
	}
	for _, e := range entradas {
		if err := cw.Write(linhaExport(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EscreverXLSX gera a planilha com as mesmas colunas do CSV.
func EscreverXLSX(w io.Writer, entradas []HistoricoPagamento) error {
	planilha := excelize.NewFile()
	defer planilha.Close()

	const aba = "Pagamentos"
	indice, err := planilha.NewSheet(aba)
	if err != nil {
		return err
	}
	planilha.SetActiveSheet(indice)
	if err := planilha.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, titulo := range colunasExport {
		celula, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := planilha.SetCellValue(aba, celula, titulo); err != nil {
			return err
		}
	}
	for lin, e := range entradas {
		for col, valor := range linhaExport(e) {
			celula, err := excelize.CoordinatesToCellName(col+1, lin+2)
			if err != nil {
				return err
			}
			if err := planilha.SetCellValue(aba, celula, valor); err != nil {
				return err
			}
		}
	}

	return planilha.Write(w)
}
