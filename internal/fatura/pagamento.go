package fatura

import (
	"time"

	"github.com/MshopLogistica/api-faturas/internal/historicopagamento"
	"github.com/MshopLogistica/api-faturas/internal/responsavel"
	"gorm.io/gorm"
)

// TransicaoPagamento descreve se uma troca de status cruzou a fronteira "paga".
type TransicaoPagamento int

const (
	TransicaoNenhuma TransicaoPagamento = iota
	TransicaoEntrouEmPaga
	TransicaoSaiuDePaga
)

// DetectarTransicao compara o status anterior (vazio na criação) com o novo.
// pendente->atrasada e paga->paga não cruzam a fronteira e não geram efeito.
func DetectarTransicao(anterior, novo Status) TransicaoPagamento {
	if anterior != StatusPaga && novo == StatusPaga {
		return TransicaoEntrouEmPaga
	}
	if anterior == StatusPaga && novo != StatusPaga {
		return TransicaoSaiuDePaga
	}
	return TransicaoNenhuma
}

// AplicarTransicaoPagamento mantém PagoEm e o histórico de pagamentos
// coerentes com o novo status da fatura. Deve rodar dentro da MESMA transação
// que grava a fatura: nenhum leitor pode ver paga sem linha de histórico, nem
// não-paga com histórico sobrando.
//
// Ao sair de paga, TODAS as linhas de histórico da fatura são apagadas, não só
// a mais recente. É o comportamento de sempre do sistema (o histórico de uma
// fatura é descartável quando ela deixa de estar paga); confirmar com o dono
// do sistema antes de tratar o histórico como trilha de auditoria.
func AplicarTransicaoPagamento(tx *gorm.DB, f *Fatura, anterior Status, agora time.Time) error {
	switch DetectarTransicao(anterior, f.Status) {
	case TransicaoEntrouEmPaga:
		f.PagoEm = &agora

		nomeResponsavel, err := responsavel.Resolver(tx, f.Transportadora)
		if err != nil {
			return err
		}
		entrada := historicopagamento.HistoricoPagamento{
			FaturaID:       f.ID,
			Transportadora: f.Transportadora,
			Responsavel:    nomeResponsavel,
			NumeroFatura:   f.NumeroFatura,
			Valor:          f.Valor,
			DataVencimento: f.DataVencimento,
			PagoEm:         agora,
		}
		return tx.Create(&entrada).Error

	case TransicaoSaiuDePaga:
		f.PagoEm = nil
		return tx.Where("fatura_id = ?", f.ID).
			Delete(&historicopagamento.HistoricoPagamento{}).Error
	}
	return nil
}
