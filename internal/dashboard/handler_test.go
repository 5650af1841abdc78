package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MshopLogistica/api-faturas/internal/fatura"
	"github.com/MshopLogistica/api-faturas/internal/historicopagamento"
	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"github.com/MshopLogistica/api-faturas/internal/responsavel"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("erro ao abrir banco de teste: %v", err)
	}
	if err := db.AutoMigrate(
		&fatura.Fatura{},
		&historicopagamento.HistoricoPagamento{},
		&responsavel.Responsavel{},
	); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func obterResumo(t *testing.T, h *Handler, query string) Resumo {
	t.Helper()
	req := httptest.NewRequest("GET", "/dashboard/resumo"+query, nil)
	rr := httptest.NewRecorder()
	h.ObterResumo(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("resumo devolveu %d: %s", rr.Code, rr.Body.String())
	}
	var resumo Resumo
	if err := json.Unmarshal(rr.Body.Bytes(), &resumo); err != nil {
		t.Fatalf("resumo ilegível: %v", err)
	}
	return resumo
}

// Cenário completo: fatura pendente vence, aparece como atrasada no painel,
// é paga, ganha histórico e migra para o balde de pagas.
func TestCenarioFaturaVenceEEPaga(t *testing.T) {
	db := novoBancoTeste(t)
	rel := &relogio.Fixo{Instante: dataUTC(2025, 12, 18)} // quinta; corte 17/12
	faturaRepo := fatura.NewRepository()
	classificador := fatura.NovoClassificador(rel, faturaRepo, 0)

	faturaHandler := fatura.NewHandler(db, classificador)
	painel := NewHandler(db, classificador)

	// criação em 18/12: vencimento 20/12 ainda está em dia
	corpo := `{"transportadora":"DHL","numeroFatura":"DHL-001","valor":"1500.00","dataVencimento":"2025-12-20","status":"pendente"}`
	req := httptest.NewRequest("POST", "/faturas", strings.NewReader(corpo))
	rr := httptest.NewRecorder()
	faturaHandler.CriarFatura(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("criação devolveu %d: %s", rr.Code, rr.Body.String())
	}
	var criada fatura.Fatura
	if err := json.Unmarshal(rr.Body.Bytes(), &criada); err != nil {
		t.Fatalf("resposta de criação ilegível: %v", err)
	}

	resumo := obterResumo(t, painel, "")
	if resumo.EmDia.Quantidade != 1 || resumo.Atrasadas.Quantidade != 0 {
		t.Fatalf("antes do corte: emDia=%d atrasadas=%d", resumo.EmDia.Quantidade, resumo.Atrasadas.Quantidade)
	}

	// avança para segunda 22/12: o corte vira 24/12 e a fatura está vencida
	rel.Instante = dataUTC(2025, 12, 22)

	resumo = obterResumo(t, painel, "")
	if resumo.Atrasadas.Quantidade != 1 {
		t.Fatalf("após o corte: atrasadas=%d, esperado 1", resumo.Atrasadas.Quantidade)
	}
	if !resumo.Atrasadas.Valor.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("valor atrasado %s, esperado 1500.00", resumo.Atrasadas.Valor)
	}

	// marca como paga usando a grafia antiga "pago"
	corpoPaga := `{"transportadora":"DHL","numeroFatura":"DHL-001","valor":"1500.00","dataVencimento":"2025-12-20","status":"pago"}`
	req = httptest.NewRequest("PUT", fmt.Sprintf("/faturas/%d", criada.ID), strings.NewReader(corpoPaga))
	req = mux.SetURLVars(req, map[string]string{"id": fmt.Sprint(criada.ID)})
	rr = httptest.NewRecorder()
	faturaHandler.AtualizarFatura(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("atualização devolveu %d: %s", rr.Code, rr.Body.String())
	}

	// histórico criado com o valor e vencimento da fatura
	var entradas []historicopagamento.HistoricoPagamento
	if err := db.Where("fatura_id = ?", criada.ID).Find(&entradas).Error; err != nil {
		t.Fatalf("erro ao ler histórico: %v", err)
	}
	if len(entradas) != 1 {
		t.Fatalf("esperava 1 entrada de histórico, achei %d", len(entradas))
	}
	if !entradas[0].Valor.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("histórico com valor %s, esperado 1500.00", entradas[0].Valor)
	}

	resumo = obterResumo(t, painel, "")
	if resumo.Atrasadas.Quantidade != 0 {
		t.Fatalf("fatura paga continua no balde de atrasadas")
	}
	if resumo.Pagas.Quantidade != 1 || !resumo.Pagas.Valor.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("balde de pagas: quantidade=%d valor=%s", resumo.Pagas.Quantidade, resumo.Pagas.Valor)
	}
}

// Filtro de data ilegível no painel é ignorado, nunca 4xx.
func TestResumoIgnoraFiltroIlegivel(t *testing.T) {
	db := novoBancoTeste(t)
	rel := &relogio.Fixo{Instante: dataUTC(2025, 12, 15)}
	classificador := fatura.NovoClassificador(rel, fatura.NewRepository(), 0)
	painel := NewHandler(db, classificador)

	if err := db.Create(&fatura.Fatura{
		Transportadora: "TB",
		NumeroFatura:   "TB-1",
		Valor:          decimal.NewFromInt(10),
		DataVencimento: dataUTC(2025, 12, 25),
		Status:         fatura.StatusPendente,
	}).Error; err != nil {
		t.Fatalf("erro ao criar fatura: %v", err)
	}

	semFiltro := obterResumo(t, painel, "")
	comFiltroRuim := obterResumo(t, painel, "?data_inicio=ontem&data_fim=///")
	if semFiltro.TotalGeral.Quantidade != comFiltroRuim.TotalGeral.Quantidade {
		t.Fatalf("filtro ilegível mudou o resumo: %d vs %d",
			semFiltro.TotalGeral.Quantidade, comFiltroRuim.TotalGeral.Quantidade)
	}
}
