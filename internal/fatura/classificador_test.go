package fatura

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/MshopLogistica/api-faturas/internal/historicopagamento"
	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"github.com/MshopLogistica/api-faturas/internal/responsavel"
	"github.com/glebarez/sqlite"
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
		&Fatura{},
		&historicopagamento.HistoricoPagamento{},
		&responsavel.Responsavel{},
	); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func dataUTC(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func faturaTeste(transportadora, numero string, vencimento time.Time, status Status) Fatura {
	return Fatura{
		Transportadora: transportadora,
		NumeroFatura:   numero,
		Valor:          decimal.NewFromFloat(100.00),
		DataVencimento: vencimento,
		Status:         status,
	}
}

// Semana de referência: segunda 2025-12-15, quarta 2025-12-17.
func TestCorteAtraso(t *testing.T) {
	casos := []struct {
		hoje    time.Time
		querido time.Time
	}{
		{dataUTC(2025, 12, 15), dataUTC(2025, 12, 17)}, // segunda
		{dataUTC(2025, 12, 17), dataUTC(2025, 12, 17)}, // a própria quarta
		{dataUTC(2025, 12, 19), dataUTC(2025, 12, 17)}, // sexta
		{dataUTC(2025, 12, 21), dataUTC(2025, 12, 17)}, // domingo fecha a semana
		{dataUTC(2025, 12, 22), dataUTC(2025, 12, 24)}, // segunda seguinte
	}
	for _, c := range casos {
		if got := CorteAtraso(c.hoje); !got.Equal(c.querido) {
			t.Fatalf("CorteAtraso(%s) = %s, esperado %s",
				c.hoje.Format("2006-01-02"), got.Format("2006-01-02"), c.querido.Format("2006-01-02"))
		}
	}
}

// Hoje é segunda: vencimento na quarta da mesma semana já é atrasada;
// vencimento na segunda seguinte continua pendente.
func TestVarrerFronteiraDoCorte(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()
	rel := &relogio.Fixo{Instante: dataUTC(2025, 12, 15)}

	naQuarta := faturaTeste("DHL", "F-1", dataUTC(2025, 12, 17), StatusPendente)
	semanaSeguinte := faturaTeste("DHL", "F-2", dataUTC(2025, 12, 22), StatusPendente)
	paga := faturaTeste("DHL", "F-3", dataUTC(2025, 12, 1), StatusPaga)
	for _, f := range []*Fatura{&naQuarta, &semanaSeguinte, &paga} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("erro ao criar fatura: %v", err)
		}
	}

	c := NovoClassificador(rel, repo, 0)
	if err := c.Varrer(db); err != nil {
		t.Fatalf("erro na varredura: %v", err)
	}

	confere := func(id uint, querido Status) {
		t.Helper()
		f, err := repo.BuscarPorID(db, id)
		if err != nil {
			t.Fatalf("erro ao buscar fatura %d: %v", id, err)
		}
		if f.Status != querido {
			t.Fatalf("fatura %d: status %q, esperado %q", id, f.Status, querido)
		}
	}
	confere(naQuarta.ID, StatusAtrasada)
	confere(semanaSeguinte.ID, StatusPendente)
	confere(paga.ID, StatusPaga)
}

func TestVarrerIdempotente(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()
	rel := &relogio.Fixo{Instante: dataUTC(2025, 12, 15)}

	vencida := faturaTeste("Garcia", "G-1", dataUTC(2025, 12, 10), StatusPendente)
	emDia := faturaTeste("Garcia", "G-2", dataUTC(2025, 12, 25), StatusPendente)
	for _, f := range []*Fatura{&vencida, &emDia} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("erro ao criar fatura: %v", err)
		}
	}

	c := NovoClassificador(rel, repo, 0)
	if err := c.Varrer(db); err != nil {
		t.Fatalf("primeira varredura: %v", err)
	}
	depoisDaPrimeira, err := repo.Listar(db, Filtro{})
	if err != nil {
		t.Fatalf("erro ao listar: %v", err)
	}

	if err := c.Varrer(db); err != nil {
		t.Fatalf("segunda varredura: %v", err)
	}
	depoisDaSegunda, err := repo.Listar(db, Filtro{})
	if err != nil {
		t.Fatalf("erro ao listar: %v", err)
	}

	if len(depoisDaPrimeira) != len(depoisDaSegunda) {
		t.Fatalf("varredura mudou a quantidade de faturas: %d vs %d",
			len(depoisDaPrimeira), len(depoisDaSegunda))
	}
	for i := range depoisDaPrimeira {
		if depoisDaPrimeira[i].Status != depoisDaSegunda[i].Status {
			t.Fatalf("fatura %d mudou de %q para %q na segunda varredura",
				depoisDaPrimeira[i].ID, depoisDaPrimeira[i].Status, depoisDaSegunda[i].Status)
		}
	}
}

func TestVarrerRespeitaIntervalo(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()
	rel := &relogio.Fixo{Instante: dataUTC(2025, 12, 15)}

	primeira := faturaTeste("TB", "T-1", dataUTC(2025, 12, 10), StatusPendente)
	if err := db.Create(&primeira).Error; err != nil {
		t.Fatalf("erro ao criar fatura: %v", err)
	}

	c := NovoClassificador(rel, repo, 5*time.Minute)
	if err := c.Varrer(db); err != nil {
		t.Fatalf("primeira varredura: %v", err)
	}

	// nova pendente vencida entra depois da varredura
	segunda := faturaTeste("TB", "T-2", dataUTC(2025, 12, 10), StatusPendente)
	if err := db.Create(&segunda).Error; err != nil {
		t.Fatalf("erro ao criar fatura: %v", err)
	}

	// dentro do intervalo a varredura não roda
	if err := c.Varrer(db); err != nil {
		t.Fatalf("varredura limitada: %v", err)
	}
	f, _ := repo.BuscarPorID(db, segunda.ID)
	if f.Status != StatusPendente {
		t.Fatalf("varredura rodou dentro do intervalo: status %q", f.Status)
	}

	// passado o intervalo, roda de novo
	rel.Instante = rel.Instante.Add(6 * time.Minute)
	if err := c.Varrer(db); err != nil {
		t.Fatalf("varredura após intervalo: %v", err)
	}
	f, _ = repo.BuscarPorID(db, segunda.ID)
	if f.Status != StatusAtrasada {
		t.Fatalf("varredura não rodou após o intervalo: status %q", f.Status)
	}
}
