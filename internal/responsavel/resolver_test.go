package responsavel

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("erro ao abrir banco de teste: %v", err)
	}
	if err := db.AutoMigrate(&Responsavel{}); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func TestPrefixoTransportadora(t *testing.T) {
	casos := []struct {
		entrada string
		querido string
	}{
		{"Garcia - Juliana", "Garcia"},
		{"Garcia-Juliana", "Garcia"},
		{"DHL", "DHL"},
		{"  Transbritto  ", "Transbritto"},
		{"- só sufixo", ""},
		{"", ""},
	}
	for _, c := range casos {
		if got := PrefixoTransportadora(c.entrada); got != c.querido {
			t.Fatalf("PrefixoTransportadora(%q) = %q, esperado %q", c.entrada, got, c.querido)
		}
	}
}

func TestResolverUsaPrefixoDoNomeComposto(t *testing.T) {
	db := novoBancoTeste(t)
	if err := db.Create(&Responsavel{Transportadora: "Garcia", Nome: "Juliana"}).Error; err != nil {
		t.Fatalf("erro ao criar responsável: %v", err)
	}

	nome, err := Resolver(db, "Garcia - Juliana")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if nome != "Juliana" {
		t.Fatalf("resolvido %q, esperado Juliana", nome)
	}
}

func TestResolverIgnoraCaixa(t *testing.T) {
	db := novoBancoTeste(t)
	if err := db.Create(&Responsavel{Transportadora: "garcia", Nome: "Juliana"}).Error; err != nil {
		t.Fatalf("erro ao criar responsável: %v", err)
	}

	nome, err := Resolver(db, "GARCIA - Outra Coisa")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if nome != "Juliana" {
		t.Fatalf("resolvido %q, esperado Juliana", nome)
	}
}

// Transportadora sem mapeamento resolve para vazio, nunca erro.
func TestResolverSemMapeamento(t *testing.T) {
	db := novoBancoTeste(t)

	nome, err := Resolver(db, "Transportadora Fantasma")
	if err != nil {
		t.Fatalf("transportadora sem mapeamento virou erro: %v", err)
	}
	if nome != "" {
		t.Fatalf("resolvido %q, esperado vazio", nome)
	}
}
