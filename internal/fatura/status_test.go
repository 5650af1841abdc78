package fatura

import "testing"

func TestParseStatusAceitaGrafiasHistoricas(t *testing.T) {
	casos := []struct {
		entrada string
		querido Status
	}{
		{"pendente", StatusPendente},
		{"PENDENTE", StatusPendente},
		{"pending", StatusPendente},
		{"atrasada", StatusAtrasada},
		{"Atrasado", StatusAtrasada},
		{"late", StatusAtrasada},
		{"paga", StatusPaga},
		{"pago", StatusPaga},
		{"PAID", StatusPaga},
		{"  paga  ", StatusPaga},
	}
	for _, c := range casos {
		got, err := ParseStatus(c.entrada)
		if err != nil {
			t.Fatalf("ParseStatus(%q): erro inesperado: %v", c.entrada, err)
		}
		if got != c.querido {
			t.Fatalf("ParseStatus(%q) = %q, esperado %q", c.entrada, got, c.querido)
		}
	}
}

func TestParseStatusRejeitaDesconhecido(t *testing.T) {
	for _, entrada := range []string{"", "programada", "em dia", "xyz"} {
		if _, err := ParseStatus(entrada); err == nil {
			t.Fatalf("ParseStatus(%q): esperava erro", entrada)
		}
	}
}
