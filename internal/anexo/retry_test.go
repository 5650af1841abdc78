package anexo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTentarComRecuoParaNoPrimeiroSucesso(t *testing.T) {
	chamadas := 0
	err := tentarComRecuo(context.Background(), 3, time.Millisecond, func() error {
		chamadas++
		return nil
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if chamadas != 1 {
		t.Fatalf("esperava 1 chamada, houve %d", chamadas)
	}
}

func TestTentarComRecuoRepeteAteOSucesso(t *testing.T) {
	chamadas := 0
	err := tentarComRecuo(context.Background(), 3, time.Millisecond, func() error {
		chamadas++
		if chamadas < 3 {
			return errors.New("falha transitória")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if chamadas != 3 {
		t.Fatalf("esperava 3 chamadas, houve %d", chamadas)
	}
}

func TestTentarComRecuoDevolveUltimoErro(t *testing.T) {
	final := errors.New("storage fora do ar")
	chamadas := 0
	err := tentarComRecuo(context.Background(), 3, time.Millisecond, func() error {
		chamadas++
		return final
	})
	if !errors.Is(err, final) {
		t.Fatalf("erro devolvido %v, esperado %v", err, final)
	}
	if chamadas != 3 {
		t.Fatalf("esperava 3 chamadas, houve %d", chamadas)
	}
}

func TestTentarComRecuoRespeitaContexto(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chamadas := 0
	err := tentarComRecuo(ctx, 3, time.Millisecond, func() error {
		chamadas++
		return errors.New("nunca deveria aparecer")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("erro devolvido %v, esperado context.Canceled", err)
	}
	if chamadas != 0 {
		t.Fatalf("fn rodou %d vezes com contexto cancelado", chamadas)
	}
}
