package anexo

import (
	"context"
	"time"
)

// tentarComRecuo executa fn até max vezes, dobrando a espera a cada falha
// transitória do storage. Respeita o cancelamento do contexto.
func tentarComRecuo(ctx context.Context, max int, inicial time.Duration, fn func() error) error {
	if max <= 0 {
		max = 3
	}
	if inicial <= 0 {
		inicial = 200 * time.Millisecond
	}

	espera := inicial
	var ultimoErr error
	for tentativa := 0; tentativa < max; tentativa++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ultimoErr = fn(); ultimoErr == nil {
			return nil
		}
		if tentativa == max-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(espera):
		}
		espera *= 2
	}
	return ultimoErr
}
