package fatura

import (
	"sync"
	"time"

	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"gorm.io/gorm"
)

// IntervaloVarreduraPadrao limita o custo de varrer a tabela a cada leitura
// sob tráfego alto.
const IntervaloVarreduraPadrao = 5 * time.Minute

// CorteAtraso devolve a quarta-feira da semana corrente (semanas começam na
// segunda), como meia-noite UTC. Uma pendente vencendo até essa quarta já está
// atrasada; vencimentos de quinta a domingo só atrasam na quarta seguinte.
//
// O histórico do sistema teve três fórmulas de corte diferentes; esta é a
// forma final e é a única implementada.
func CorteAtraso(hoje time.Time) time.Time {
	diasDesdeSegunda := (int(hoje.Weekday()) + 6) % 7
	return relogio.Data(hoje).AddDate(0, 0, 2-diasDesdeSegunda)
}

// Classificador promove pendentes vencidas a atrasadas. A varredura é lenta
// (disparada no começo das leituras, sem timer) e limitada por intervalo; o
// instante da última varredura é estado da instância, protegido por mutex,
// para funcionar com vários serviços concorrentes.
type Classificador struct {
	Relogio    relogio.Relogio
	Repository Repository
	// Intervalo mínimo entre varreduras; zero desliga o limite.
	Intervalo time.Duration

	mu              sync.Mutex
	ultimaVarredura time.Time
}

func NovoClassificador(rel relogio.Relogio, repo Repository, intervalo time.Duration) *Classificador {
	return &Classificador{
		Relogio:    rel,
		Repository: repo,
		Intervalo:  intervalo,
	}
}

// Corte devolve o corte de atraso para o "hoje" do relógio de negócio.
func (c *Classificador) Corte() time.Time {
	return CorteAtraso(c.Relogio.Agora())
}

// Varrer executa a promoção pendente->atrasada respeitando o intervalo.
// Varrer duas vezes seguidas produz o mesmo estado final que uma vez.
func (c *Classificador) Varrer(db *gorm.DB) error {
	agora := c.Relogio.Agora()

	c.mu.Lock()
	if c.Intervalo > 0 && !c.ultimaVarredura.IsZero() && agora.Sub(c.ultimaVarredura) < c.Intervalo {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if _, err := c.Repository.PromoverAtrasadas(db, CorteAtraso(agora)); err != nil {
		return err
	}

	c.mu.Lock()
	c.ultimaVarredura = agora
	c.mu.Unlock()
	return nil
}
