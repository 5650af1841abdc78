package notificacao

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Notificador avisa um webhook externo quando alguém tenta cadastrar uma
// fatura com par (transportadora, número) já existente. URL vazia desliga o
// aviso. Disparo é melhor esforço: falha só vai para o log.
type Notificador struct {
	URL     string
	Cliente *http.Client
}

func NovoNotificador(url string) *Notificador {
	return &Notificador{
		URL:     url,
		Cliente: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notificador) AlertaFaturaDuplicada(transportadora, numero string) {
	if n.URL == "" {
		return
	}

	payload := map[string]string{
		"mensagem":       "Alerta: tentativa de cadastrar fatura já existente",
		"transportadora": transportadora,
		"numeroFatura":   numero,
	}
	body, _ := json.Marshal(payload)

	resp, err := n.Cliente.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Warn().Err(err).Msg("erro ao enviar webhook de duplicata")
		return
	}
	defer resp.Body.Close()
}
