package config

import (
	"os"
	"time"

	"github.com/MshopLogistica/api-faturas/internal/anexo"
	"github.com/MshopLogistica/api-faturas/internal/fatura"
	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"github.com/joho/godotenv"
)

// Config reúne tudo que vem do ambiente, menos as credenciais de banco
// (essas ficam em internal/utils/db).
type Config struct {
	Porta              string
	NivelLog           string
	FormatoLog         string
	FusoNegocio        string
	IntervaloVarredura time.Duration
	WebhookAlertaURL   string
	Storage            anexo.ConfigStorage
}

// Carregar lê o .env quando existe e aplica os padrões.
func Carregar() *Config {
	_ = godotenv.Load()

	intervalo := fatura.IntervaloVarreduraPadrao
	if v := getenv("SWEEP_INTERVAL", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			intervalo = d
		}
	}

	return &Config{
		Porta:              getenv("SERVER_PORT", "8080"),
		NivelLog:           getenv("LOG_LEVEL", "info"),
		FormatoLog:         getenv("LOG_FORMAT", "json"),
		FusoNegocio:        getenv("BUSINESS_TZ", relogio.FusoPadrao),
		IntervaloVarredura: intervalo,
		WebhookAlertaURL:   getenv("WEBHOOK_ALERTA_URL", ""),
		Storage: anexo.ConfigStorage{
			Endpoint:  getenv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("S3_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("S3_SECRET_KEY", "minioadmin"),
			Region:    getenv("S3_REGION", "us-east-1"),
			Bucket:    getenv("S3_BUCKET", "anexos-faturas"),
			UseSSL:    getenv("S3_USE_SSL", "false") == "true",
		},
	}
}

func getenv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
