package main

import (
	"context"
	"net/http"

	"github.com/MshopLogistica/api-faturas/internal/anexo"
	"github.com/MshopLogistica/api-faturas/internal/auth"
	"github.com/MshopLogistica/api-faturas/internal/config"
	"github.com/MshopLogistica/api-faturas/internal/dashboard"
	"github.com/MshopLogistica/api-faturas/internal/fatura"
	"github.com/MshopLogistica/api-faturas/internal/historicopagamento"
	"github.com/MshopLogistica/api-faturas/internal/logger"
	"github.com/MshopLogistica/api-faturas/internal/notificacao"
	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"github.com/MshopLogistica/api-faturas/internal/responsavel"
	"github.com/MshopLogistica/api-faturas/internal/usuario"
	utildb "github.com/MshopLogistica/api-faturas/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Carregar()

	if err := logger.Setup(cfg.NivelLog, cfg.FormatoLog); err != nil {
		log.Fatal().Err(err).Msg("configuração de log inválida")
	}

	db, err := utildb.GetDB()
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&auth.RefreshToken{},
		&fatura.Fatura{},
		&historicopagamento.HistoricoPagamento{},
		&responsavel.Responsavel{},
		&anexo.Anexo{},
	); err != nil {
		log.Fatal().Err(err).Msg("erro no AutoMigrate")
	}

	rel, err := relogio.NovoSistema(cfg.FusoNegocio)
	if err != nil {
		log.Fatal().Err(err).Str("fuso", cfg.FusoNegocio).Msg("fuso de negócio inválido")
	}

	storage, err := anexo.NovoStorage(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao conectar no storage de anexos")
	}
	if err := storage.GarantirBucket(context.Background()); err != nil {
		log.Fatal().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("erro ao garantir bucket")
	}

	// Handlers
	faturaRepo := fatura.NewRepository()
	classificador := fatura.NovoClassificador(rel, faturaRepo, cfg.IntervaloVarredura)

	faturaHandler := fatura.NewHandler(db, classificador)
	faturaHandler.Notificador = notificacao.NovoNotificador(cfg.WebhookAlertaURL)
	faturaHandler.Anexos = anexo.NovoLimpador(storage)

	// fatura.Repository satisfaz anexo.VerificadorFatura
	anexoHandler := anexo.NewHandler(db, storage, faturaRepo)
	dashboardHandler := dashboard.NewHandler(db, classificador)
	historicoHandler := historicopagamento.NewHandler(db)
	responsavelHandler := responsavel.NewHandler(db)
	usuarioHandler := usuario.NewHandler(db)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Rotas abertas
	r.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(db)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(db)).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/usuarios/me", usuarioHandler.Me).Methods("GET")

	// Rotas de faturas
	api.HandleFunc("/faturas", faturaHandler.CriarFatura).Methods("POST")
	api.HandleFunc("/faturas", faturaHandler.ListarFaturas).Methods("GET")
	api.HandleFunc("/faturas/{id}", faturaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/faturas/{id}", faturaHandler.AtualizarFatura).Methods("PUT")
	api.HandleFunc("/faturas/{id}", faturaHandler.DeletarFatura).Methods("DELETE")

	// Rotas de anexos
	api.HandleFunc("/faturas/{id}/anexos", anexoHandler.EnviarAnexo).Methods("POST")
	api.HandleFunc("/faturas/{id}/anexos", anexoHandler.ListarPorFatura).Methods("GET")
	api.HandleFunc("/anexos/{id}", anexoHandler.BaixarAnexo).Methods("GET")
	api.HandleFunc("/anexos/{id}", anexoHandler.DeletarAnexo).Methods("DELETE")

	// Painel e histórico
	api.HandleFunc("/dashboard/resumo", dashboardHandler.ObterResumo).Methods("GET")
	api.HandleFunc("/historico-pagamentos", historicoHandler.ListarHistorico).Methods("GET")
	api.HandleFunc("/historico-pagamentos/export/csv", historicoHandler.ExportarCSV).Methods("GET")
	api.HandleFunc("/historico-pagamentos/export/xlsx", historicoHandler.ExportarXLSX).Methods("GET")

	api.HandleFunc("/responsaveis", responsavelHandler.ListarResponsaveis).Methods("GET")

	// Rotas de administração
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/responsaveis", responsavelHandler.CriarResponsavel).Methods("POST")
	admin.HandleFunc("/responsaveis/{id}", responsavelHandler.AtualizarResponsavel).Methods("PUT")
	admin.HandleFunc("/responsaveis/{id}", responsavelHandler.DeletarResponsavel).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	log.Info().Str("porta", cfg.Porta).Msg("servidor de faturas no ar")
	if err := http.ListenAndServe(":"+cfg.Porta, handler); err != nil {
		log.Fatal().Err(err).Msg("servidor encerrou com erro")
	}
}
