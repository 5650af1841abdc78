package historicopagamento

import (
	"encoding/json"
	"net/http"

	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func (h *Handler) filtroDaQuery(r *http.Request) Filtro {
	q := r.URL.Query()
	return Filtro{
		Transportadora: q.Get("transportadora"),
		Inicio:         relogio.ParseData(q.Get("data_inicio")),
		Fim:            relogio.ParseData(q.Get("data_fim")),
	}
}

// ListarHistorico retorna as entradas do histórico, mais recentes primeiro
func (h *Handler) ListarHistorico(w http.ResponseWriter, r *http.Request) {
	entradas, err := h.Repository.Listar(h.DB, h.filtroDaQuery(r))
	if err != nil {
		http.Error(w, "erro ao listar histórico", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entradas)
}

// ExportarCSV baixa o histórico filtrado como CSV
func (h *Handler) ExportarCSV(w http.ResponseWriter, r *http.Request) {
	entradas, err := h.Repository.Listar(h.DB, h.filtroDaQuery(r))
	if err != nil {
		http.Error(w, "erro ao listar histórico", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="historico_pagamentos.csv"`)
	if err := EscreverCSV(w, entradas); err != nil {
		http.Error(w, "erro ao exportar histórico", http.StatusInternalServerError)
		return
	}
}

// ExportarXLSX baixa o histórico filtrado como planilha
func (h *Handler) ExportarXLSX(w http.ResponseWriter, r *http.Request) {
	entradas, err := h.Repository.Listar(h.DB, h.filtroDaQuery(r))
	if err != nil {
		http.Error(w, "erro ao listar histórico", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="historico_pagamentos.xlsx"`)
	if err := EscreverXLSX(w, entradas); err != nil {
		http.Error(w, "erro ao exportar histórico", http.StatusInternalServerError)
		return
	}
}
