package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/MshopLogistica/api-faturas/internal/fatura"
	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"gorm.io/gorm"
)

// Handler monta o resumo do painel a partir das faturas
type Handler struct {
	DB            *gorm.DB
	Faturas       fatura.Repository
	Classificador *fatura.Classificador
}

func NewHandler(db *gorm.DB, classificador *fatura.Classificador) *Handler {
	return &Handler{
		DB:            db,
		Faturas:       classificador.Repository,
		Classificador: classificador,
	}
}

// ObterResumo varre as pendentes vencidas e agrega os totais do painel.
// Aceita os mesmos filtros da listagem; datas ilegíveis são ignoradas.
func (h *Handler) ObterResumo(w http.ResponseWriter, r *http.Request) {
	if err := h.Classificador.Varrer(h.DB); err != nil {
		http.Error(w, "erro ao classificar faturas", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filtro := fatura.Filtro{
		Transportadora: q.Get("transportadora"),
		Inicio:         relogio.ParseData(q.Get("data_inicio")),
		Fim:            relogio.ParseData(q.Get("data_fim")),
	}

	faturas, err := h.Faturas.Listar(h.DB, filtro)
	if err != nil {
		http.Error(w, "erro ao listar faturas", http.StatusInternalServerError)
		return
	}

	resumo := MontarResumo(faturas, h.Classificador.Corte())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
