package fatura

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MshopLogistica/api-faturas/internal/relogio"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// NotificadorDuplicata dispara o alerta de fatura repetida (ver notificacao).
type NotificadorDuplicata interface {
	AlertaFaturaDuplicada(transportadora, numero string)
}

// LimpadorAnexos apaga os anexos de uma fatura: os registros dentro da
// transação da exclusão, os objetos no storage depois do commit (o storage
// não participa da transação).
type LimpadorAnexos interface {
	RemoverRegistros(db *gorm.DB, faturaID uint) ([]string, error)
	RemoverObjetos(ctx context.Context, chaves []string)
}

// Handler encapsula DB, repository e o classificador de atraso
type Handler struct {
	DB            *gorm.DB
	Repository    Repository
	Classificador *Classificador

	// Opcionais, ligados no main
	Notificador NotificadorDuplicata
	Anexos      LimpadorAnexos
}

func NewHandler(db *gorm.DB, classificador *Classificador) *Handler {
	return &Handler{
		DB:            db,
		Repository:    classificador.Repository,
		Classificador: classificador,
	}
}

// CriarFatura cadastra uma nova fatura
func (h *Handler) CriarFatura(w http.ResponseWriter, r *http.Request) {
	var req FaturaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	status, vencimento, err := req.Validar()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	duplicada, err := h.Repository.ExisteDuplicada(h.DB, req.Transportadora, req.NumeroFatura, 0)
	if err != nil {
		http.Error(w, "erro ao verificar duplicata", http.StatusInternalServerError)
		return
	}
	if duplicada {
		if h.Notificador != nil {
			go h.Notificador.AlertaFaturaDuplicada(req.Transportadora, req.NumeroFatura)
		}
		http.Error(w, "já existe fatura com esse número para essa transportadora", http.StatusConflict)
		return
	}

	f := Fatura{
		Transportadora: req.Transportadora,
		NumeroFatura:   req.NumeroFatura,
		Valor:          req.Valor,
		DataVencimento: vencimento,
		Status:         status,
		Observacao:     req.Observacao,
	}

	agora := h.Classificador.Relogio.Agora()
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&f).Error; err != nil {
			return err
		}
		if err := AplicarTransicaoPagamento(tx, &f, "", agora); err != nil {
			return err
		}
		return h.Repository.Salvar(tx, &f)
	})
	if err != nil {
		http.Error(w, "erro ao salvar fatura", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// ListarFaturas varre as pendentes vencidas e retorna a lista filtrada.
// Filtros de data ilegíveis são ignorados, nunca erro.
func (h *Handler) ListarFaturas(w http.ResponseWriter, r *http.Request) {
	if err := h.Classificador.Varrer(h.DB); err != nil {
		http.Error(w, "erro ao classificar faturas", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filtro := Filtro{
		Transportadora: q.Get("transportadora"),
		Inicio:         relogio.ParseData(q.Get("data_inicio")),
		Fim:            relogio.ParseData(q.Get("data_fim")),
	}
	if s, err := ParseStatus(q.Get("status")); err == nil {
		filtro.Status = &s
	}

	faturas, err := h.Repository.Listar(h.DB, filtro)
	if err != nil {
		http.Error(w, "erro ao listar faturas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(faturas)
}

// BuscarPorID retorna uma fatura pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "fatura não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// AtualizarFatura aplica um PUT integral e registra a transição de pagamento
// na mesma transação.
func (h *Handler) AtualizarFatura(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "fatura não encontrada", http.StatusNotFound)
		return
	}

	var req FaturaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	status, vencimento, err := req.Validar()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	duplicada, err := h.Repository.ExisteDuplicada(h.DB, req.Transportadora, req.NumeroFatura, existente.ID)
	if err != nil {
		http.Error(w, "erro ao verificar duplicata", http.StatusInternalServerError)
		return
	}
	if duplicada {
		if h.Notificador != nil {
			go h.Notificador.AlertaFaturaDuplicada(req.Transportadora, req.NumeroFatura)
		}
		http.Error(w, "já existe fatura com esse número para essa transportadora", http.StatusConflict)
		return
	}

	anterior := existente.Status
	existente.Transportadora = req.Transportadora
	existente.NumeroFatura = req.NumeroFatura
	existente.Valor = req.Valor
	existente.DataVencimento = vencimento
	existente.Status = status
	existente.Observacao = req.Observacao

	agora := h.Classificador.Relogio.Agora()
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := AplicarTransicaoPagamento(tx, existente, anterior, agora); err != nil {
			return err
		}
		return h.Repository.Salvar(tx, existente)
	})
	if err != nil {
		http.Error(w, "erro ao atualizar fatura", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DeletarFatura remove a fatura e todos os anexos dela
func (h *Handler) DeletarFatura(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existe, err := h.Repository.Existe(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar fatura", http.StatusInternalServerError)
		return
	}
	if !existe {
		http.Error(w, "fatura não encontrada", http.StatusNotFound)
		return
	}

	var chaves []string
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if h.Anexos != nil {
			chaves, err = h.Anexos.RemoverRegistros(tx, uint(id))
			if err != nil {
				return err
			}
		}
		return h.Repository.Deletar(tx, uint(id))
	})
	if err != nil {
		http.Error(w, "erro ao excluir fatura", http.StatusInternalServerError)
		return
	}
	if h.Anexos != nil && len(chaves) > 0 {
		h.Anexos.RemoverObjetos(r.Context(), chaves)
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("fatura excluída com sucesso"))
}
