package responsavel

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

// CriarResponsavel cadastra um novo mapeamento transportadora -> pessoa
func (h *Handler) CriarResponsavel(w http.ResponseWriter, r *http.Request) {
	var req Responsavel
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Transportadora == "" || req.Nome == "" {
		http.Error(w, "transportadora e nome são obrigatórios", http.StatusBadRequest)
		return
	}

	novo := Responsavel{Transportadora: req.Transportadora, Nome: req.Nome}
	if err := h.Repository.Salvar(h.DB, &novo); err != nil {
		http.Error(w, "erro ao salvar responsável", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(novo)
}

// ListarResponsaveis retorna todos os mapeamentos
func (h *Handler) ListarResponsaveis(w http.ResponseWriter, r *http.Request) {
	responsaveis, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar responsáveis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responsaveis)
}

// AtualizarResponsavel altera um mapeamento existente
func (h *Handler) AtualizarResponsavel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dados Responsavel
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "responsável não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar responsável", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("responsável atualizado com sucesso"))
}

// DeletarResponsavel remove um mapeamento
func (h *Handler) DeletarResponsavel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir responsável", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("responsável excluído com sucesso"))
}
