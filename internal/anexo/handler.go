package anexo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Limite do multipart de upload.
const tamanhoMaximoUpload = 32 << 20

// VerificadorFatura confirma que a fatura dona do anexo existe, sem este
// pacote depender do pacote fatura.
type VerificadorFatura interface {
	Existe(db *gorm.DB, id uint) (bool, error)
}

// Handler encapsula DB, repository e o storage de objetos
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Storage    *Storage
	Faturas    VerificadorFatura
}

func NewHandler(db *gorm.DB, storage *Storage, faturas VerificadorFatura) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Storage:    storage,
		Faturas:    faturas,
	}
}

// EnviarAnexo recebe multipart/form-data com o campo `arquivo` e grava o
// objeto no storage antes do registro no banco. Falha de storage é erro só
// desta operação; a fatura em si nunca é tocada aqui.
func (h *Handler) EnviarAnexo(w http.ResponseWriter, r *http.Request) {
	faturaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existe, err := h.Faturas.Existe(h.DB, uint(faturaID))
	if err != nil {
		http.Error(w, "erro ao buscar fatura", http.StatusInternalServerError)
		return
	}
	if !existe {
		http.Error(w, "fatura não encontrada", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(tamanhoMaximoUpload); err != nil {
		http.Error(w, "multipart inválido", http.StatusBadRequest)
		return
	}
	arquivo, cabecalho, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "campo arquivo é obrigatório", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	nome := path.Base(cabecalho.Filename)
	chave := fmt.Sprintf("faturas/%d/%s-%s", faturaID, uuid.NewString(), nome)
	contentType := cabecalho.Header.Get("Content-Type")

	if err := h.Storage.Enviar(r.Context(), chave, arquivo, cabecalho.Size, contentType); err != nil {
		log.Error().Err(err).Str("chave", chave).Msg("falha ao gravar anexo no storage")
		http.Error(w, "falha ao gravar arquivo no storage", http.StatusBadGateway)
		return
	}

	a := Anexo{
		FaturaID:    uint(faturaID),
		ChaveObjeto: chave,
		NomeArquivo: nome,
		ContentType: contentType,
		Tamanho:     cabecalho.Size,
	}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		h.Storage.RemoverTodos(r.Context(), []string{chave})
		http.Error(w, "erro ao salvar anexo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListarPorFatura retorna os anexos de uma fatura
func (h *Handler) ListarPorFatura(w http.ResponseWriter, r *http.Request) {
	faturaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	anexos, err := h.Repository.ListarPorFatura(h.DB, uint(faturaID))
	if err != nil {
		http.Error(w, "erro ao listar anexos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(anexos)
}

// BaixarAnexo transmite os bytes do objeto
func (h *Handler) BaixarAnexo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "anexo não encontrado", http.StatusNotFound)
		return
	}

	obj, err := h.Storage.Baixar(r.Context(), a.ChaveObjeto)
	if err != nil {
		log.Error().Err(err).Str("chave", a.ChaveObjeto).Msg("falha ao ler anexo do storage")
		http.Error(w, "falha ao ler arquivo do storage", http.StatusBadGateway)
		return
	}
	defer obj.Close()

	if a.ContentType != "" {
		w.Header().Set("Content-Type", a.ContentType)
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.NomeArquivo))
	if _, err := io.Copy(w, obj); err != nil {
		log.Warn().Err(err).Uint("anexo", a.ID).Msg("download de anexo interrompido")
	}
}

// DeletarAnexo remove o registro e o objeto
func (h *Handler) DeletarAnexo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "anexo não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Storage.Remover(r.Context(), a.ChaveObjeto); err != nil {
		log.Error().Err(err).Str("chave", a.ChaveObjeto).Msg("falha ao remover anexo do storage")
		http.Error(w, "falha ao remover arquivo do storage", http.StatusBadGateway)
		return
	}
	if err := h.Repository.Deletar(h.DB, a.ID); err != nil {
		http.Error(w, "erro ao excluir anexo", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("anexo excluído com sucesso"))
}

// Limpador implementa a limpeza em cascata usada pela exclusão de fatura.
type Limpador struct {
	Repository Repository
	Storage    *Storage
}

func NovoLimpador(storage *Storage) *Limpador {
	return &Limpador{Repository: NewRepository(), Storage: storage}
}

func (l *Limpador) RemoverRegistros(db *gorm.DB, faturaID uint) ([]string, error) {
	return l.Repository.DeletarPorFatura(db, faturaID)
}

func (l *Limpador) RemoverObjetos(ctx context.Context, chaves []string) {
	l.Storage.RemoverTodos(ctx, chaves)
}
