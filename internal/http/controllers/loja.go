package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/cart"
	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/http/dto"
	"github.com/mfardini/multiconta/internal/http/httperrors"
	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
)

const (
	msgProdutoRequired = "Produto é obrigatório."
	msgInvalidIndex    = "Índice inválido."
	msgProdutoAdded    = "Produto adicionado ao carrinho."
	msgProdutoRemoved  = "Produto removido do carrinho."
	msgCartError       = "Erro ao atualizar carrinho."
)

// LojaController atende /loja, incluindo o subsistema de carrinho.
type LojaController struct {
	crud[*domain.LojaUser]
	ledger *cart.Ledger
}

func NewLoja(reg *accounts.Registry[*domain.LojaUser], ver *accounts.Verifier[*domain.LojaUser], ledger *cart.Ledger) *LojaController {
	return &LojaController{
		crud: crud[*domain.LojaUser]{
			reg: reg,
			ver: ver,
			msg: DomainMessages{
				Create: "Erro ao criar usuário loja.",
				Fetch:  "Erro ao buscar usuários loja.",
				Edit:   "Erro ao editar usuário loja.",
				Delete: "Erro ao deletar usuário loja.",
				Login:  "Erro no login loja.",
			},
		},
		ledger: ledger,
	}
}

// Register responde POST /loja/users, aplicando os defaults do domínio
// nos campos ausentes.
func (c *LojaController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterLojaRequest
	if err := decodeBody(w, r, &req); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	u := &domain.LojaUser{
		Name:      req.Name,
		Password:  req.Password,
		Endereco:  req.Endereco,
		Carrinho:  req.Carrinho,
		Historico: req.Historico,
	}
	if u.Carrinho == nil {
		u.Carrinho = []string{}
	}
	if u.Historico == nil {
		u.Historico = []string{}
	}

	if err := c.reg.Register(r.Context(), u); err != nil {
		c.writeRegisterError(w, r, err)
		return
	}
	httperrors.WriteJSON(w, http.StatusCreated, u)
}

// Update responde PUT /loja/users/{id}.
func (c *LojaController) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := decodeBody(w, r, &body); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	fields := map[string]any{}
	bad := putField[string](body, "name", fields) != nil ||
		putField[string](body, "password", fields) != nil ||
		putField[*string](body, "endereco", fields) != nil ||
		putField[[]string](body, "carrinho", fields) != nil ||
		putField[[]string](body, "historico", fields) != nil
	if bad {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	c.update(w, r, fields)
}

// AppendItem responde POST /loja/users/{id}/carrinho.
func (c *LojaController) AppendItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AppendItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}
	if !req.HasProduto() {
		httperrors.WriteError(w, httperrors.BadRequest(msgProdutoRequired))
		return
	}

	var item any
	if err := json.Unmarshal(req.Produto, &item); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	updated, err := c.ledger.Append(r.Context(), chi.URLParam(r, "id"), item)
	if err != nil {
		c.writeCartError(w, r, err)
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, dto.CartMutationResponse{
		Message:  msgProdutoAdded,
		Carrinho: updated,
	})
}

// ListItems responde GET /loja/users/{id}/carrinho com o carrinho
// materializado: entradas decodificadas ou, quando malformadas, cruas.
func (c *LojaController) ListItems(w http.ResponseWriter, r *http.Request) {
	entries, err := c.ledger.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.writeCartError(w, r, err)
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, dto.CartListResponse{Carrinho: entries})
}

// RemoveItem responde DELETE /loja/users/{id}/carrinho/{index}.
func (c *LojaController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidIndex))
		return
	}

	updated, err := c.ledger.RemoveAt(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		c.writeCartError(w, r, err)
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, dto.CartMutationResponse{
		Message:  msgProdutoRemoved,
		Carrinho: updated,
	})
}

func (c *LojaController) writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrMissingItem):
		httperrors.WriteError(w, httperrors.BadRequest(msgProdutoRequired))
	case errors.Is(err, cart.ErrIndexOutOfRange):
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidIndex))
	case errors.Is(err, store.ErrNotFound):
		httperrors.WriteError(w, httperrors.NotFound(msgUserNotFound))
	default:
		logger.From(r.Context()).Error("cart operation failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.Internal(msgCartError))
	}
}
