package dto

import (
	"encoding/json"

	"github.com/mfardini/multiconta/internal/cart"
)

// AppendItemRequest é o corpo de POST /loja/users/{id}/carrinho. O produto
// é um payload JSON arbitrário; nenhum schema é imposto sobre ele.
type AppendItemRequest struct {
	Produto json.RawMessage `json:"produto"`
}

// HasProduto reporta se o campo veio no corpo e não é null.
func (r AppendItemRequest) HasProduto() bool {
	return len(r.Produto) > 0 && string(r.Produto) != "null"
}

// CartMutationResponse responde append e remoção, com o carrinho como
// armazenado (strings serializadas).
type CartMutationResponse struct {
	Message  string   `json:"message"`
	Carrinho []string `json:"carrinho"`
}

// CartListResponse responde a listagem materializada do carrinho.
type CartListResponse struct {
	Carrinho []cart.Entry `json:"carrinho"`
}
