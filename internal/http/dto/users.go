// Package dto define os corpos de request e response da API.
package dto

import (
	"encoding/json"

	"github.com/mfardini/multiconta/internal/accounts"
)

// LoginRequest é o corpo de POST /{dominio}/login.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse é a resposta de login bem sucedido.
type LoginResponse struct {
	Message string            `json:"message"`
	User    accounts.Identity `json:"user"`
}

// RegisterImobiliariaRequest é o corpo de POST /imobiliaria/users.
type RegisterImobiliariaRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterLojaRequest é o corpo de POST /loja/users. Os campos opcionais
// recebem os defaults do domínio quando ausentes.
type RegisterLojaRequest struct {
	Name      string   `json:"name"`
	Password  string   `json:"password"`
	Endereco  *string  `json:"endereco"`
	Carrinho  []string `json:"carrinho"`
	Historico []string `json:"historico"`
}

// RegisterBlogRequest é o corpo de POST /blog/users. Age fica em
// RawMessage para validar presença e tipo numérico antes de converter.
type RegisterBlogRequest struct {
	Name     string          `json:"name"`
	Password string          `json:"password"`
	Age      json.RawMessage `json:"age"`
}

// AgeNumber devolve o age como inteiro e se o campo veio como número JSON.
func (r RegisterBlogRequest) AgeNumber() (int, bool) {
	if len(r.Age) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(r.Age, &n); err != nil {
		return 0, false
	}
	return int(n), true
}
