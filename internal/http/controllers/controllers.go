// Package controllers mapeia as operações de conta e carrinho para HTTP.
// Cada controller decodifica o corpo, chama o serviço e traduz os erros
// sentinela para status; falha inesperada vira 500 com a mensagem do
// domínio e o detalhe fica só no log.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/http/dto"
	"github.com/mfardini/multiconta/internal/http/httperrors"
	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
)

const maxBodySize = 64 * 1024 // 64KB

const (
	msgMissingCredentials = "Nome e senha são obrigatórios."
	msgPasswordTooShort   = "A senha deve ter no mínimo 6 caracteres."
	msgNameTaken          = "Nome de usuário já cadastrado."
	msgInvalidCredentials = "Nome ou senha inválidos."
	msgInvalidJSON        = "JSON inválido."
	msgUserNotFound       = "Usuário não encontrado."
	msgLoginOK            = "Login realizado com sucesso"
)

// DomainMessages são as mensagens de erro interno por domínio, no tom do
// sistema original ("Erro ao criar usuário loja." etc).
type DomainMessages struct {
	Create string
	Fetch  string
	Edit   string
	Delete string
	Login  string
}

// crud agrupa os handlers comuns às três coleções.
type crud[E store.Entity] struct {
	reg *accounts.Registry[E]
	ver *accounts.Verifier[E]
	msg DomainMessages
}

// decodeBody decodifica o corpo JSON com limite de tamanho.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// putField copia body[key] para fields[key] com o tipo T, quando presente.
func putField[T any](body map[string]json.RawMessage, key string, fields map[string]any) error {
	raw, ok := body[key]
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	fields[key] = v
	return nil
}

// writeRegisterError traduz os erros de cadastro.
func (c *crud[E]) writeRegisterError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, accounts.ErrMissingFields):
		httperrors.WriteError(w, httperrors.BadRequest(msgMissingCredentials))
	case errors.Is(err, accounts.ErrPasswordTooShort):
		httperrors.WriteError(w, httperrors.BadRequest(msgPasswordTooShort))
	case errors.Is(err, accounts.ErrNameTaken):
		httperrors.WriteError(w, httperrors.Conflict(msgNameTaken))
	default:
		logger.From(r.Context()).Error("register failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.Internal(c.msg.Create))
	}
}

// List responde GET /{dominio}/users.
func (c *crud[E]) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.reg.List(r.Context())
	if err != nil {
		logger.From(r.Context()).Error("list failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.Internal(c.msg.Fetch))
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, users)
}

// Get responde GET /{dominio}/users/{id}.
func (c *crud[E]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u, err := c.reg.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperrors.WriteError(w, httperrors.NotFound(msgUserNotFound))
			return
		}
		logger.From(r.Context()).Error("get failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.Internal(c.msg.Fetch))
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, u)
}

// update aplica os campos já convertidos e responde a entidade editada.
func (c *crud[E]) update(w http.ResponseWriter, r *http.Request, fields map[string]any) {
	id := chi.URLParam(r, "id")
	u, err := c.reg.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperrors.WriteError(w, httperrors.NotFound(msgUserNotFound))
			return
		}
		logger.From(r.Context()).Error("update failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.Internal(c.msg.Edit))
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, u)
}

// Delete responde DELETE /{dominio}/users/{id} com 204.
func (c *crud[E]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.reg.Remove(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperrors.WriteError(w, httperrors.NotFound(msgUserNotFound))
			return
		}
		logger.From(r.Context()).Error("delete failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.Internal(c.msg.Delete))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Login responde POST /{dominio}/login.
func (c *crud[E]) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		httperrors.WriteError(w, httperrors.BadRequest(msgInvalidJSON))
		return
	}

	id, err := c.ver.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrMissingFields):
			httperrors.WriteError(w, httperrors.BadRequest(msgMissingCredentials))
		case errors.Is(err, accounts.ErrInvalidCredentials):
			httperrors.WriteError(w, httperrors.Unauthorized(msgInvalidCredentials))
		default:
			logger.From(r.Context()).Error("login failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.Internal(c.msg.Login))
		}
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, dto.LoginResponse{Message: msgLoginOK, User: id})
}
