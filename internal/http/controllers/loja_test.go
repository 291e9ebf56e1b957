package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerLoja(t *testing.T, base, name string) string {
	t.Helper()
	status, raw := do(t, http.MethodPost, base+"/loja/users", map[string]any{
		"name":     name,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)
	id, ok := asMap(t, raw)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

// Fluxo completo do carrinho: cadastro, inclusão, listagem decodificada
// e remoção por índice.
func TestLoja_CartFlow(t *testing.T) {
	srv := newServer(t)

	status, raw := do(t, http.MethodPost, srv.URL+"/loja/users", map[string]any{
		"name":     "ana",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)
	created := asMap(t, raw)
	id := created["id"].(string)
	assert.Equal(t, "ana", created["name"])
	assert.Equal(t, []any{}, created["carrinho"])
	assert.Equal(t, []any{}, created["historico"])
	assert.Nil(t, created["endereco"])

	status, raw = do(t, http.MethodPost, srv.URL+"/loja/users/"+id+"/carrinho", map[string]any{
		"produto": map[string]any{"sku": "X1", "qty": 2},
	})
	require.Equal(t, http.StatusOK, status)
	body := asMap(t, raw)
	assert.Equal(t, "Produto adicionado ao carrinho.", body["message"])
	require.Len(t, body["carrinho"], 1)

	status, raw = do(t, http.MethodGet, srv.URL+"/loja/users/"+id+"/carrinho", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"carrinho":[{"sku":"X1","qty":2}]}`, string(raw))

	status, raw = do(t, http.MethodDelete, srv.URL+"/loja/users/"+id+"/carrinho/0", nil)
	require.Equal(t, http.StatusOK, status)
	body = asMap(t, raw)
	assert.Equal(t, "Produto removido do carrinho.", body["message"])
	assert.Equal(t, []any{}, body["carrinho"])
}

func TestLoja_AppendRequiresProduto(t *testing.T) {
	srv := newServer(t)
	id := registerLoja(t, srv.URL, "ana")

	for name, payload := range map[string]map[string]any{
		"ausente": {},
		"nulo":    {"produto": nil},
	} {
		t.Run(name, func(t *testing.T) {
			status, raw := do(t, http.MethodPost, srv.URL+"/loja/users/"+id+"/carrinho", payload)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Produto é obrigatório.", asMap(t, raw)["error"])
		})
	}
}

func TestLoja_CartUnknownUser(t *testing.T) {
	srv := newServer(t)

	status, raw := do(t, http.MethodGet, srv.URL+"/loja/users/nao-existe/carrinho", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Usuário não encontrado.", asMap(t, raw)["error"])
}

func TestLoja_RemoveInvalidIndex(t *testing.T) {
	srv := newServer(t)
	id := registerLoja(t, srv.URL, "ana")

	status, _ := do(t, http.MethodPost, srv.URL+"/loja/users/"+id+"/carrinho", map[string]any{"produto": "livro"})
	require.Equal(t, http.StatusOK, status)

	for _, index := range []string{"1", "-1", "abc"} {
		status, raw := do(t, http.MethodDelete, srv.URL+"/loja/users/"+id+"/carrinho/"+index, nil)
		assert.Equal(t, http.StatusBadRequest, status, "index %s", index)
		assert.Equal(t, "Índice inválido.", asMap(t, raw)["error"])
	}

	// o carrinho segue intacto
	status, raw := do(t, http.MethodGet, srv.URL+"/loja/users/"+id+"/carrinho", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"carrinho":["livro"]}`, string(raw))
}

func TestLoja_DuplicateName(t *testing.T) {
	srv := newServer(t)
	registerLoja(t, srv.URL, "ana")

	status, raw := do(t, http.MethodPost, srv.URL+"/loja/users", map[string]any{
		"name":     "ana",
		"password": "outra123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Nome de usuário já cadastrado.", asMap(t, raw)["error"])
}

func TestLoja_PartialUpdate(t *testing.T) {
	srv := newServer(t)
	id := registerLoja(t, srv.URL, "ana")

	status, raw := do(t, http.MethodPut, srv.URL+"/loja/users/"+id, map[string]any{
		"endereco": "rua um, 42",
	})
	require.Equal(t, http.StatusOK, status)
	body := asMap(t, raw)
	assert.Equal(t, "rua um, 42", body["endereco"])
	assert.Equal(t, "ana", body["name"])

	// endereco aceita null para limpar
	status, raw = do(t, http.MethodPut, srv.URL+"/loja/users/"+id, map[string]any{
		"endereco": nil,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, asMap(t, raw)["endereco"])
}

func TestLoja_Login(t *testing.T) {
	srv := newServer(t)
	id := registerLoja(t, srv.URL, "ana")

	status, raw := do(t, http.MethodPost, srv.URL+"/loja/login", map[string]any{
		"name":     "ana",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)
	body := asMap(t, raw)
	assert.Equal(t, "Login realizado com sucesso", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, id, user["id"])
	assert.Equal(t, "ana", user["name"])
	assert.NotContains(t, user, "password")

	status, raw = do(t, http.MethodPost, srv.URL+"/loja/login", map[string]any{
		"name":     "ana",
		"password": "errada1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Nome ou senha inválidos.", asMap(t, raw)["error"])
}
