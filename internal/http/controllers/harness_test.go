package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/cart"
	"github.com/mfardini/multiconta/internal/http/controllers"
	"github.com/mfardini/multiconta/internal/http/router"
	"github.com/mfardini/multiconta/internal/store/memory"
)

// newServer sobe a API completa sobre o driver em memória.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	imob := memory.NewImobiliaria()
	loja := memory.NewLoja()
	blog := memory.NewBlog()

	h := router.New(router.Deps{
		Imobiliaria: controllers.NewImobiliaria(
			accounts.NewRegistry("imobiliaria", imob),
			accounts.NewVerifier("imobiliaria", imob),
		),
		Loja: controllers.NewLoja(
			accounts.NewRegistry("loja", loja),
			accounts.NewVerifier("loja", loja),
			cart.NewLedger(loja),
		),
		Blog: controllers.NewBlog(
			accounts.NewRegistry("blog", blog),
			accounts.NewVerifier("blog", blog),
		),
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

// do executa um request JSON e devolve status e corpo cru.
func do(t *testing.T, method, url string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// asMap decodifica o corpo como objeto JSON.
func asMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}
