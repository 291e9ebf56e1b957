// Package middlewares traz a cadeia HTTP do servidor: recuperação de
// pânico, request id, logging estruturado, CORS e instrumentação.
package middlewares

import "net/http"

// Middleware decora um http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain aplica os middlewares da esquerda para a direita: o primeiro da
// lista é o mais externo.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
