// Package httperrors padroniza as respostas de erro da API.
// Todo erro sai como {"error": mensagem} com o status adequado.
package httperrors

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// HTTPError carrega o status e a mensagem visível ao cliente.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *HTTPError) Error() string { return e.Message }

// New cria um HTTPError com status e mensagem.
func New(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// BadRequest, Conflict etc. são atalhos para os status usados pela API.

func BadRequest(msg string) *HTTPError   { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *HTTPError { return New(http.StatusUnauthorized, msg) }
func NotFound(msg string) *HTTPError     { return New(http.StatusNotFound, msg) }
func Conflict(msg string) *HTTPError     { return New(http.StatusConflict, msg) }
func Internal(msg string) *HTTPError     { return New(http.StatusInternalServerError, msg) }

// WriteError escreve o erro no response. Erros que não são *HTTPError
// viram 500 genérico; o detalhe interno fica só no log de quem chamou.
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = Internal("Erro interno do servidor.")
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(httpErr.Status)
	_ = json.NewEncoder(w).Encode(httpErr)
}

// WriteJSON escreve uma resposta JSON com o status dado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
