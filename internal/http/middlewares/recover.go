package middlewares

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mfardini/multiconta/internal/http/httperrors"
	"github.com/mfardini/multiconta/internal/observability/logger"
)

// WithRecover converte pânico de handler em 500, sem derrubar o processo.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						logger.Path(r.URL.Path),
						logger.Method(r.Method),
						zap.Any("panic", rec),
					)
					httperrors.WriteError(w, httperrors.Internal("Erro interno do servidor."))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
