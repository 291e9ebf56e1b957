package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mfardini/multiconta/internal/metrics"
)

// WithMetrics instrumenta cada request com contador, histograma de
// latência e gauge de requests em voo. Usa o padrão de rota do chi como
// label de path.
func WithMetrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.TrackInflight(1)
			defer metrics.TrackInflight(-1)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					pattern = p
				}
			}
			metrics.Observe(r.Method, pattern, rec.status, time.Since(start))
		})
	}
}
