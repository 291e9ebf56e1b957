// Package router monta as rotas da API sobre chi.
package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfardini/multiconta/internal/http/controllers"
	"github.com/mfardini/multiconta/internal/http/httperrors"
	"github.com/mfardini/multiconta/internal/http/middlewares"
)

// Pinger reporta se o store está alcançável. Opcional: nil faz o
// /healthz responder sempre ok (caso do driver em memória).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps agrupa as dependências do router.
type Deps struct {
	Imobiliaria *controllers.ImobiliariaController
	Loja        *controllers.LojaController
	Blog        *controllers.BlogController

	Store   Pinger
	Metrics http.Handler

	CORSAllowedOrigins []string
}

// New monta o handler raiz com a cadeia de middlewares e todas as rotas.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewares.WithRecover(),
		middlewares.WithRequestID(),
		middlewares.WithCORS(deps.CORSAllowedOrigins),
		middlewares.WithMetrics(),
		middlewares.WithLogging(),
	)

	// Imobiliária
	r.Route("/imobiliaria", func(r chi.Router) {
		r.Post("/users", deps.Imobiliaria.Register)
		r.Get("/users", deps.Imobiliaria.List)
		r.Get("/users/{id}", deps.Imobiliaria.Get)
		r.Put("/users/{id}", deps.Imobiliaria.Update)
		r.Delete("/users/{id}", deps.Imobiliaria.Delete)
		r.Post("/login", deps.Imobiliaria.Login)
	})

	// Loja (inclui o carrinho)
	r.Route("/loja", func(r chi.Router) {
		r.Post("/users", deps.Loja.Register)
		r.Get("/users", deps.Loja.List)
		r.Get("/users/{id}", deps.Loja.Get)
		r.Put("/users/{id}", deps.Loja.Update)
		r.Delete("/users/{id}", deps.Loja.Delete)
		r.Post("/login", deps.Loja.Login)

		r.Post("/users/{id}/carrinho", deps.Loja.AppendItem)
		r.Get("/users/{id}/carrinho", deps.Loja.ListItems)
		r.Delete("/users/{id}/carrinho/{index}", deps.Loja.RemoveItem)
	})

	// Blog (sem GET por id, como na API original)
	r.Route("/blog", func(r chi.Router) {
		r.Post("/users", deps.Blog.Register)
		r.Get("/users", deps.Blog.List)
		r.Put("/users/{id}", deps.Blog.Update)
		r.Delete("/users/{id}", deps.Blog.Delete)
		r.Post("/login", deps.Blog.Login)
	})

	r.Get("/healthz", healthHandler(deps.Store))
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	return r
}

func healthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				httperrors.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httperrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
