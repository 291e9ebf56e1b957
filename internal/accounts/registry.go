// Package accounts concentra o cadastro e o login das três coleções de
// usuários. A validação roda só na criação; edição grava os campos como
// vieram (assimetria herdada do contrato original, mantida de propósito).
package accounts

import (
	"context"
	"errors"

	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
)

// MinPasswordLen é o tamanho mínimo de senha exigido no cadastro.
const MinPasswordLen = 6

var (
	ErrMissingFields    = errors.New("nome e senha são obrigatórios")
	ErrPasswordTooShort = errors.New("senha menor que o mínimo")
	ErrNameTaken        = errors.New("nome de usuário já cadastrado")
)

// Registry expõe o CRUD de contas de uma coleção.
type Registry[E store.Entity] struct {
	col    store.Collection[E]
	domain string
}

// NewRegistry cria um registry sobre a coleção dada. domain aparece nos
// logs (imobiliaria, loja, blog).
func NewRegistry[E store.Entity](domain string, col store.Collection[E]) *Registry[E] {
	return &Registry[E]{col: col, domain: domain}
}

// Register valida e cria a conta. A entidade chega com os defaults do
// domínio já aplicados pelo chamador e sai com o id atribuído pelo store.
func (r *Registry[E]) Register(ctx context.Context, e E) error {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Domain(r.domain), logger.Op("Register"))

	if e.EntityName() == "" || e.EntityPassword() == "" {
		return ErrMissingFields
	}
	if len(e.EntityPassword()) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	if err := r.col.Create(ctx, e); err != nil {
		if errors.Is(err, store.ErrConflict) {
			log.Debug("nome já cadastrado")
			return ErrNameTaken
		}
		log.Error("create failed", logger.Err(err))
		return err
	}

	log.Info("conta criada", logger.UserID(e.EntityID()))
	return nil
}

// List devolve todas as contas, na ordem que o store retornar.
func (r *Registry[E]) List(ctx context.Context) ([]E, error) {
	return r.col.List(ctx)
}

// Get busca uma conta por id. store.ErrNotFound quando não existe.
func (r *Registry[E]) Get(ctx context.Context, id string) (E, error) {
	return r.col.Get(ctx, id)
}

// Update grava os campos dados literalmente, sem revalidar senha nem
// unicidade. Campos de lista substituem o valor inteiro.
func (r *Registry[E]) Update(ctx context.Context, id string, fields map[string]any) (E, error) {
	return r.col.Update(ctx, id, fields)
}

// Remove apaga a conta por id.
func (r *Registry[E]) Remove(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}
