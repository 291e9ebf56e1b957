// Package memory implementa as coleções em memória, sobre go-cache.
// É o driver usado nos testes e em storage.driver "memory".
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/store"
)

// Collection guarda entidades clonadas por id. O clone em toda borda evita
// que o chamador mute estado compartilhado; o mutex cobre a janela
// checa-unicidade-e-insere.
type Collection[E store.Entity] struct {
	mu    sync.Mutex
	items *cache.Cache
	clone func(E) E
	apply func(E, map[string]any)
}

func newCollection[E store.Entity](clone func(E) E, apply func(E, map[string]any)) *Collection[E] {
	return &Collection[E]{
		items: cache.New(cache.NoExpiration, 0),
		clone: clone,
		apply: apply,
	}
}

func (c *Collection[E]) Create(ctx context.Context, e E) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items.Items() {
		if it.Object.(E).EntityName() == e.EntityName() {
			return store.ErrConflict
		}
	}
	e.SetEntityID(uuid.NewString())
	c.items.Set(e.EntityID(), c.clone(e), cache.NoExpiration)
	return nil
}

func (c *Collection[E]) List(ctx context.Context) ([]E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []E{}
	for _, it := range c.items.Items() {
		out = append(out, c.clone(it.Object.(E)))
	}
	return out, nil
}

func (c *Collection[E]) Get(ctx context.Context, id string) (E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero E
	v, ok := c.items.Get(id)
	if !ok {
		return zero, store.ErrNotFound
	}
	return c.clone(v.(E)), nil
}

func (c *Collection[E]) GetByName(ctx context.Context, name string) (E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero E
	for _, it := range c.items.Items() {
		if e := it.Object.(E); e.EntityName() == name {
			return c.clone(e), nil
		}
	}
	return zero, store.ErrNotFound
}

func (c *Collection[E]) Update(ctx context.Context, id string, fields map[string]any) (E, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero E
	v, ok := c.items.Get(id)
	if !ok {
		return zero, store.ErrNotFound
	}
	e := c.clone(v.(E))
	c.apply(e, fields)
	c.items.Set(id, e, cache.NoExpiration)
	return c.clone(e), nil
}

func (c *Collection[E]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items.Get(id); !ok {
		return store.ErrNotFound
	}
	c.items.Delete(id)
	return nil
}

// ───────────────────────── construtores por domínio ─────────────────────────

func NewImobiliaria() store.Collection[*domain.ImobiliariaUser] {
	return newCollection(
		func(u *domain.ImobiliariaUser) *domain.ImobiliariaUser {
			cp := *u
			cp.Favoritos = append([]string(nil), u.Favoritos...)
			return &cp
		},
		func(u *domain.ImobiliariaUser, fields map[string]any) {
			if v, ok := fields["name"]; ok {
				u.Name = v.(string)
			}
			if v, ok := fields["password"]; ok {
				u.Password = v.(string)
			}
			if v, ok := fields["favoritos"]; ok {
				u.Favoritos = v.([]string)
			}
		},
	)
}

func NewLoja() store.Collection[*domain.LojaUser] {
	return newCollection(
		func(u *domain.LojaUser) *domain.LojaUser {
			cp := *u
			cp.Carrinho = append([]string(nil), u.Carrinho...)
			cp.Historico = append([]string(nil), u.Historico...)
			if u.Endereco != nil {
				end := *u.Endereco
				cp.Endereco = &end
			}
			return &cp
		},
		func(u *domain.LojaUser, fields map[string]any) {
			if v, ok := fields["name"]; ok {
				u.Name = v.(string)
			}
			if v, ok := fields["password"]; ok {
				u.Password = v.(string)
			}
			if v, ok := fields["endereco"]; ok {
				u.Endereco = v.(*string)
			}
			if v, ok := fields["carrinho"]; ok {
				u.Carrinho = v.([]string)
			}
			if v, ok := fields["historico"]; ok {
				u.Historico = v.([]string)
			}
		},
	)
}

func NewBlog() store.Collection[*domain.BlogUser] {
	return newCollection(
		func(u *domain.BlogUser) *domain.BlogUser {
			cp := *u
			return &cp
		},
		func(u *domain.BlogUser, fields map[string]any) {
			if v, ok := fields["name"]; ok {
				u.Name = v.(string)
			}
			if v, ok := fields["password"]; ok {
				u.Password = v.(string)
			}
			if v, ok := fields["age"]; ok {
				u.Age = v.(int)
			}
		},
	)
}
