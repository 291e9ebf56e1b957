package accounts

import (
	"context"
	"errors"

	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
)

// ErrInvalidCredentials cobre tanto conta inexistente quanto senha errada;
// a resposta não distingue os dois casos.
var ErrInvalidCredentials = errors.New("nome ou senha inválidos")

// Identity é a projeção mínima devolvida no login. Nunca carrega a senha.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Comparer decide se a senha fornecida confere com a armazenada. O
// contrato atual é igualdade direta sobre texto puro (fraqueza conhecida,
// herdada do sistema original); trocar por uma comparação com hash não
// muda a interface pública.
type Comparer func(stored, supplied string) bool

// PlainCompare é o Comparer padrão: igualdade byte a byte.
func PlainCompare(stored, supplied string) bool { return stored == supplied }

// Verifier faz a checagem de login de uma coleção.
type Verifier[E store.Entity] struct {
	col     store.Collection[E]
	domain  string
	compare Comparer
}

// NewVerifier cria um verifier com comparação em texto puro.
func NewVerifier[E store.Entity](domain string, col store.Collection[E]) *Verifier[E] {
	return &Verifier[E]{col: col, domain: domain, compare: PlainCompare}
}

// WithComparer substitui a estratégia de comparação de senha.
func (v *Verifier[E]) WithComparer(c Comparer) *Verifier[E] {
	v.compare = c
	return v
}

// Login busca a conta pelo name e compara a senha.
func (v *Verifier[E]) Login(ctx context.Context, name, password string) (Identity, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Domain(v.domain), logger.Op("Login"))

	if name == "" || password == "" {
		return Identity{}, ErrMissingFields
	}

	e, err := v.col.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("conta inexistente")
			return Identity{}, ErrInvalidCredentials
		}
		log.Error("lookup failed", logger.Err(err))
		return Identity{}, err
	}

	if !v.compare(e.EntityPassword(), password) {
		log.Debug("senha não confere", logger.UserID(e.EntityID()))
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{ID: e.EntityID(), Name: e.EntityName()}, nil
}
