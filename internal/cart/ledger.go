// Package cart mantém o carrinho do usuário da loja: uma lista ordenada
// de payloads serializados em JSON, mutada sempre por reescrita da lista
// inteira.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
)

var (
	// ErrMissingItem indica append sem produto no corpo.
	ErrMissingItem = errors.New("produto é obrigatório")
	// ErrIndexOutOfRange indica índice de remoção fora de [0, len).
	ErrIndexOutOfRange = errors.New("índice inválido")
)

// Ledger opera o campo carrinho da coleção da loja. Como append e remoção
// leem o estado corrente e gravam a lista inteira de volta, as mutações de
// um mesmo usuário são serializadas por um lock por id; sem isso duas
// mutações sobrepostas perderiam uma atualização. O PUT de edição que
// sobrescreve o carrinho por inteiro continua fora desse lock, como no
// sistema original.
type Ledger struct {
	users store.Collection[*domain.LojaUser]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLedger(users store.Collection[*domain.LojaUser]) *Ledger {
	return &Ledger{users: users, locks: make(map[string]*sync.Mutex)}
}

func (l *Ledger) userLock(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// Append serializa o item e o acrescenta ao fim do carrinho. Devolve a
// lista atualizada como armazenada.
func (l *Ledger) Append(ctx context.Context, userID string, item any) ([]string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("cart.Append"), logger.UserID(userID))

	if item == nil {
		return nil, ErrMissingItem
	}
	encoded, err := json.Marshal(item)
	if err != nil {
		return nil, ErrMissingItem
	}

	m := l.userLock(userID)
	m.Lock()
	defer m.Unlock()

	u, err := l.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := append(append([]string{}, u.Carrinho...), string(encoded))
	if _, err := l.users.Update(ctx, userID, map[string]any{"carrinho": updated}); err != nil {
		return nil, err
	}

	log.Info("produto adicionado", logger.Count(len(updated)))
	return updated, nil
}

// List materializa o carrinho na ordem armazenada, decodificando cada
// posição com fallback para a string crua.
func (l *Ledger) List(ctx context.Context, userID string) ([]Entry, error) {
	u, err := l.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(u.Carrinho))
	for _, raw := range u.Carrinho {
		entries = append(entries, DecodeEntry(raw))
	}
	return entries, nil
}

// RemoveAt remove exatamente a posição index, deslocando o restante. O
// índice precisa estar em [0, len); fora disso nada é mutado.
func (l *Ledger) RemoveAt(ctx context.Context, userID string, index int) ([]string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("cart.RemoveAt"), logger.UserID(userID))

	m := l.userLock(userID)
	m.Lock()
	defer m.Unlock()

	u, err := l.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(u.Carrinho) {
		return nil, ErrIndexOutOfRange
	}

	updated := append(append([]string{}, u.Carrinho[:index]...), u.Carrinho[index+1:]...)
	if _, err := l.users.Update(ctx, userID, map[string]any{"carrinho": updated}); err != nil {
		return nil, err
	}

	log.Info("produto removido", logger.Int("index", index), logger.Count(len(updated)))
	return updated, nil
}
