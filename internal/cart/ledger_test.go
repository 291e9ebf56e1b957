package cart_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfardini/multiconta/internal/cart"
	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/store"
	"github.com/mfardini/multiconta/internal/store/memory"
)

func newLedger(t *testing.T, carrinho ...string) (*cart.Ledger, string) {
	t.Helper()
	col := memory.NewLoja()
	u := &domain.LojaUser{Name: "ana", Password: "secret1", Carrinho: carrinho}
	require.NoError(t, col.Create(context.Background(), u))
	return cart.NewLedger(col), u.ID
}

func TestAppend_RoundTrip(t *testing.T) {
	ledger, id := newLedger(t)
	ctx := context.Background()

	updated, err := ledger.Append(ctx, id, map[string]any{"a": float64(1)})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	entries, err := ledger.List(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	v, ok := entries[0].Value()
	require.True(t, ok, "item bem formado tem que decodificar")
	assert.Equal(t, map[string]any{"a": float64(1)}, v)
}

func TestAppend_PreservesOrder(t *testing.T) {
	ledger, id := newLedger(t)
	ctx := context.Background()

	_, err := ledger.Append(ctx, id, "primeiro")
	require.NoError(t, err)
	updated, err := ledger.Append(ctx, id, "segundo")
	require.NoError(t, err)

	require.Equal(t, []string{`"primeiro"`, `"segundo"`}, updated)
}

func TestAppend_MissingItem(t *testing.T) {
	ledger, id := newLedger(t)

	_, err := ledger.Append(context.Background(), id, nil)
	require.ErrorIs(t, err, cart.ErrMissingItem)
}

func TestAppend_UnknownUser(t *testing.T) {
	ledger, _ := newLedger(t)

	_, err := ledger.Append(context.Background(), "nao-existe", "x")
	require.ErrorIs(t, err, store.ErrNotFound)
}

// Uma entrada malformada volta crua, sem derrubar o resto da listagem.
func TestList_TolerantDecode(t *testing.T) {
	ledger, id := newLedger(t, `{"sku":"X1","qty":2}`, `{malformado`)

	entries, err := ledger.List(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	v, ok := entries[0].Value()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"sku": "X1", "qty": float64(2)}, v)

	_, ok = entries[1].Value()
	require.False(t, ok)
	assert.Equal(t, `{malformado`, entries[1].Raw())
}

func TestList_SerializesDecodedOrRaw(t *testing.T) {
	ledger, id := newLedger(t, `{"sku":"X1"}`, `nao-json{`)

	entries, err := ledger.List(context.Background(), id)
	require.NoError(t, err)

	b, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"sku":"X1"}, "nao-json{"]`, string(b))
}

func TestRemoveAt_Boundary(t *testing.T) {
	ledger, id := newLedger(t, `"a"`, `"b"`)
	ctx := context.Background()

	// um além do fim: rejeita sem mutar
	_, err := ledger.RemoveAt(ctx, id, 2)
	require.ErrorIs(t, err, cart.ErrIndexOutOfRange)

	_, err = ledger.RemoveAt(ctx, id, -1)
	require.ErrorIs(t, err, cart.ErrIndexOutOfRange)

	entries, err := ledger.List(ctx, id)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "carrinho não pode mudar em índice inválido")
}

func TestRemoveAt_ShiftsRemaining(t *testing.T) {
	ledger, id := newLedger(t, `"a"`, `"b"`, `"c"`)

	updated, err := ledger.RemoveAt(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{`"b"`, `"c"`}, updated)
}

func TestRemoveAt_UnknownUser(t *testing.T) {
	ledger, _ := newLedger(t)

	_, err := ledger.RemoveAt(context.Background(), "nao-existe", 0)
	require.ErrorIs(t, err, store.ErrNotFound)
}
