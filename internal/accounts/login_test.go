package accounts_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfardini/multiconta/internal/accounts"
	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/store/memory"
)

func TestLogin_Success(t *testing.T) {
	col := memory.NewLoja()
	reg := accounts.NewRegistry("loja", col)
	ver := accounts.NewVerifier("loja", col)
	ctx := context.Background()

	u := &domain.LojaUser{Name: "ana", Password: "secret1"}
	require.NoError(t, reg.Register(ctx, u))

	id, err := ver.Login(ctx, "ana", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.ID)
	assert.Equal(t, "ana", id.Name)
}

func TestLogin_ProjectionNeverCarriesPassword(t *testing.T) {
	col := memory.NewLoja()
	reg := accounts.NewRegistry("loja", col)
	ver := accounts.NewVerifier("loja", col)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, &domain.LojaUser{Name: "ana", Password: "secret1"}))

	id, err := ver.Login(ctx, "ana", "secret1")
	require.NoError(t, err)
	assert.NotContains(t, []string{id.ID, id.Name}, "secret1")
}

func TestLogin_MissingFields(t *testing.T) {
	ver := accounts.NewVerifier("loja", memory.NewLoja())
	ctx := context.Background()

	_, err := ver.Login(ctx, "", "secret1")
	require.ErrorIs(t, err, accounts.ErrMissingFields)

	_, err = ver.Login(ctx, "ana", "")
	require.ErrorIs(t, err, accounts.ErrMissingFields)
}

// Conta inexistente e senha errada devolvem o mesmo erro: a resposta não
// pode vazar se o nome existe.
func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	col := memory.NewLoja()
	reg := accounts.NewRegistry("loja", col)
	ver := accounts.NewVerifier("loja", col)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, &domain.LojaUser{Name: "ana", Password: "secret1"}))

	_, errUnknown := ver.Login(ctx, "bob", "secret1")
	_, errWrongPass := ver.Login(ctx, "ana", "errada99")

	require.ErrorIs(t, errUnknown, accounts.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, accounts.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_CustomComparer(t *testing.T) {
	col := memory.NewLoja()
	reg := accounts.NewRegistry("loja", col)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, &domain.LojaUser{Name: "ana", Password: "SECRET1"}))

	ver := accounts.NewVerifier("loja", col).
		WithComparer(func(stored, supplied string) bool {
			return strings.EqualFold(stored, supplied)
		})

	_, err := ver.Login(ctx, "ana", "secret1")
	require.NoError(t, err)
}
