// Package pg implementa as coleções sobre PostgreSQL via pgxpool.
package pg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/observability/logger"
	"github.com/mfardini/multiconta/internal/store"
	migrations "github.com/mfardini/multiconta/migrations/postgres"
)

// Config agrupa tuning opcional do pool.
type Config struct {
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
}

type Store struct{ pool *pgxpool.Pool }

func New(ctx context.Context, dsn string, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 8
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	// Startup não bloqueante: o processo sobe mesmo com o banco
	// temporariamente fora.
	if err := pool.Ping(ctx); err != nil {
		logger.L().Warn("pg pool startup ping failed", logger.Err(err))
	} else {
		logger.L().Info("pg pool ready", logger.Int("max_conns", int(pcfg.MaxConns)))
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close fecha o pool subjacente (idempotente).
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Migrate aplica os arquivos SQL embarcados, em ordem lexicográfica.
func (s *Store) Migrate(ctx context.Context) error {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)
	for _, name := range entries {
		b, err := migrations.FS.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}
	return nil
}

// Imobiliaria devolve a coleção de usuários da imobiliária.
func (s *Store) Imobiliaria() store.Collection[*domain.ImobiliariaUser] {
	return &imobiliariaCollection{pool: s.pool}
}

// Loja devolve a coleção de usuários da loja.
func (s *Store) Loja() store.Collection[*domain.LojaUser] {
	return &lojaCollection{pool: s.pool}
}

// Blog devolve a coleção de usuários do blog.
func (s *Store) Blog() store.Collection[*domain.BlogUser] {
	return &blogCollection{pool: s.pool}
}

// mapErr traduz erros do driver para os sentinelas de store.
// 23505 = unique_violation.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return store.ErrConflict
	}
	return err
}

// buildSet monta a cláusula SET a partir do map de campos, em ordem
// estável. As chaves já são nomes de coluna validados pelo chamador.
func buildSet(fields map[string]any, firstArg int) (string, []any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = $%d", pgIdentifier(k), firstArg+i))
		args = append(args, fields[k])
	}
	return strings.Join(parts, ", "), args
}

// pgIdentifier sanitiza um identificador simples para uso em SQL dinâmico.
func pgIdentifier(s string) string {
	return "\"" + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "\"", "") + "\""
}
