package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfardini/multiconta/internal/domain"
	"github.com/mfardini/multiconta/internal/store"
)

// ───────────────────────── imobiliária ─────────────────────────

type imobiliariaCollection struct{ pool *pgxpool.Pool }

func (c *imobiliariaCollection) Create(ctx context.Context, u *domain.ImobiliariaUser) error {
	u.ID = uuid.NewString()
	_, err := c.pool.Exec(ctx,
		`INSERT INTO imobiliaria_user (id, name, password, favoritos) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Name, u.Password, u.Favoritos)
	return mapErr(err)
}

func (c *imobiliariaCollection) List(ctx context.Context) ([]*domain.ImobiliariaUser, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, name, password, favoritos FROM imobiliaria_user`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	users := []*domain.ImobiliariaUser{}
	for rows.Next() {
		u := &domain.ImobiliariaUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Password, &u.Favoritos); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (c *imobiliariaCollection) Get(ctx context.Context, id string) (*domain.ImobiliariaUser, error) {
	return c.scanOne(ctx, `SELECT id, name, password, favoritos FROM imobiliaria_user WHERE id = $1`, id)
}

func (c *imobiliariaCollection) GetByName(ctx context.Context, name string) (*domain.ImobiliariaUser, error) {
	return c.scanOne(ctx, `SELECT id, name, password, favoritos FROM imobiliaria_user WHERE name = $1`, name)
}

func (c *imobiliariaCollection) scanOne(ctx context.Context, q string, arg any) (*domain.ImobiliariaUser, error) {
	u := &domain.ImobiliariaUser{}
	err := c.pool.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Name, &u.Password, &u.Favoritos)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (c *imobiliariaCollection) Update(ctx context.Context, id string, fields map[string]any) (*domain.ImobiliariaUser, error) {
	if len(fields) == 0 {
		return c.Get(ctx, id)
	}
	set, args := buildSet(fields, 2)
	q := fmt.Sprintf(`UPDATE imobiliaria_user SET %s WHERE id = $1 RETURNING id, name, password, favoritos`, set)

	u := &domain.ImobiliariaUser{}
	err := c.pool.QueryRow(ctx, q, append([]any{id}, args...)...).
		Scan(&u.ID, &u.Name, &u.Password, &u.Favoritos)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (c *imobiliariaCollection) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM imobiliaria_user WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ───────────────────────── loja ─────────────────────────

type lojaCollection struct{ pool *pgxpool.Pool }

func (c *lojaCollection) Create(ctx context.Context, u *domain.LojaUser) error {
	u.ID = uuid.NewString()
	_, err := c.pool.Exec(ctx,
		`INSERT INTO loja_user (id, name, password, endereco, carrinho, historico)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Name, u.Password, u.Endereco, u.Carrinho, u.Historico)
	return mapErr(err)
}

func (c *lojaCollection) List(ctx context.Context) ([]*domain.LojaUser, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT id, name, password, endereco, carrinho, historico FROM loja_user`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	users := []*domain.LojaUser{}
	for rows.Next() {
		u := &domain.LojaUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Password, &u.Endereco, &u.Carrinho, &u.Historico); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (c *lojaCollection) Get(ctx context.Context, id string) (*domain.LojaUser, error) {
	return c.scanOne(ctx,
		`SELECT id, name, password, endereco, carrinho, historico FROM loja_user WHERE id = $1`, id)
}

func (c *lojaCollection) GetByName(ctx context.Context, name string) (*domain.LojaUser, error) {
	return c.scanOne(ctx,
		`SELECT id, name, password, endereco, carrinho, historico FROM loja_user WHERE name = $1`, name)
}

func (c *lojaCollection) scanOne(ctx context.Context, q string, arg any) (*domain.LojaUser, error) {
	u := &domain.LojaUser{}
	err := c.pool.QueryRow(ctx, q, arg).
		Scan(&u.ID, &u.Name, &u.Password, &u.Endereco, &u.Carrinho, &u.Historico)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (c *lojaCollection) Update(ctx context.Context, id string, fields map[string]any) (*domain.LojaUser, error) {
	if len(fields) == 0 {
		return c.Get(ctx, id)
	}
	set, args := buildSet(fields, 2)
	q := fmt.Sprintf(
		`UPDATE loja_user SET %s WHERE id = $1 RETURNING id, name, password, endereco, carrinho, historico`, set)

	u := &domain.LojaUser{}
	err := c.pool.QueryRow(ctx, q, append([]any{id}, args...)...).
		Scan(&u.ID, &u.Name, &u.Password, &u.Endereco, &u.Carrinho, &u.Historico)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (c *lojaCollection) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM loja_user WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ───────────────────────── blog ─────────────────────────

type blogCollection struct{ pool *pgxpool.Pool }

func (c *blogCollection) Create(ctx context.Context, u *domain.BlogUser) error {
	u.ID = uuid.NewString()
	_, err := c.pool.Exec(ctx,
		`INSERT INTO blog_user (id, name, password, age) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Name, u.Password, u.Age)
	return mapErr(err)
}

func (c *blogCollection) List(ctx context.Context) ([]*domain.BlogUser, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, name, password, age FROM blog_user`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	users := []*domain.BlogUser{}
	for rows.Next() {
		u := &domain.BlogUser{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Password, &u.Age); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (c *blogCollection) Get(ctx context.Context, id string) (*domain.BlogUser, error) {
	return c.scanOne(ctx, `SELECT id, name, password, age FROM blog_user WHERE id = $1`, id)
}

func (c *blogCollection) GetByName(ctx context.Context, name string) (*domain.BlogUser, error) {
	return c.scanOne(ctx, `SELECT id, name, password, age FROM blog_user WHERE name = $1`, name)
}

func (c *blogCollection) scanOne(ctx context.Context, q string, arg any) (*domain.BlogUser, error) {
	u := &domain.BlogUser{}
	err := c.pool.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Name, &u.Password, &u.Age)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (c *blogCollection) Update(ctx context.Context, id string, fields map[string]any) (*domain.BlogUser, error) {
	if len(fields) == 0 {
		return c.Get(ctx, id)
	}
	set, args := buildSet(fields, 2)
	q := fmt.Sprintf(`UPDATE blog_user SET %s WHERE id = $1 RETURNING id, name, password, age`, set)

	u := &domain.BlogUser{}
	err := c.pool.QueryRow(ctx, q, append([]any{id}, args...)...).
		Scan(&u.ID, &u.Name, &u.Password, &u.Age)
	if err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (c *blogCollection) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM blog_user WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
