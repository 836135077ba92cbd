package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

var clientColumns = []string{
	"id", "code", "master_code", "name", "tax_id", "tax_id_kind", "status",
	"store_code", "salesperson_code", "salesperson_name", "state", "created_at",
}

func selectClient() squirrel.SelectBuilder {
	return squirrel.Select(clientColumns...).From(clientsTable)
}

func (r *Repository) findClient(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Client, error) {
	var c domain.Client
	ok, err := r.queryOne(ctx, builder.Limit(1),
		&c.ID, &c.Code, &c.MasterCode, &c.Name, &c.TaxID, &c.TaxIDKind, &c.Status,
		&c.StoreCode, &c.SalespersonCode, &c.SalespersonName, &c.State, &c.CreatedAt,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindClientByCode(ctx context.Context, code string) (*domain.Client, error) {
	return r.findClient(ctx, selectClient().Where(squirrel.Eq{"code": code}))
}

// FindClientByTaxID aceita correspondência parcial, mas prefere o documento exato
func (r *Repository) FindClientByTaxID(ctx context.Context, digits string) (*domain.Client, error) {
	return r.findClient(ctx, selectClient().
		Where(squirrel.Like{"tax_id": "%" + digits + "%"}).
		OrderByClause("(tax_id = ?) DESC", digits).
		OrderBy("id"),
	)
}

func (r *Repository) FindClientByName(ctx context.Context, name string) (*domain.Client, error) {
	return r.findClient(ctx, selectClient().
		Where(squirrel.Expr("UPPER(TRIM(name)) = UPPER(?)", name)).
		OrderBy("id"),
	)
}

// LastClientCodeWithPrefix devolve o maior código sintético do prefixo, ou "" se não houver
func (r *Repository) LastClientCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	var code string
	ok, err := r.queryOne(ctx,
		squirrel.
			Select("code").
			From(clientsTable).
			Where(squirrel.Expr("code ~ ?", "^"+prefix+"[0-9]+$")).
			OrderBy("code DESC").
			Limit(1),
		&code,
	)
	if err != nil || !ok {
		return "", err
	}
	return code, nil
}

// CreateClient devolve false quando o código já está em uso
func (r *Repository) CreateClient(ctx context.Context, c *domain.Client) (bool, error) {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns(
			"code", "master_code", "name", "tax_id", "tax_id_kind", "status",
			"store_code", "salesperson_code", "salesperson_name", "state",
		).
		Values(
			c.Code, c.MasterCode, c.Name, c.TaxID, c.TaxIDKind, c.Status,
			c.StoreCode, c.SalespersonCode, c.SalespersonName, c.State,
		).
		Suffix("ON CONFLICT (code) DO NOTHING RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.q.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbError(err)
	}
	return true, nil
}
