package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
)

const (
	storesTable        = "stores"
	salespeopleTable   = "salespeople"
	manufacturersTable = "manufacturers"
	groupsTable        = "product_groups"
	productsTable      = "products"
	clientsTable       = "clients"
	salesTable         = "sales"
	importRunsTable    = "import_runs"

	salesDedupConstraint = "sales_dedup_key"
)

// Repository implementa o cadastro e as vendas sobre qualquer Queryer.
// Dentro de uma transação, conflitos de chave usam ON CONFLICT DO NOTHING
// para não abortar a transação do Postgres
type Repository struct {
	q postgres.Queryer
}

var _ importing.Store = (*Repository)(nil)

func NewRepository(q postgres.Queryer) *Repository {
	return &Repository{q: q}
}

func dbError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

// queryOne devolve false quando a consulta não encontra linha
func (r *Repository) queryOne(ctx context.Context, builder squirrel.SelectBuilder, dest ...interface{}) (bool, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.q.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbError(err)
	}
	return true, nil
}

// insertIgnoringConflict devolve false quando a chave já existia
func (r *Repository) insertIgnoringConflict(ctx context.Context, builder squirrel.InsertBuilder) (bool, error) {
	query, args, err := builder.
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, dbError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	return rowsAffected == 1, nil
}
