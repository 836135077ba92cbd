package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
)

// UnitOfWork abre uma transação do Postgres por unidade de trabalho do importador
type UnitOfWork struct {
	conn *postgres.Connection
}

var _ importing.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(conn *postgres.Connection) *UnitOfWork {
	return &UnitOfWork{conn: conn}
}

func (u *UnitOfWork) Begin(ctx context.Context) (importing.Tx, error) {
	tx, err := u.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}
	return &txRepository{Repository: NewRepository(tx), tx: tx}, nil
}

type txRepository struct {
	*Repository
	tx *sql.Tx
}

func (t *txRepository) Commit() error {
	return t.tx.Commit()
}

func (t *txRepository) Rollback() error {
	return t.tx.Rollback()
}
