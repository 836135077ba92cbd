package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func TestFindStore(t *testing.T) {
	ctx := context.Background()

	t.Run("encontrada", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT code, name, active FROM stores WHERE code = $1")).
			WithArgs("001").
			WillReturnRows(sqlmock.NewRows([]string{"code", "name", "active"}).AddRow("001", "Loja 001", true))

		store, err := NewRepository(db).FindStore(ctx, "001")
		require.NoError(t, err)
		assert.Equal(t, &domain.Store{Code: "001", Name: "Loja 001", Active: true}, store)
	})

	t.Run("ausente", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("FROM stores").WithArgs("002").WillReturnError(sql.ErrNoRows)

		store, err := NewRepository(db).FindStore(ctx, "002")
		require.NoError(t, err)
		assert.Nil(t, store)
	})
}

func TestCreateIgnoraConflito(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	repo := NewRepository(db)

	insert := regexp.QuoteMeta("INSERT INTO product_groups (code,description,active) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING")
	mock.ExpectExec(insert).WithArgs("0001", "GRUPO PADRÃO", true).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).WithArgs("0001", "GRUPO PADRÃO", true).WillReturnResult(sqlmock.NewResult(0, 0))

	group := &domain.ProductGroup{Code: "0001", Description: "GRUPO PADRÃO", Active: true}

	created, err := repo.CreateGroup(ctx, group)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateGroup(ctx, group)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestErroDoBancoLevaCodigo(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO products").
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	_, err := NewRepository(db).CreateProduct(context.Background(), &domain.Product{Code: "000123", GroupCode: "9999"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code: 23503")

	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
}

func TestFindSalespersonComLojaNula(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM salespeople WHERE code").
		WithArgs("005").
		WillReturnRows(sqlmock.NewRows([]string{"code", "name", "store_code", "active"}).AddRow("005", "JOÃO", nil, true))

	sp, err := NewRepository(db).FindSalesperson(context.Background(), "005")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Nil(t, sp.StoreCode)
	assert.Equal(t, "JOÃO", sp.Name)
}

func TestUpdateSalesperson(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE salespeople SET name = $1, updated_at = NOW() WHERE code = $2")).
		WithArgs("CARLOS", "005").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewRepository(db).UpdateSalesperson(context.Background(), &domain.Salesperson{Code: "005", Name: "CARLOS"})
	require.NoError(t, err)
}

func clientRows() *sqlmock.Rows {
	return sqlmock.NewRows(clientColumns)
}

func TestFindClientByTaxID(t *testing.T) {
	db, mock := newMock(t)
	createdAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM clients WHERE tax_id LIKE \$1 ORDER BY \(tax_id = \$2\) DESC, id LIMIT 1`).
		WithArgs("%12345678000199%", "12345678000199").
		WillReturnRows(clientRows().AddRow(
			int64(7), "1234567800", nil, "ACME LTDA", "12345678000199", "cnpj", "rascunho",
			"001", "005", nil, "SP", createdAt,
		))

	client, err := NewRepository(db).FindClientByTaxID(context.Background(), "12345678000199")
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.Equal(t, int64(7), client.ID)
	assert.Equal(t, "1234567800", client.Code)
	assert.True(t, client.IsPrincipal())
	assert.Equal(t, domain.TaxIDKindCNPJ, *client.TaxIDKind)
	assert.Equal(t, domain.ClientStatusDraft, client.Status)
	assert.Nil(t, client.SalespersonName)
	assert.Equal(t, createdAt, client.CreatedAt)
}

func TestFindClientByName(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE UPPER(TRIM(name)) = UPPER($1) ORDER BY id LIMIT 1")).
		WithArgs("José da Silva").
		WillReturnRows(clientRows())

	client, err := NewRepository(db).FindClientByName(context.Background(), "José da Silva")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestLastClientCodeWithPrefix(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT code FROM clients WHERE code ~ $1 ORDER BY code DESC LIMIT 1")).
		WithArgs("^NJDS[0-9]+$").
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("NJDS000041"))

	code, err := NewRepository(db).LastClientCodeWithPrefix(context.Background(), "NJDS")
	require.NoError(t, err)
	assert.Equal(t, "NJDS000041", code)
}

func TestCreateClient(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	repo := NewRepository(db)

	taxID := "12345678000199"
	kind := domain.TaxIDKindCNPJ
	client := &domain.Client{Code: "1234567800", Name: "ACME LTDA", TaxID: &taxID, TaxIDKind: &kind, Status: domain.ClientStatusDraft}
	now := time.Now().UTC()

	insert := `INSERT INTO clients .* ON CONFLICT \(code\) DO NOTHING RETURNING id, created_at`
	mock.ExpectQuery(insert).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))
	mock.ExpectQuery(insert).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	created, err := repo.CreateClient(ctx, client)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(10), client.ID)
	assert.Equal(t, now, client.CreatedAt)

	created, err = repo.CreateClient(ctx, &domain.Client{Code: "1234567800", Status: domain.ClientStatusDraft})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestInsertSale(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	repo := NewRepository(db)

	sale := &domain.Sale{
		StoreCode:     "001",
		ProductCode:   "000123",
		ClientCode:    "1234567800",
		Quantity:      decimal.NewFromInt(10),
		TotalValue:    decimal.NewFromInt(100),
		InvoiceNumber: "555",
		OriginSystem:  domain.OriginSystemBI,
	}
	sale.SetSaleDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	insert := `INSERT INTO sales .* ON CONFLICT ON CONSTRAINT sales_dedup_key DO NOTHING RETURNING id`
	mock.ExpectQuery(insert).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(insert).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	inserted, err := repo.InsertSale(ctx, sale)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(1), sale.ID)

	inserted, err = repo.InsertSale(ctx, sale)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestDeleteAllSales(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sales")).WillReturnResult(sqlmock.NewResult(0, 42))

	n, err := NewRepository(db).DeleteAllSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db, mock := newMock(t)
		uow := NewUnitOfWork(&postgres.Connection{DB: db})

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM sales").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		tx, err := uow.Begin(ctx)
		require.NoError(t, err)
		n, err := tx.DeleteAllSales(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		require.NoError(t, tx.Commit())
	})

	t.Run("rollback", func(t *testing.T) {
		db, mock := newMock(t)
		uow := NewUnitOfWork(&postgres.Connection{DB: db})

		mock.ExpectBegin()
		mock.ExpectQuery("FROM stores").WillReturnError(errors.New("conexão perdida"))
		mock.ExpectRollback()

		tx, err := uow.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.FindStore(ctx, "001")
		require.Error(t, err)
		require.NoError(t, tx.Rollback())
	})
}
