package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

func TestRollbackDesfazEscritas(t *testing.T) {
	ctx := context.Background()
	store := New()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	ok, err := tx.CreateStore(ctx, &domain.Store{Code: "001"})
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, tx.Commit())

	tx, err = store.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.CreateStore(ctx, &domain.Store{Code: "002"})
	require.NoError(t, err)
	_, err = tx.CreateSalesperson(ctx, &domain.Salesperson{Code: "005", Name: domain.DefaultSalespersonName})
	require.NoError(t, err)
	client := &domain.Client{Code: "1234567800", Name: "ACME"}
	_, err = tx.CreateClient(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)

	sale := &domain.Sale{ClientCode: "1234567800", TotalValue: decimal.NewFromInt(1)}
	sale.SetSaleDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err = tx.InsertSale(ctx, sale)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())
	require.NoError(t, tx.Rollback(), "rollback repetido não falha")

	snap := store.Snapshot()
	assert.Len(t, snap.Stores, 1)
	assert.Empty(t, snap.Salespeople)
	assert.Empty(t, snap.Clients)
	assert.Empty(t, snap.Sales)

	tx, err = store.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	again := &domain.Client{Code: "1234567800", Name: "ACME"}
	_, err = tx.CreateClient(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.ID, "a sequência também volta")
}

func TestChavesUnicas(t *testing.T) {
	ctx := context.Background()
	store := New()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	ok, err := tx.CreateProduct(ctx, &domain.Product{Code: "000123"})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = tx.CreateProduct(ctx, &domain.Product{Code: "000123"})
	require.NoError(t, err)
	assert.False(t, ok)

	sale := &domain.Sale{ClientCode: "1", ProductCode: "000123", InvoiceNumber: "9", TotalValue: decimal.RequireFromString("100.00")}
	sale.SetSaleDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ok, err = tx.InsertSale(ctx, sale)
	require.NoError(t, err)
	assert.True(t, ok)

	same := *sale
	same.TotalValue = decimal.NewFromInt(100)
	ok, err = tx.InsertSale(ctx, &same)
	require.NoError(t, err)
	assert.False(t, ok, "100 e 100.00 são a mesma chave")
}

func TestBuscaDeClientes(t *testing.T) {
	ctx := context.Background()
	store := New()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	partial := "0012345678000199"
	exact := "12345678000199"
	_, _ = tx.CreateClient(ctx, &domain.Client{Code: "A", Name: "Primeiro", TaxID: &partial})
	_, _ = tx.CreateClient(ctx, &domain.Client{Code: "B", Name: "José da Silva", TaxID: &exact})
	_, _ = tx.CreateClient(ctx, &domain.Client{Code: "NJDS000009", Name: "José da Silva"})
	_, _ = tx.CreateClient(ctx, &domain.Client{Code: "NJDS000010", Name: "Outro"})
	_, _ = tx.CreateClient(ctx, &domain.Client{Code: "NJDSX", Name: "Outro"})

	c, err := tx.FindClientByTaxID(ctx, exact)
	require.NoError(t, err)
	assert.Equal(t, "B", c.Code)

	c, err = tx.FindClientByTaxID(ctx, "345678")
	require.NoError(t, err)
	assert.Equal(t, "A", c.Code, "sem exato vale o de menor id")

	c, err = tx.FindClientByName(ctx, "JOSÉ DA SILVA")
	require.NoError(t, err)
	assert.Equal(t, "B", c.Code)

	last, err := tx.LastClientCodeWithPrefix(ctx, "NJDS")
	require.NoError(t, err)
	assert.Equal(t, "NJDS000010", last)
}

func TestRuns(t *testing.T) {
	ctx := context.Background()
	store := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveRun(ctx, &domain.ImportRunReport{RunID: id, StartedAt: base.AddDate(0, 0, i)}))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].RunID)
	assert.Equal(t, "b", runs[1].RunID)

	n, err := store.DeleteRunsBefore(ctx, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	run, err := store.GetRun(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestSaveRunPreservaExecucaoFinalizada(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.SaveRun(ctx, &domain.ImportRunReport{RunID: "a", Status: domain.ImportRunRunning}))
	require.NoError(t, store.SaveRun(ctx, &domain.ImportRunReport{RunID: "a", Status: domain.ImportRunCompleted, RowsProcessed: 3}))
	require.NoError(t, store.SaveRun(ctx, &domain.ImportRunReport{RunID: "a", Status: domain.ImportRunRunning}))

	run, err := store.GetRun(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, domain.ImportRunCompleted, run.Status)
	assert.Equal(t, 3, run.RowsProcessed)
}
