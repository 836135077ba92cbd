package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// InsertSale devolve false quando a chave (data, cliente, produto, NF, total) já existe
func (r *Repository) InsertSale(ctx context.Context, sale *domain.Sale) (bool, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns(
			"store_code", "product_code", "group_code", "manufacturer_code", "client_code",
			"salesperson_code", "quantity", "total_value", "invoice_number", "invoice_series",
			"state", "sale_date", "year", "month", "year_month", "origin_system", "run_id", "imported_at",
		).
		Values(
			sale.StoreCode, sale.ProductCode, sale.GroupCode, sale.ManufacturerCode, sale.ClientCode,
			sale.SalespersonCode, sale.Quantity, sale.TotalValue, sale.InvoiceNumber, sale.InvoiceSeries,
			sale.State, sale.SaleDate.Format("2006-01-02"), sale.Year, sale.Month, sale.YearMonth,
			sale.OriginSystem, sale.RunID, sale.ImportedAt,
		).
		Suffix("ON CONFLICT ON CONSTRAINT " + salesDedupConstraint + " DO NOTHING RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.q.QueryRowContext(ctx, query, args...).Scan(&sale.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbError(err)
	}
	return true, nil
}

func (r *Repository) DeleteAllSales(ctx context.Context) (int64, error) {
	query, args, err := squirrel.Delete(salesTable).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	return rowsAffected, nil
}
