package importing

import (
	"context"
	"time"

	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// BuildSale monta a venda a partir da linha validada e das entidades resolvidas.
// O vendedor gravado é o da nota (CLIVEN), não o vendedor atual do cliente
func BuildSale(row *parsedRow, ents *ResolvedEntities, runID string, importedAt time.Time) *domain.Sale {
	sale := &domain.Sale{
		StoreCode:        ents.Store.Code,
		ProductCode:      ents.Product.Code,
		GroupCode:        ents.Product.GroupCode,
		ManufacturerCode: ents.Product.ManufacturerCode,
		ClientCode:       ents.Client.Code,
		SalespersonCode:  row.SalespersonOfRecord,
		Quantity:         row.Quantity,
		TotalValue:       row.Total,
		InvoiceNumber:    row.InvoiceNumber,
		OriginSystem:     domain.OriginSystemBI,
		RunID:            runID,
		ImportedAt:       importedAt,
	}
	sale.SetSaleDate(row.SaleDate)

	if row.InvoiceSeries != "" {
		series := row.InvoiceSeries
		sale.InvoiceSeries = &series
	}
	if row.State != "" {
		state := row.State
		sale.State = &state
	}

	return sale
}

// PersistSale grava a venda. false indica duplicata pela chave (data, cliente, produto, NF, total).
// Venda com período ou valores inconsistentes nem chega ao banco
func PersistSale(ctx context.Context, store SaleStore, sale *domain.Sale) (bool, error) {
	if err := sale.CheckConsistency(); err != nil {
		return false, err
	}
	return store.InsertSale(ctx, sale)
}
