package importing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// parsedRow é a linha com códigos normalizados e valores convertidos
type parsedRow struct {
	Line int

	ClientName string
	TaxID      string // vazio quando o documento não é CPF nem CNPJ
	TaxDigits  string // dígitos brutos com 10 ou mais, origem do código do cliente
	State      string

	StoreCode           string
	SalespersonCode     string
	SalespersonName     string
	SalespersonOfRecord string

	ProductCode        string
	ProductDescription string
	ClassDescription   string
	GroupCode          string // opcional, vem de CODCLA
	ManufacturerCode   string // opcional, vem de CODFAB

	Quantity      decimal.Decimal
	Total         decimal.Decimal
	InvoiceNumber string
	InvoiceSeries string
	SaleDate      time.Time
}

func parseRow(row Row, defaultSalesperson string) (*parsedRow, error) {
	p := &parsedRow{
		Line:               row.Line,
		SalespersonName:    strings.TrimSpace(row.Get(ColSalespersonName)),
		ProductDescription: strings.TrimSpace(row.Get(ColProduct)),
		ClassDescription:   strings.TrimSpace(row.Get(ColClass)),
		InvoiceNumber:      cleanCell(row.Get(ColInvoice)),
		InvoiceSeries:      cleanCell(row.Get(ColInvoiceSeries)),
		State:              strings.ToUpper(strings.TrimSpace(row.Get(ColState))),
	}

	var err error
	if p.Quantity, err = ParseAmount(row.Get(ColQuantity)); err != nil {
		return nil, newRowError(row.Line, ColQuantity, describe(err))
	}
	if p.Total, err = ParseAmount(row.Get(ColTotal)); err != nil {
		return nil, newRowError(row.Line, ColTotal, describe(err))
	}
	if p.SaleDate, err = ParsePeriod(row.Get(ColPeriod), row.Get(ColYear), row.Get(ColMonth)); err != nil {
		return nil, newRowError(row.Line, ColPeriod, err.Error())
	}

	if p.StoreCode, err = NormalizeCode(row.Get(ColStore), domain.StoreCodeWidth); err != nil {
		return nil, newRowError(row.Line, ColStore, describe(err))
	}

	salesperson := cleanCell(row.Get(ColSalesperson))
	if salesperson == "" {
		salesperson = defaultSalesperson
	}
	if p.SalespersonCode, err = NormalizeCode(salesperson, domain.SalespersonCodeWidth); err != nil {
		return nil, newRowError(row.Line, ColSalesperson, describe(err))
	}

	p.SalespersonOfRecord = p.SalespersonCode
	if ofRecord := cleanCell(row.Get(ColSalespersonNF)); ofRecord != "" {
		if code, err := NormalizeCode(ofRecord, domain.SalespersonCodeWidth); err == nil {
			p.SalespersonOfRecord = code
		} else {
			p.SalespersonOfRecord = ofRecord
		}
	}

	if cleanCell(row.Get(ColProductCode)) == "" {
		return nil, newResolutionError(row.Line, ColProductCode, "produto sem código", nil)
	}
	if p.ProductCode, err = NormalizeCode(row.Get(ColProductCode), domain.ProductCodeWidth); err != nil {
		return nil, newRowError(row.Line, ColProductCode, describe(err))
	}

	if raw := cleanCell(row.Get(ColClassCode)); raw != "" {
		if p.GroupCode, err = NormalizeCode(raw, domain.GroupCodeWidth); err != nil {
			return nil, newRowError(row.Line, ColClassCode, describe(err))
		}
	}
	if raw := cleanCell(row.Get(ColManufacturer)); raw != "" {
		if p.ManufacturerCode, err = NormalizeManufacturerCode(raw); err != nil {
			return nil, newRowError(row.Line, ColManufacturer, describe(err))
		}
	}

	if digits := TaxIDDigits(row.Get(ColTaxID)); len(digits) >= domain.ClientCodeSize {
		p.TaxDigits = digits
		p.TaxID, _ = NormalizeTaxID(digits)
	}
	p.ClientName = StripLeadingTaxID(row.Get(ColClient), p.TaxDigits)

	return p, nil
}

func describe(err error) string {
	if err == errEmptyValue {
		return "campo obrigatório vazio"
	}
	return err.Error()
}
