package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const OriginSystemBI = "BI"

// Sale é uma linha de venda importada do BI (tabela vendas)
type Sale struct {
	ID               int64           `json:"id"`
	StoreCode        string          `json:"store_code"`
	ProductCode      string          `json:"product_code"`
	GroupCode        string          `json:"group_code"`
	ManufacturerCode string          `json:"manufacturer_code"`
	ClientCode       string          `json:"client_code"`
	SalespersonCode  string          `json:"salesperson_code"` // vendedor da nota, sem FK
	Quantity         decimal.Decimal `json:"quantity"`
	TotalValue       decimal.Decimal `json:"total_value"`
	InvoiceNumber    string          `json:"invoice_number"`
	InvoiceSeries    *string         `json:"invoice_series"`
	State            *string         `json:"state"`
	SaleDate         time.Time       `json:"sale_date"`
	Year             string          `json:"year"`
	Month            string          `json:"month"`
	YearMonth        string          `json:"year_month"`
	OriginSystem     string          `json:"origin_system"`
	RunID            string          `json:"run_id"`
	ImportedAt       time.Time       `json:"imported_at"`
}

// SetSaleDate grava a data e recalcula ano, mês e anomes
func (s *Sale) SetSaleDate(date time.Time) {
	y, m, d := date.Date()
	s.SaleDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	s.Year = fmt.Sprintf("%04d", y)
	s.Month = fmt.Sprintf("%02d", int(m))
	s.YearMonth = fmt.Sprintf("%04d%02d", y, int(m))
}

// CheckConsistency confere ano, mês e anomes contra a data e rejeita valores negativos
func (s *Sale) CheckConsistency() error {
	y, m, _ := s.SaleDate.Date()
	if s.Year != fmt.Sprintf("%04d", y) || s.Month != fmt.Sprintf("%02d", int(m)) || s.YearMonth != s.Year+s.Month {
		return fmt.Errorf("período inconsistente: data %s, ano %q, mês %q, anomes %q",
			s.SaleDate.Format(time.DateOnly), s.Year, s.Month, s.YearMonth)
	}
	if s.Quantity.IsNegative() || s.TotalValue.IsNegative() {
		return fmt.Errorf("quantidade %s ou total %s negativo", s.Quantity, s.TotalValue)
	}
	return nil
}

// SaleKey é a chave de deduplicação (data, cliente, produto, NF, valor total)
type SaleKey struct {
	SaleDate      time.Time
	ClientCode    string
	ProductCode   string
	InvoiceNumber string
	TotalValue    decimal.Decimal
}

func (s *Sale) Key() SaleKey {
	return SaleKey{
		SaleDate:      s.SaleDate,
		ClientCode:    s.ClientCode,
		ProductCode:   s.ProductCode,
		InvoiceNumber: s.InvoiceNumber,
		TotalValue:    s.TotalValue,
	}
}

// String é usada como chave de mapa no repositório em memória
func (k SaleKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		k.SaleDate.Format(time.DateOnly),
		k.ClientCode,
		k.ProductCode,
		k.InvoiceNumber,
		k.TotalValue.StringFixed(2),
	)
}
