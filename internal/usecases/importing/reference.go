package importing

import (
	"strings"

	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// ProductRef é o que a planilha de produtos informa sobre um código
type ProductRef struct {
	Code             string
	Description      string
	GroupCode        string
	ManufacturerCode string
}

// ReferenceIndex consulta as planilhas auxiliares por código. Não valida nada:
// entradas com código ilegível são ignoradas e buscas em tabelas ausentes falham
type ReferenceIndex struct {
	products      map[string]ProductRef
	groups        map[string]string
	manufacturers map[string]string
}

func NewReferenceIndex(products, classes, manufacturers *Table) *ReferenceIndex {
	ix := &ReferenceIndex{
		products:      make(map[string]ProductRef),
		groups:        make(map[string]string),
		manufacturers: make(map[string]string),
	}

	if products != nil {
		for row := range products.Rows() {
			code, err := NormalizeCode(row.Get(ColProductCode), domain.ProductCodeWidth)
			if err != nil {
				continue
			}
			ref := ProductRef{Code: code, Description: row.Get(ColDescription)}
			if g, err := NormalizeCode(row.Get(ColClassCode), domain.GroupCodeWidth); err == nil {
				ref.GroupCode = g
			}
			if m, err := NormalizeManufacturerCode(row.Get(ColManufacturer)); err == nil {
				ref.ManufacturerCode = m
			}
			ix.products[code] = ref
		}
	}

	if classes != nil {
		for row := range classes.Rows() {
			if code, err := NormalizeCode(row.Get(ColClassCode), domain.GroupCodeWidth); err == nil {
				ix.groups[code] = row.Get(ColDescription)
			}
		}
	}

	if manufacturers != nil {
		for row := range manufacturers.Rows() {
			if code, err := NormalizeManufacturerCode(row.Get(ColManufacturer)); err == nil {
				ix.manufacturers[code] = row.Get(ColDescription)
			}
		}
	}

	return ix
}

func (ix *ReferenceIndex) Product(code string) (ProductRef, bool) {
	if ix == nil {
		return ProductRef{}, false
	}
	ref, ok := ix.products[code]
	return ref, ok
}

func (ix *ReferenceIndex) Group(code string) (string, bool) {
	if ix == nil {
		return "", false
	}
	descr, ok := ix.groups[code]
	return descr, ok && descr != ""
}

func (ix *ReferenceIndex) Manufacturer(code string) (string, bool) {
	if ix == nil {
		return "", false
	}
	descr, ok := ix.manufacturers[code]
	return descr, ok && descr != ""
}

// Sizes retorna a quantidade de produtos, classes e fabricantes indexados
func (ix *ReferenceIndex) Sizes() (products, groups, manufacturers int) {
	if ix == nil {
		return 0, 0, 0
	}
	return len(ix.products), len(ix.groups), len(ix.manufacturers)
}

// DetectAuxiliarySheets identifica pelas abas do próprio extrato as tabelas auxiliares
func DetectAuxiliarySheets(sheets []*Table) (products, classes, manufacturers *Table) {
	for _, sheet := range sheets {
		name := strings.ToUpper(sheet.Name)
		switch {
		case strings.Contains(name, "CLASS") && classes == nil:
			classes = sheet
		case strings.Contains(name, "PRODUTO") && products == nil:
			products = sheet
		case strings.Contains(name, "FABR") && manufacturers == nil:
			manufacturers = sheet
		}
	}
	return products, classes, manufacturers
}
