// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Larguras fixas dos códigos vindos do SysFat
const (
	StoreCodeWidth           = 3
	SalespersonCodeWidth     = 3
	GroupCodeWidth           = 4
	ProductCodeWidth         = 6
	ManufacturerCodeWidth    = 3
	ManufacturerCodeMaxWidth = 10
)

// Valores usados quando nem o BI nem as planilhas auxiliares trazem a informação
const (
	DefaultGroupCode               = "0001"
	DefaultGroupDescription        = "GRUPO PADRÃO"
	DefaultManufacturerCode        = "001"
	DefaultManufacturerDescription = "FABRICANTE PADRÃO"
	DefaultSalespersonName         = "VENDEDOR PADRÃO"
)

type EntityKind string

const (
	EntityStore        EntityKind = "store"
	EntitySalesperson  EntityKind = "salesperson"
	EntityManufacturer EntityKind = "manufacturer"
	EntityGroup        EntityKind = "product_group"
	EntityProduct      EntityKind = "product"
	EntityClient       EntityKind = "client"
)

// EntityKinds lista os tipos na ordem em que aparecem no relatório
var EntityKinds = []EntityKind{
	EntityClient,
	EntityStore,
	EntitySalesperson,
	EntityManufacturer,
	EntityGroup,
	EntityProduct,
}

type Store struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func StoreDefaultName(code string) string {
	return "Loja " + code
}

type Salesperson struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	StoreCode *string `json:"store_code"`
	Active    bool    `json:"active"`
}

// HasPlaceholderName indica que o vendedor foi criado sem o nome vindo do BI
func (s *Salesperson) HasPlaceholderName() bool {
	return s.Name == "" || s.Name == DefaultSalespersonName
}

type Manufacturer struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type ProductGroup struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type Product struct {
	Code             string `json:"code"`
	Description      string `json:"description"`
	GroupCode        string `json:"group_code"`
	ManufacturerCode string `json:"manufacturer_code"`
	Active           bool   `json:"active"`
}
