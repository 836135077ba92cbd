package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ativo"
	ClientStatusInactive ClientStatus = "inativo"
	ClientStatusDraft    ClientStatus = "rascunho"
)

type TaxIDKind string

const (
	TaxIDKindCPF  TaxIDKind = "cpf"
	TaxIDKindCNPJ TaxIDKind = "cnpj"
)

const (
	CPFLength      = 11
	CNPJLength     = 14
	CNPJRootLength = 8
	ClientCodeSize = 10
)

type Client struct {
	ID              int64        `json:"id"`
	Code            string       `json:"code"`
	MasterCode      *string      `json:"master_code"`
	Name            string       `json:"name"`
	TaxID           *string      `json:"tax_id"`
	TaxIDKind       *TaxIDKind   `json:"tax_id_kind"`
	Status          ClientStatus `json:"status"`
	StoreCode       *string      `json:"store_code"`
	SalespersonCode *string      `json:"salesperson_code"`
	SalespersonName *string      `json:"salesperson_name"`
	State           *string      `json:"state"`
	CreatedAt       time.Time    `json:"created_at"`
}

// IsPrincipal retorna true quando o cliente não é sub-cliente de outro
func (c *Client) IsPrincipal() bool {
	return c.MasterCode == nil || *c.MasterCode == ""
}

// PrincipalCode retorna o código do cliente principal da árvore
func (c *Client) PrincipalCode() string {
	if c.IsPrincipal() {
		return c.Code
	}
	return *c.MasterCode
}

// ClassifyTaxID define CPF ou CNPJ a partir do documento já normalizado
func ClassifyTaxID(digits string) TaxIDKind {
	if len(digits) == CNPJLength {
		return TaxIDKindCNPJ
	}
	return TaxIDKindCPF
}
