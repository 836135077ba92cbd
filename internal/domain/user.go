package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso emitidos pelo portal comercial
const (
	RoleAdmin    = 1
	RoleGestor   = 2
	RoleVendedor = 3
)

// Claims é o payload do token emitido pelo portal. Esta API apenas valida
type Claims struct {
	UserID          int     `json:"user_id"`
	UserName        string  `json:"user_name"`
	UserEmail       string  `json:"user_email"`
	UserRoleID      int     `json:"user_role_id"`
	SalespersonCode *string `json:"salesperson_code,omitempty"`
	jwt.RegisteredClaims
}

// CanImport libera importação e consulta de execuções
func (c *Claims) CanImport() bool {
	return c.UserRoleID == RoleAdmin || c.UserRoleID == RoleGestor
}
