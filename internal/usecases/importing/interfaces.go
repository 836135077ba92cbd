package importing

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks -exclude_interfaces=UnitOfWork

import (
	"context"
	"time"

	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// EntityStore é o cadastro consumido pela reconciliação.
// Find* retorna (nil, nil) quando não existe. Create* retorna false quando
// a chave natural já existia (conflito), sem alterar o registro existente.
type EntityStore interface {
	SalespersonFinder

	FindStore(ctx context.Context, code string) (*domain.Store, error)
	CreateStore(ctx context.Context, store *domain.Store) (bool, error)

	CreateSalesperson(ctx context.Context, salesperson *domain.Salesperson) (bool, error)
	UpdateSalesperson(ctx context.Context, salesperson *domain.Salesperson) error

	FindManufacturer(ctx context.Context, code string) (*domain.Manufacturer, error)
	CreateManufacturer(ctx context.Context, manufacturer *domain.Manufacturer) (bool, error)

	FindGroup(ctx context.Context, code string) (*domain.ProductGroup, error)
	CreateGroup(ctx context.Context, group *domain.ProductGroup) (bool, error)

	FindProduct(ctx context.Context, code string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (bool, error)

	FindClientByCode(ctx context.Context, code string) (*domain.Client, error)
	// FindClientByTaxID aceita correspondência parcial, priorizando a exata
	FindClientByTaxID(ctx context.Context, digits string) (*domain.Client, error)
	FindClientByName(ctx context.Context, name string) (*domain.Client, error)
	// LastClientCodeWithPrefix retorna o maior código no formato prefixo + dígitos
	LastClientCodeWithPrefix(ctx context.Context, prefix string) (string, error)
	CreateClient(ctx context.Context, client *domain.Client) (bool, error)
}

type SalespersonFinder interface {
	FindSalesperson(ctx context.Context, code string) (*domain.Salesperson, error)
}

type SaleStore interface {
	// InsertSale retorna false quando a chave de deduplicação já existe
	InsertSale(ctx context.Context, sale *domain.Sale) (bool, error)
	DeleteAllSales(ctx context.Context) (int64, error)
}

type Store interface {
	EntityStore
	SaleStore
}

// Tx é uma unidade de trabalho aberta. Rollback após Commit não tem efeito
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

// RunRecorder persiste o resumo das execuções
type RunRecorder interface {
	SaveRun(ctx context.Context, report *domain.ImportRunReport) error
}

// NameCache guarda nomes de vendedor por código
type NameCache interface {
	Get(ctx context.Context, code string) (string, bool, error)
	Set(ctx context.Context, code, name string, ttl time.Duration) error
	Delete(ctx context.Context, code string) error
}
