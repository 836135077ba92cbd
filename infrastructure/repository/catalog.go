package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

func (r *Repository) FindStore(ctx context.Context, code string) (*domain.Store, error) {
	var store domain.Store
	ok, err := r.queryOne(ctx,
		squirrel.Select("code", "name", "active").From(storesTable).Where(squirrel.Eq{"code": code}),
		&store.Code, &store.Name, &store.Active,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &store, nil
}

func (r *Repository) CreateStore(ctx context.Context, store *domain.Store) (bool, error) {
	return r.insertIgnoringConflict(ctx, squirrel.
		Insert(storesTable).
		Columns("code", "name", "active").
		Values(store.Code, store.Name, store.Active),
	)
}

func (r *Repository) FindSalesperson(ctx context.Context, code string) (*domain.Salesperson, error) {
	var sp domain.Salesperson
	ok, err := r.queryOne(ctx,
		squirrel.Select("code", "name", "store_code", "active").From(salespeopleTable).Where(squirrel.Eq{"code": code}),
		&sp.Code, &sp.Name, &sp.StoreCode, &sp.Active,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &sp, nil
}

func (r *Repository) CreateSalesperson(ctx context.Context, sp *domain.Salesperson) (bool, error) {
	return r.insertIgnoringConflict(ctx, squirrel.
		Insert(salespeopleTable).
		Columns("code", "name", "store_code", "active").
		Values(sp.Code, sp.Name, sp.StoreCode, sp.Active),
	)
}

// UpdateSalesperson atualiza apenas o nome
func (r *Repository) UpdateSalesperson(ctx context.Context, sp *domain.Salesperson) error {
	query, args, err := squirrel.
		Update(salespeopleTable).
		Set("name", sp.Name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": sp.Code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return dbError(err)
	}
	return nil
}

func (r *Repository) FindManufacturer(ctx context.Context, code string) (*domain.Manufacturer, error) {
	var m domain.Manufacturer
	ok, err := r.queryOne(ctx,
		squirrel.Select("code", "description", "active").From(manufacturersTable).Where(squirrel.Eq{"code": code}),
		&m.Code, &m.Description, &m.Active,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) CreateManufacturer(ctx context.Context, m *domain.Manufacturer) (bool, error) {
	return r.insertIgnoringConflict(ctx, squirrel.
		Insert(manufacturersTable).
		Columns("code", "description", "active").
		Values(m.Code, m.Description, m.Active),
	)
}

func (r *Repository) FindGroup(ctx context.Context, code string) (*domain.ProductGroup, error) {
	var g domain.ProductGroup
	ok, err := r.queryOne(ctx,
		squirrel.Select("code", "description", "active").From(groupsTable).Where(squirrel.Eq{"code": code}),
		&g.Code, &g.Description, &g.Active,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) CreateGroup(ctx context.Context, g *domain.ProductGroup) (bool, error) {
	return r.insertIgnoringConflict(ctx, squirrel.
		Insert(groupsTable).
		Columns("code", "description", "active").
		Values(g.Code, g.Description, g.Active),
	)
}

func (r *Repository) FindProduct(ctx context.Context, code string) (*domain.Product, error) {
	var p domain.Product
	ok, err := r.queryOne(ctx,
		squirrel.
			Select("code", "description", "group_code", "manufacturer_code", "active").
			From(productsTable).
			Where(squirrel.Eq{"code": code}),
		&p.Code, &p.Description, &p.GroupCode, &p.ManufacturerCode, &p.Active,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) (bool, error) {
	return r.insertIgnoringConflict(ctx, squirrel.
		Insert(productsTable).
		Columns("code", "description", "group_code", "manufacturer_code", "active").
		Values(p.Code, p.Description, p.GroupCode, p.ManufacturerCode, p.Active),
	)
}
