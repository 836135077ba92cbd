package importing

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/portal-comercial-api/internal/domain"
)

// Tentativas de código antes de desistir do cliente
const maxClientCodeAttempts = 20

type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeCreated
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeCreated:
		return "created"
	default:
		return "failed"
	}
}

// Resolution é o resultado de um find-or-create
type Resolution[T any] struct {
	Entity  *T
	Outcome Outcome
	Err     error
}

func found[T any](e *T) Resolution[T]   { return Resolution[T]{Entity: e, Outcome: OutcomeFound} }
func created[T any](e *T) Resolution[T] { return Resolution[T]{Entity: e, Outcome: OutcomeCreated} }
func failed[T any](err error) Resolution[T] {
	return Resolution[T]{Outcome: OutcomeFailed, Err: err}
}

// findOrCreate tenta inserir e, se a chave já existir, relê o registro vencedor
func findOrCreate[T any](
	ctx context.Context,
	find func(context.Context) (*T, error),
	candidate *T,
	create func(context.Context, *T) (bool, error),
) Resolution[T] {
	existing, err := find(ctx)
	if err != nil {
		return failed[T](err)
	}
	if existing != nil {
		return found(existing)
	}

	ok, err := create(ctx, candidate)
	if err != nil {
		return failed[T](err)
	}
	if ok {
		return created(candidate)
	}

	existing, err = find(ctx)
	if err != nil {
		return failed[T](err)
	}
	if existing == nil {
		return failed[T](errors.New("registro sumiu após conflito de chave"))
	}
	return found(existing)
}

// ResolvedEntities são as entidades de uma linha. Group e Manufacturer ficam nil
// quando o produto já existia e apenas seus códigos são herdados
type ResolvedEntities struct {
	Client       *domain.Client
	Store        *domain.Store
	Salesperson  *domain.Salesperson
	Product      *domain.Product
	Group        *domain.ProductGroup
	Manufacturer *domain.Manufacturer
	Created      []domain.EntityKind
}

func (e *ResolvedEntities) track(kind domain.EntityKind, outcome Outcome) {
	if outcome == OutcomeCreated {
		e.Created = append(e.Created, kind)
	}
}

type Resolver struct {
	reference *ReferenceIndex
	names     *SalespersonNames
}

func NewResolver(reference *ReferenceIndex, names *SalespersonNames) *Resolver {
	return &Resolver{reference: reference, names: names}
}

// Resolve resolve cliente, loja, vendedor e produto, nessa ordem
func (r *Resolver) Resolve(ctx context.Context, store EntityStore, row *parsedRow) (*ResolvedEntities, error) {
	out := &ResolvedEntities{}

	client := r.resolveClient(ctx, store, row)
	if client.Err != nil {
		return nil, asResolutionError(row.Line, ColClient, client.Err)
	}
	out.Client = client.Entity
	out.track(domain.EntityClient, client.Outcome)

	st := findOrCreate(ctx,
		func(ctx context.Context) (*domain.Store, error) { return store.FindStore(ctx, row.StoreCode) },
		&domain.Store{Code: row.StoreCode, Name: domain.StoreDefaultName(row.StoreCode), Active: true},
		store.CreateStore,
	)
	if st.Err != nil {
		return nil, asResolutionError(row.Line, ColStore, st.Err)
	}
	out.Store = st.Entity
	out.track(domain.EntityStore, st.Outcome)

	sp := r.resolveSalesperson(ctx, store, row, out.Store)
	if sp.Err != nil {
		return nil, asResolutionError(row.Line, ColSalesperson, sp.Err)
	}
	out.Salesperson = sp.Entity
	out.track(domain.EntitySalesperson, sp.Outcome)

	if err := r.resolveProduct(ctx, store, row, out); err != nil {
		return nil, asResolutionError(row.Line, ColProductCode, err)
	}

	return out, nil
}

func asResolutionError(line int, column string, err error) error {
	var ie *ImportError
	if errors.As(err, &ie) {
		return err
	}
	return newResolutionError(line, column, "", err)
}

func (r *Resolver) resolveClient(ctx context.Context, store EntityStore, row *parsedRow) Resolution[domain.Client] {
	if row.TaxDigits != "" {
		lookup := row.TaxID
		if lookup == "" {
			lookup = row.TaxDigits
		}
		existing, err := store.FindClientByTaxID(ctx, lookup)
		if err != nil {
			return failed[domain.Client](err)
		}
		if existing != nil {
			return found(existing)
		}
		return r.createClientWithTaxID(ctx, store, row)
	}

	name := strings.Join(strings.Fields(row.ClientName), " ")
	if NormalizeName(name) == "" {
		return failed[domain.Client](newResolutionError(row.Line, ColClient, "cliente sem nome e sem CPF/CNPJ válido", nil))
	}

	existing, err := store.FindClientByName(ctx, name)
	if err != nil {
		return failed[domain.Client](err)
	}
	if existing != nil {
		return found(existing)
	}

	return r.createSyntheticClient(ctx, store, row, name)
}

// createClientWithTaxID deriva o código do documento. Em colisão com outro
// documento o código ganha sufixo, e filiais do mesmo CNPJ apontam para a matriz.
// Documento que não é CPF nem CNPJ gera o código mas não é gravado
func (r *Resolver) createClientWithTaxID(ctx context.Context, store EntityStore, row *parsedRow) Resolution[domain.Client] {
	base := ClientCodeFromTaxID(row.TaxDigits)
	candidate, err := r.newClient(ctx, store, row, row.ClientName)
	if err != nil {
		return failed[domain.Client](err)
	}
	if candidate.Name == "" {
		candidate.Name = "CLIENTE " + base
	}
	taxID := row.TaxID
	if taxID != "" {
		kind := domain.ClassifyTaxID(taxID)
		candidate.TaxID = &taxID
		candidate.TaxIDKind = &kind
	}

	for attempt := 1; attempt <= maxClientCodeAttempts; attempt++ {
		candidate.Code = base
		if attempt > 1 {
			candidate.Code = fmt.Sprintf("%s-%d", base, attempt)
		}

		ok, err := store.CreateClient(ctx, candidate)
		if err != nil {
			return failed[domain.Client](err)
		}
		if ok {
			return created(candidate)
		}

		existing, err := store.FindClientByCode(ctx, candidate.Code)
		if err != nil {
			return failed[domain.Client](err)
		}
		if existing == nil {
			continue
		}
		if taxID == "" || (existing.TaxID != nil && *existing.TaxID == taxID) {
			return found(existing)
		}
		if candidate.MasterCode == nil && existing.TaxID != nil && SameCNPJRoot(*existing.TaxID, taxID) {
			principal := existing.PrincipalCode()
			candidate.MasterCode = &principal
		}
	}

	return failed[domain.Client](fmt.Errorf("nenhum código livre para o documento %s", row.TaxDigits))
}

// createSyntheticClient gera "N" + iniciais + sequência para clientes sem documento
func (r *Resolver) createSyntheticClient(ctx context.Context, store EntityStore, row *parsedRow, name string) Resolution[domain.Client] {
	prefix, err := SyntheticClientPrefix(name)
	if err != nil {
		return failed[domain.Client](newResolutionError(row.Line, ColClient, "nome sem letras para gerar código", nil))
	}

	last, err := store.LastClientCodeWithPrefix(ctx, prefix)
	if err != nil {
		return failed[domain.Client](err)
	}

	candidate, err := r.newClient(ctx, store, row, name)
	if err != nil {
		return failed[domain.Client](err)
	}

	next := syntheticSequence(last, prefix) + 1
	for attempt := 0; attempt < maxClientCodeAttempts; attempt++ {
		candidate.Code, err = FormatSyntheticCode(prefix, next+attempt)
		if err != nil {
			return failed[domain.Client](err)
		}

		ok, err := store.CreateClient(ctx, candidate)
		if err != nil {
			return failed[domain.Client](err)
		}
		if ok {
			return created(candidate)
		}

		// outra execução pode ter criado o mesmo cliente
		existing, err := store.FindClientByName(ctx, name)
		if err != nil {
			return failed[domain.Client](err)
		}
		if existing != nil {
			return found(existing)
		}
	}

	return failed[domain.Client](fmt.Errorf("nenhum código livre para o prefixo %s", prefix))
}

func (r *Resolver) newClient(ctx context.Context, store EntityStore, row *parsedRow, name string) (*domain.Client, error) {
	storeCode := row.StoreCode
	salespersonCode := row.SalespersonCode

	salespersonName := row.SalespersonName
	if salespersonName == "" {
		var err error
		if salespersonName, err = r.names.Lookup(ctx, store, salespersonCode); err != nil {
			return nil, err
		}
	}

	client := &domain.Client{
		Name:            strings.Join(strings.Fields(name), " "),
		Status:          domain.ClientStatusDraft,
		StoreCode:       &storeCode,
		SalespersonCode: &salespersonCode,
	}
	if salespersonName != "" {
		client.SalespersonName = &salespersonName
	}
	if row.State != "" {
		state := row.State
		client.State = &state
	}
	return client, nil
}

func (r *Resolver) resolveSalesperson(ctx context.Context, store EntityStore, row *parsedRow, owner *domain.Store) Resolution[domain.Salesperson] {
	name := row.SalespersonName
	if name == "" {
		name = domain.DefaultSalespersonName
	}
	storeCode := owner.Code

	res := findOrCreate(ctx,
		func(ctx context.Context) (*domain.Salesperson, error) {
			return store.FindSalesperson(ctx, row.SalespersonCode)
		},
		&domain.Salesperson{Code: row.SalespersonCode, Name: name, StoreCode: &storeCode, Active: true},
		store.CreateSalesperson,
	)
	if res.Outcome != OutcomeFound {
		return res
	}

	sp := res.Entity
	if sp.HasPlaceholderName() && row.SalespersonName != "" && row.SalespersonName != domain.DefaultSalespersonName {
		sp.Name = row.SalespersonName
		if err := store.UpdateSalesperson(ctx, sp); err != nil {
			return failed[domain.Salesperson](err)
		}
		r.names.Invalidate(ctx, sp.Code)
	}

	return res
}

// resolveProduct reaproveita o produto existente com seu grupo e fabricante.
// Produto novo busca grupo e fabricante na linha, depois nas planilhas auxiliares, depois nos padrões
func (r *Resolver) resolveProduct(ctx context.Context, store EntityStore, row *parsedRow, out *ResolvedEntities) error {
	existing, err := store.FindProduct(ctx, row.ProductCode)
	if err != nil {
		return err
	}
	if existing != nil {
		out.Product = existing
		return nil
	}

	ref, hasRef := r.reference.Product(row.ProductCode)

	groupCode := row.GroupCode
	if groupCode == "" && hasRef {
		groupCode = ref.GroupCode
	}
	if groupCode == "" {
		groupCode = domain.DefaultGroupCode
	}

	manufacturerCode := row.ManufacturerCode
	if manufacturerCode == "" && hasRef {
		manufacturerCode = ref.ManufacturerCode
	}
	if manufacturerCode == "" {
		manufacturerCode = domain.DefaultManufacturerCode
	}

	group := findOrCreate(ctx,
		func(ctx context.Context) (*domain.ProductGroup, error) { return store.FindGroup(ctx, groupCode) },
		&domain.ProductGroup{Code: groupCode, Description: r.groupDescription(groupCode, row), Active: true},
		store.CreateGroup,
	)
	if group.Err != nil {
		return group.Err
	}
	out.Group = group.Entity
	out.track(domain.EntityGroup, group.Outcome)

	manufacturer := findOrCreate(ctx,
		func(ctx context.Context) (*domain.Manufacturer, error) {
			return store.FindManufacturer(ctx, manufacturerCode)
		},
		&domain.Manufacturer{Code: manufacturerCode, Description: r.manufacturerDescription(manufacturerCode), Active: true},
		store.CreateManufacturer,
	)
	if manufacturer.Err != nil {
		return manufacturer.Err
	}
	out.Manufacturer = manufacturer.Entity
	out.track(domain.EntityManufacturer, manufacturer.Outcome)

	description := row.ProductDescription
	if description == "" && hasRef {
		description = ref.Description
	}
	if description == "" {
		description = "PRODUTO " + row.ProductCode
	}

	product := findOrCreate(ctx,
		func(ctx context.Context) (*domain.Product, error) { return store.FindProduct(ctx, row.ProductCode) },
		&domain.Product{
			Code:             row.ProductCode,
			Description:      description,
			GroupCode:        out.Group.Code,
			ManufacturerCode: out.Manufacturer.Code,
			Active:           true,
		},
		store.CreateProduct,
	)
	if product.Err != nil {
		return product.Err
	}
	out.Product = product.Entity
	out.track(domain.EntityProduct, product.Outcome)

	return nil
}

func (r *Resolver) groupDescription(code string, row *parsedRow) string {
	if descr, ok := r.reference.Group(code); ok {
		return descr
	}
	if code == domain.DefaultGroupCode {
		return domain.DefaultGroupDescription
	}
	if row.ClassDescription != "" {
		return row.ClassDescription
	}
	return "GRUPO " + code
}

func (r *Resolver) manufacturerDescription(code string) string {
	if descr, ok := r.reference.Manufacturer(code); ok {
		return descr
	}
	if code == domain.DefaultManufacturerCode {
		return domain.DefaultManufacturerDescription
	}
	return "FABRICANTE " + code
}
