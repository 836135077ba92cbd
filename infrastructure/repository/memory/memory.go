// Package memory implementa o cadastro e as vendas em memória, com transações
// serializadas. Usado nos testes e no ensaio local do importador
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/portal-comercial-api/internal/domain"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
)

type state struct {
	stores        map[string]domain.Store
	salespeople   map[string]domain.Salesperson
	manufacturers map[string]domain.Manufacturer
	groups        map[string]domain.ProductGroup
	products      map[string]domain.Product
	clients       map[string]domain.Client
	sales         map[string]domain.Sale
	runs          map[string]domain.ImportRunReport
	clientSeq     int64
	saleSeq       int64
}

// Store guarda o estado. Uma transação por vez segura o mutex até Commit ou Rollback
type Store struct {
	mu    sync.Mutex
	state state
}

func New() *Store {
	return &Store{state: state{
		stores:        make(map[string]domain.Store),
		salespeople:   make(map[string]domain.Salesperson),
		manufacturers: make(map[string]domain.Manufacturer),
		groups:        make(map[string]domain.ProductGroup),
		products:      make(map[string]domain.Product),
		clients:       make(map[string]domain.Client),
		sales:         make(map[string]domain.Sale),
		runs:          make(map[string]domain.ImportRunReport),
	}}
}

var (
	_ importing.UnitOfWork = (*Store)(nil)
	_ importing.Tx         = (*tx)(nil)
)

func (s *Store) Begin(ctx context.Context) (importing.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &tx{st: &s.state, release: s.mu.Unlock}, nil
}

// tx aplica as escritas direto no estado e guarda como desfazê-las
type tx struct {
	st      *state
	undo    []func()
	release func()
	closed  bool
}

func (t *tx) Commit() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.undo = nil
	t.release()
	return nil
}

func (t *tx) Rollback() error {
	if t.closed {
		return nil
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.closed = true
	t.undo = nil
	t.release()
	return nil
}

// put grava no mapa e registra a restauração do valor anterior
func put[V any](t *tx, m map[string]V, key string, value V) {
	prev, existed := m[key]
	m[key] = value
	t.undo = append(t.undo, func() {
		if existed {
			m[key] = prev
			return
		}
		delete(m, key)
	})
}

func ptr[V any](v V) *V { return &v }

func find[V any](m map[string]V, key string) (*V, error) {
	if v, ok := m[key]; ok {
		return ptr(v), nil
	}
	return nil, nil
}

func (t *tx) FindStore(_ context.Context, code string) (*domain.Store, error) {
	return find(t.st.stores, code)
}

func (t *tx) CreateStore(_ context.Context, store *domain.Store) (bool, error) {
	if _, ok := t.st.stores[store.Code]; ok {
		return false, nil
	}
	put(t, t.st.stores, store.Code, *store)
	return true, nil
}

func (t *tx) FindSalesperson(_ context.Context, code string) (*domain.Salesperson, error) {
	return find(t.st.salespeople, code)
}

func (t *tx) CreateSalesperson(_ context.Context, sp *domain.Salesperson) (bool, error) {
	if _, ok := t.st.salespeople[sp.Code]; ok {
		return false, nil
	}
	put(t, t.st.salespeople, sp.Code, *sp)
	return true, nil
}

func (t *tx) UpdateSalesperson(_ context.Context, sp *domain.Salesperson) error {
	if _, ok := t.st.salespeople[sp.Code]; !ok {
		return nil
	}
	put(t, t.st.salespeople, sp.Code, *sp)
	return nil
}

func (t *tx) FindManufacturer(_ context.Context, code string) (*domain.Manufacturer, error) {
	return find(t.st.manufacturers, code)
}

func (t *tx) CreateManufacturer(_ context.Context, m *domain.Manufacturer) (bool, error) {
	if _, ok := t.st.manufacturers[m.Code]; ok {
		return false, nil
	}
	put(t, t.st.manufacturers, m.Code, *m)
	return true, nil
}

func (t *tx) FindGroup(_ context.Context, code string) (*domain.ProductGroup, error) {
	return find(t.st.groups, code)
}

func (t *tx) CreateGroup(_ context.Context, g *domain.ProductGroup) (bool, error) {
	if _, ok := t.st.groups[g.Code]; ok {
		return false, nil
	}
	put(t, t.st.groups, g.Code, *g)
	return true, nil
}

func (t *tx) FindProduct(_ context.Context, code string) (*domain.Product, error) {
	return find(t.st.products, code)
}

func (t *tx) CreateProduct(_ context.Context, p *domain.Product) (bool, error) {
	if _, ok := t.st.products[p.Code]; ok {
		return false, nil
	}
	put(t, t.st.products, p.Code, *p)
	return true, nil
}

func (t *tx) FindClientByCode(_ context.Context, code string) (*domain.Client, error) {
	return find(t.st.clients, code)
}

// FindClientByTaxID prioriza o documento exato e depois o que contém os dígitos
func (t *tx) FindClientByTaxID(_ context.Context, digits string) (*domain.Client, error) {
	var best *domain.Client
	for _, c := range t.st.clients {
		if c.TaxID == nil || !strings.Contains(*c.TaxID, digits) {
			continue
		}
		exact := *c.TaxID == digits
		if best == nil ||
			(exact && *best.TaxID != digits) ||
			(exact == (*best.TaxID == digits) && c.ID < best.ID) {
			best = ptr(c)
		}
	}
	return best, nil
}

func (t *tx) FindClientByName(_ context.Context, name string) (*domain.Client, error) {
	var best *domain.Client
	for _, c := range t.st.clients {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) && (best == nil || c.ID < best.ID) {
			best = ptr(c)
		}
	}
	return best, nil
}

func (t *tx) LastClientCodeWithPrefix(_ context.Context, prefix string) (string, error) {
	last := ""
	for code := range t.st.clients {
		if !strings.HasPrefix(code, prefix) || len(code) == len(prefix) {
			continue
		}
		if strings.Trim(code[len(prefix):], "0123456789") != "" {
			continue
		}
		if code > last {
			last = code
		}
	}
	return last, nil
}

func (t *tx) CreateClient(_ context.Context, c *domain.Client) (bool, error) {
	if _, ok := t.st.clients[c.Code]; ok {
		return false, nil
	}

	prevSeq := t.st.clientSeq
	t.st.clientSeq++
	t.undo = append(t.undo, func() { t.st.clientSeq = prevSeq })

	c.ID = t.st.clientSeq
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	put(t, t.st.clients, c.Code, *c)
	return true, nil
}

func (t *tx) InsertSale(_ context.Context, sale *domain.Sale) (bool, error) {
	key := sale.Key().String()
	if _, ok := t.st.sales[key]; ok {
		return false, nil
	}

	prevSeq := t.st.saleSeq
	t.st.saleSeq++
	t.undo = append(t.undo, func() { t.st.saleSeq = prevSeq })

	sale.ID = t.st.saleSeq
	put(t, t.st.sales, key, *sale)
	return true, nil
}

func (t *tx) DeleteAllSales(_ context.Context) (int64, error) {
	previous := t.st.sales
	t.st.sales = make(map[string]domain.Sale)
	t.undo = append(t.undo, func() { t.st.sales = previous })
	return int64(len(previous)), nil
}

// FindSalesperson lê fora de transação
func (s *Store) FindSalesperson(_ context.Context, code string) (*domain.Salesperson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.state.salespeople, code)
}

// SaveRun não deixa um resumo parcial sobrescrever uma execução já finalizada
func (s *Store) SaveRun(_ context.Context, report *domain.ImportRunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.state.runs[report.RunID]; ok && prev.Status.IsFinal() && !report.Status.IsFinal() {
		return nil
	}
	s.state.runs[report.RunID] = *report
	return nil
}

func (s *Store) GetRun(_ context.Context, runID string) (*domain.ImportRunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return find(s.state.runs, runID)
}

// ListRuns devolve as execuções mais recentes primeiro
func (s *Store) ListRuns(_ context.Context, limit int) ([]*domain.ImportRunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := make([]*domain.ImportRunReport, 0, len(s.state.runs))
	for _, r := range s.state.runs {
		runs = append(runs, ptr(r))
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].StartedAt.After(runs[j].StartedAt) })
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (s *Store) DeleteRunsBefore(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, r := range s.state.runs {
		if r.StartedAt.Before(before) {
			delete(s.state.runs, id)
			n++
		}
	}
	return n, nil
}

// Snapshot devolve cópias ordenadas pelo código, para inspeção em testes e no CLI
type Snapshot struct {
	Stores        []domain.Store
	Salespeople   []domain.Salesperson
	Manufacturers []domain.Manufacturer
	Groups        []domain.ProductGroup
	Products      []domain.Product
	Clients       []domain.Client
	Sales         []domain.Sale
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Stores:        values(s.state.stores),
		Salespeople:   values(s.state.salespeople),
		Manufacturers: values(s.state.manufacturers),
		Groups:        values(s.state.groups),
		Products:      values(s.state.products),
		Clients:       values(s.state.clients),
		Sales:         values(s.state.sales),
	}
	sort.Slice(snap.Sales, func(i, j int) bool { return snap.Sales[i].ID < snap.Sales[j].ID })
	return snap
}

func values[V any](m map[string]V) []V {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]V, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
