package repository

import (
	"context"
	"sync"

	"hardwarestore/internal/domain"
)

// MemoryStore объединённое in-memory хранилище товаров, клиентов и продаж
type MemoryStore struct {
	mu       sync.RWMutex
	products []*domain.Product
	// key sets back the duplicate check only; lookups scan the slices
	productKeys  map[string]struct{}
	customers    []*domain.Customer
	customerKeys map[string]struct{}
	sales        []*domain.Sale
	saleIdx      map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		productKeys:  make(map[string]struct{}),
		customerKeys: make(map[string]struct{}),
		saleIdx:      make(map[string]int),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var _ ProductRepository = (*MemoryStore)(nil)

// ProductRepository implementation
func (m *MemoryStore) Add(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.productKeys[p.Code]; ok {
		return ErrDuplicate
	}
	m.productKeys[p.Code] = struct{}{}
	m.products = append(m.products, p)
	return nil
}

// FindByCode scans in insertion order and returns the first match.
func (m *MemoryStore) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, p := range m.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// CustomerRepository implementation on wrapper type
type MemoryCustomers struct{ store *MemoryStore }

func NewMemoryCustomers(store *MemoryStore) *MemoryCustomers { return &MemoryCustomers{store: store} }

var _ CustomerRepository = (*MemoryCustomers)(nil)

func (mc *MemoryCustomers) Add(ctx context.Context, c *domain.Customer) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if _, ok := mc.store.customerKeys[c.ID]; ok {
		return ErrDuplicate
	}
	mc.store.customerKeys[c.ID] = struct{}{}
	mc.store.customers = append(mc.store.customers, c)
	return nil
}

func (mc *MemoryCustomers) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	for _, c := range mc.store.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (mc *MemoryCustomers) List(ctx context.Context) ([]*domain.Customer, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	out := make([]*domain.Customer, len(mc.store.customers))
	copy(out, mc.store.customers)
	return out, nil
}

// SaleRepository implementation on wrapper type
type MemorySales struct{ store *MemoryStore }

func NewMemorySales(store *MemoryStore) *MemorySales { return &MemorySales{store: store} }

var _ SaleRepository = (*MemorySales)(nil)

func (ms *MemorySales) Add(ctx context.Context, s *domain.Sale) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	if _, ok := ms.store.saleIdx[s.Code]; ok {
		return ErrDuplicate
	}
	ms.store.saleIdx[s.Code] = len(ms.store.sales)
	ms.store.sales = append(ms.store.sales, s)
	return nil
}

func (ms *MemorySales) FindByCode(ctx context.Context, code string) (*domain.Sale, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	i, ok := ms.store.saleIdx[code]
	if !ok {
		return nil, ErrNotFound
	}
	return ms.store.sales[i], nil
}

func (ms *MemorySales) List(ctx context.Context) ([]*domain.Sale, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	out := make([]*domain.Sale, len(ms.store.sales))
	copy(out, ms.store.sales)
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
