package service

// In-memory stores used by the service tests. They satisfy the same
// store interfaces as the MySQL repositories, with mutex-guarded maps
// standing in for tables and injectable errors for failure paths.

import (
	"context"
	"sync"

	"github.com/motorline/dealer-backend/internal/model"
	"github.com/motorline/dealer-backend/internal/repository"
)

type memCarStore struct {
	mu     sync.Mutex
	nextID uint64
	cars   map[uint64]model.Car
}

func newMemCarStore() *memCarStore {
	return &memCarStore{cars: map[uint64]model.Car{}}
}

func (m *memCarStore) Create(_ context.Context, c *model.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.cars[c.ID] = *c
	return nil
}

func (m *memCarStore) GetByID(_ context.Context, id uint64) (*model.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memCarStore) FindByMakeModelYear(_ context.Context, make, mdl string, year int) (*model.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cars {
		if c.Make == make && c.Model == mdl && c.Year == year {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCarStore) List(_ context.Context) ([]*model.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Car, 0, len(m.cars))
	for _, c := range m.cars {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (m *memCarStore) Update(_ context.Context, c *model.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cars[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.cars[c.ID] = *c
	return nil
}

func (m *memCarStore) Delete(_ context.Context, id uint64) (*model.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.cars, id)
	return &c, nil
}

type memInventoryStore struct {
	mu     sync.Mutex
	nextID uint64
	items  map[uint64]model.Inventory
}

func newMemInventoryStore() *memInventoryStore {
	return &memInventoryStore{items: map[uint64]model.Inventory{}}
}

func (m *memInventoryStore) Create(_ context.Context, inv *model.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	inv.ID = m.nextID
	m.items[inv.ID] = *inv
	return nil
}

func (m *memInventoryStore) GetByID(_ context.Context, id uint64) (*model.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &inv, nil
}

func (m *memInventoryStore) ExistsByCarID(_ context.Context, carID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range m.items {
		if inv.CarID == carID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memInventoryStore) List(_ context.Context) ([]*model.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Inventory, 0, len(m.items))
	for _, inv := range m.items {
		inv := inv
		out = append(out, &inv)
	}
	return out, nil
}

func (m *memInventoryStore) Update(_ context.Context, inv *model.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[inv.ID]; !ok {
		return repository.ErrNotFound
	}
	m.items[inv.ID] = *inv
	return nil
}

func (m *memInventoryStore) Delete(_ context.Context, id uint64) (*model.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.items, id)
	return &inv, nil
}

type memClientStore struct {
	mu      sync.Mutex
	nextID  uint64
	clients map[uint64]model.Client
}

func newMemClientStore() *memClientStore {
	return &memClientStore{clients: map[uint64]model.Client{}}
}

func (m *memClientStore) Create(_ context.Context, c *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.clients[c.ID] = *c
	return nil
}

func (m *memClientStore) GetByID(_ context.Context, id uint64) (*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memClientStore) FindByName(_ context.Context, name string) (*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clients {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memClientStore) ExistsBySalesPerson(_ context.Context, userID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clients {
		if c.SalesPerson == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memClientStore) List(_ context.Context) ([]*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Client, 0, len(m.clients))
	for _, c := range m.clients {
		c := c
		out = append(out, &c)
	}
	return out, nil
}

func (m *memClientStore) Update(_ context.Context, c *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.clients[c.ID] = *c
	return nil
}

func (m *memClientStore) Delete(_ context.Context, id uint64) (*model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.clients, id)
	return &c, nil
}

type memUserStore struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[uint64]model.User{}}
}

func (m *memUserStore) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.ID = m.nextID
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) List(_ context.Context) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (m *memUserStore) Update(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id uint64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.users, id)
	return &u, nil
}

// memSaleStore supports injecting a create failure to simulate the
// persist step failing after a ticket number was already consumed.
type memSaleStore struct {
	mu        sync.Mutex
	nextID    uint64
	sales     map[uint64]model.Sale
	createErr error
}

func newMemSaleStore() *memSaleStore {
	return &memSaleStore{sales: map[uint64]model.Sale{}}
}

func (m *memSaleStore) Create(_ context.Context, s *model.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	s.ID = m.nextID
	m.sales[s.ID] = *s
	return nil
}

func (m *memSaleStore) GetByID(_ context.Context, id uint64) (*model.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *memSaleStore) ExistsByBuyer(_ context.Context, clientID uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sales {
		if s.Buyer == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSaleStore) List(_ context.Context) ([]*model.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Sale, 0, len(m.sales))
	for _, s := range m.sales {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

func (m *memSaleStore) Update(_ context.Context, s *model.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sales[s.ID]; !ok {
		return repository.ErrNotFound
	}
	m.sales[s.ID] = *s
	return nil
}

func (m *memSaleStore) Delete(_ context.Context, id uint64) (*model.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.sales, id)
	return &s, nil
}

type memInvoiceStore struct {
	mu       sync.Mutex
	nextID   uint64
	invoices map[uint64]model.Invoice
}

func newMemInvoiceStore() *memInvoiceStore {
	return &memInvoiceStore{invoices: map[uint64]model.Invoice{}}
}

func (m *memInvoiceStore) Create(_ context.Context, inv *model.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	inv.ID = m.nextID
	m.invoices[inv.ID] = *inv
	return nil
}

func (m *memInvoiceStore) GetByID(_ context.Context, id uint64) (*model.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &inv, nil
}

func (m *memInvoiceStore) List(_ context.Context) ([]*model.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		inv := inv
		out = append(out, &inv)
	}
	return out, nil
}

func (m *memInvoiceStore) Update(_ context.Context, inv *model.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.invoices[inv.ID]; !ok {
		return repository.ErrNotFound
	}
	m.invoices[inv.ID] = *inv
	return nil
}

func (m *memInvoiceStore) Delete(_ context.Context, id uint64) (*model.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.invoices, id)
	return &inv, nil
}

// memSequence matches the allocator contract: atomic increments from a
// per-name counter starting at start, with an injectable failure. A
// consumed value is never handed out again, matching the durable
// implementation.
type memSequence struct {
	mu       sync.Mutex
	start    uint64
	counters map[string]uint64
	err      error
}

func newMemSequence(start uint64) *memSequence {
	return &memSequence{start: start, counters: map[string]uint64{}}
}

func (m *memSequence) Next(_ context.Context, name string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	v, ok := m.counters[name]
	if !ok {
		v = m.start - 1
	}
	v++
	m.counters[name] = v
	return v, nil
}
