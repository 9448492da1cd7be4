package services

// In-memory repository fakes. Each fake guards its maps with a mutex so
// the concurrency tests exercise the service-level locking, not data
// races in the fixtures.

import (
	"sync"
	"time"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/repository"

	"github.com/google/uuid"
)

// ── users ───────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (m *memUserRepo) Create(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errs.E(errs.ErrNotFound, "user %s not found", id)
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errs.E(errs.ErrNotFound, "no account for %s", email)
}

func (m *memUserRepo) List(role models.Role) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) Update(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

// ── tables ──────────────────────────────────────────────────────────

type memTableRepo struct {
	mu     sync.Mutex
	tables map[string]*models.Table
}

func newMemTableRepo() *memTableRepo {
	return &memTableRepo{tables: map[string]*models.Table{}}
}

func (m *memTableRepo) Create(t *models.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	cp := *t
	m.tables[t.ID] = &cp
	return nil
}

func (m *memTableRepo) GetByID(id string) (*models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, errs.E(errs.ErrNotFound, "table %s not found", id)
}

func (m *memTableRepo) GetByNumber(number int) (*models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		if t.Number == number {
			cp := *t
			return &cp, nil
		}
	}
	return nil, errs.E(errs.ErrNotFound, "table number %d not found", number)
}

func (m *memTableRepo) List(filter repository.TableFilter) ([]models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Table
	for _, t := range m.tables {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Floor != 0 && t.Floor != filter.Floor {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTableRepo) Update(t *models.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[t.ID]; !ok {
		return errs.E(errs.ErrNotFound, "table %s not found", t.ID)
	}
	cp := *t
	m.tables[t.ID] = &cp
	return nil
}

// ── menu ────────────────────────────────────────────────────────────

type memMenuRepo struct {
	mu    sync.Mutex
	items map[string]*models.MenuItem
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{items: map[string]*models.MenuItem{}}
}

func (m *memMenuRepo) Create(item *models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *memMenuRepo) GetByID(id string) (*models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, errs.E(errs.ErrNotFound, "menu item %s not found", id)
}

func (m *memMenuRepo) List(filter repository.MenuFilter) ([]models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MenuItem
	for _, item := range m.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.AvailableOnly && !item.Available {
			continue
		}
		if filter.SpecialsOnly && !item.IsSpecial {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (m *memMenuRepo) Update(item *models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *memMenuRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return errs.E(errs.ErrNotFound, "menu item %s not found", id)
	}
	delete(m.items, id)
	return nil
}

// ── orders ──────────────────────────────────────────────────────────

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*models.Order{}}
}

func cloneOrder(o *models.Order) *models.Order {
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return &cp
}

func (m *memOrderRepo) Create(o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now()
	m.orders[o.ID] = cloneOrder(o)
	return nil
}

func (m *memOrderRepo) GetByID(id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, errs.E(errs.ErrNotFound, "order %s not found", id)
}

func (m *memOrderRepo) List(filter repository.OrderFilter) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if filter.TableID != "" && o.TableID != filter.TableID {
			continue
		}
		if filter.WaiterID != "" && o.WaiterID != filter.WaiterID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, *cloneOrder(o))
	}
	return out, nil
}

func (m *memOrderRepo) ListByTable(tableID string) ([]models.Order, error) {
	return m.List(repository.OrderFilter{TableID: tableID})
}

func (m *memOrderRepo) UpdateStatus(id string, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return errs.E(errs.ErrNotFound, "order %s not found", id)
	}
	o.Status = status
	return nil
}

func (m *memOrderRepo) AddItem(item *models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[item.OrderID]
	if !ok {
		return errs.E(errs.ErrNotFound, "order %s not found", item.OrderID)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	o.Items = append(o.Items, *item)
	return nil
}

func (m *memOrderRepo) UpdateItem(item *models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[item.OrderID]
	if !ok {
		return errs.E(errs.ErrNotFound, "order %s not found", item.OrderID)
	}
	for i := range o.Items {
		if o.Items[i].ID == item.ID {
			o.Items[i] = *item
			return nil
		}
	}
	return errs.E(errs.ErrNotFound, "item %s not found on order %s", item.ID, item.OrderID)
}

// ── payments ────────────────────────────────────────────────────────

type memPaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: map[string]*models.Payment{}}
}

func (m *memPaymentRepo) Create(p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *memPaymentRepo) GetByOrderID(orderID string) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.OrderID == orderID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errs.E(errs.ErrNotFound, "no payment for order %s", orderID)
}

func (m *memPaymentRepo) ListByDateRange(start, end time.Time) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Payment
	for _, p := range m.payments {
		if !p.PaymentDate.Before(start) && p.PaymentDate.Before(end) {
			out = append(out, *p)
		}
	}
	return out, nil
}

// ── shared fixture helpers ──────────────────────────────────────────

func asRole(role models.Role) models.Identity {
	return models.Identity{ID: "actor-" + string(role), Email: string(role) + "@pos.test", Role: role}
}

type posFixture struct {
	users    *memUserRepo
	tables   *memTableRepo
	menu     *memMenuRepo
	orders   *memOrderRepo
	payments *memPaymentRepo

	tableSvc   *TableService
	orderSvc   *OrderService
	paymentSvc *PaymentService
}

func newPOSFixture() *posFixture {
	f := &posFixture{
		users:    newMemUserRepo(),
		tables:   newMemTableRepo(),
		menu:     newMemMenuRepo(),
		orders:   newMemOrderRepo(),
		payments: newMemPaymentRepo(),
	}
	locks := NewTableLocks()
	f.tableSvc = NewTableService(f.tables)
	f.orderSvc = NewOrderService(f.orders, f.tables, f.menu, locks)
	f.paymentSvc = NewPaymentService(f.payments, f.orders, f.tables, locks)
	return f
}

// occupiedTable seeds a table in occupied state with a waiter assigned
func (f *posFixture) occupiedTable(number int, waiterID string) *models.Table {
	t := &models.Table{
		Number:   number,
		Capacity: 4,
		Floor:    1,
		Status:   models.TableOccupied,
		WaiterID: &waiterID,
	}
	if err := f.tables.Create(t); err != nil {
		panic(err)
	}
	return t
}

func (f *posFixture) menuItem(name string, price float64) *models.MenuItem {
	item := &models.MenuItem{Name: name, Price: price, Category: "mains", Available: true}
	if err := f.menu.Create(item); err != nil {
		panic(err)
	}
	return item
}
