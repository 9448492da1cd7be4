// Package repository wraps all persistence behind per-entity interfaces.
// Services depend on the interfaces only; tests swap in in-memory fakes.
package repository

import (
	"time"

	"restaurant-pos-api/models"
)

type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(role models.Role) ([]models.User, error)
	Update(u *models.User) error
}

// TableFilter narrows table listings; zero values mean "any"
type TableFilter struct {
	Status models.TableStatus
	Floor  int
}

type TableRepository interface {
	Create(t *models.Table) error
	GetByID(id string) (*models.Table, error)
	GetByNumber(number int) (*models.Table, error)
	List(filter TableFilter) ([]models.Table, error)
	Update(t *models.Table) error
}

// MenuFilter narrows menu listings; zero values mean "any"
type MenuFilter struct {
	Category      string
	AvailableOnly bool
	SpecialsOnly  bool
}

type MenuRepository interface {
	Create(m *models.MenuItem) error
	GetByID(id string) (*models.MenuItem, error)
	List(filter MenuFilter) ([]models.MenuItem, error)
	Update(m *models.MenuItem) error
	Delete(id string) error
}

// OrderFilter narrows order listings; zero values mean "any"
type OrderFilter struct {
	TableID  string
	WaiterID string
	Status   models.OrderStatus
}

type OrderRepository interface {
	Create(o *models.Order) error
	GetByID(id string) (*models.Order, error)
	List(filter OrderFilter) ([]models.Order, error)
	ListByTable(tableID string) ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
	AddItem(item *models.OrderItem) error
	UpdateItem(item *models.OrderItem) error
}

type PaymentRepository interface {
	Create(p *models.Payment) error
	GetByOrderID(orderID string) (*models.Payment, error)
	ListByDateRange(start, end time.Time) ([]models.Payment, error)
}

// ItemCount is one row of the item-frequency aggregate
type ItemCount struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

type ReportRepository interface {
	ItemFrequency(start, end time.Time) ([]ItemCount, error)
	OrdersInRange(start, end time.Time) ([]models.Order, error)
}
