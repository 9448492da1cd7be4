package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of a dine-in order
type OrderStatus string

const (
	OrderNew        OrderStatus = "new"
	OrderInProgress OrderStatus = "in_progress"
	OrderDone       OrderStatus = "done"
	OrderDelivered  OrderStatus = "delivered"
	OrderPaid       OrderStatus = "paid"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a recognized order status
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderNew, OrderInProgress, OrderDone, OrderDelivered, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

// Active reports whether an order in status s still claims its table.
// Paid and cancelled orders are settled history.
func (s OrderStatus) Active() bool {
	return s != OrderPaid && s != OrderCancelled
}

type Order struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	TableID   string      `json:"table_id" gorm:"not null;index"`
	Table     *Table      `json:"table,omitempty" gorm:"foreignKey:TableID"`
	WaiterID  string      `json:"waiter_id"`
	Waiter    *User       `json:"waiter,omitempty" gorm:"foreignKey:WaiterID"`
	Status    OrderStatus `json:"status" gorm:"not null;default:'new'"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Total sums the line totals of all items on the order
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

type OrderItem struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"order_id" gorm:"not null;index"`
	MenuItemID string      `json:"menu_item_id" gorm:"not null"`
	Name       string      `json:"name"`    // snapshot name at time of order
	Price      float64     `json:"price"`   // snapshot price at time of order
	Quantity   int         `json:"quantity" gorm:"not null"`
	Notes      string      `json:"notes"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'new'"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
