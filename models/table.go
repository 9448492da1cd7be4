package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableStatus represents the occupancy state of a dining table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

// ValidTableStatus reports whether s is a recognized table status
func ValidTableStatus(s TableStatus) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning:
		return true
	}
	return false
}

type Table struct {
	ID               string      `json:"id" gorm:"primaryKey"`
	Number           int         `json:"number" gorm:"uniqueIndex;not null"`
	Capacity         int         `json:"capacity" gorm:"not null"`
	Floor            int         `json:"floor" gorm:"default:1"`
	Status           TableStatus `json:"status" gorm:"not null;default:'available'"`
	WaiterID         *string     `json:"waiter_id"`
	Waiter           *User       `json:"waiter,omitempty" gorm:"foreignKey:WaiterID"`
	GuestCount       *int        `json:"guest_count"`
	ReservationName  *string     `json:"reservation_name"`
	ReservationPhone *string     `json:"reservation_phone"`
	ReservationTime  *time.Time  `json:"reservation_time"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ClearOccupancy resets the fields that only make sense while the table
// is occupied or reserved
func (t *Table) ClearOccupancy() {
	t.WaiterID = nil
	t.GuestCount = nil
	t.ReservationName = nil
	t.ReservationPhone = nil
	t.ReservationTime = nil
}
