package services

import (
	"errors"
	"time"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
	"restaurant-pos-api/repository"
)

type TableService struct {
	tables repository.TableRepository
}

func NewTableService(tables repository.TableRepository) *TableService {
	return &TableService{tables: tables}
}

type CreateTableInput struct {
	Number   int `json:"number" binding:"required,min=1"`
	Capacity int `json:"capacity" binding:"required,min=1"`
	Floor    int `json:"floor"`
}

// Create adds a new table with a restaurant-wide unique number
func (s *TableService) Create(actor models.Identity, in CreateTableInput) (*models.Table, error) {
	if !policy.IsAtLeast(actor.Role, models.RoleManager) {
		return nil, errs.E(errs.ErrAuthorization, "only managers and above may create tables")
	}

	if _, err := s.tables.GetByNumber(in.Number); err == nil {
		return nil, errs.E(errs.ErrConflict, "table number %d already exists", in.Number)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	floor := in.Floor
	if floor == 0 {
		floor = 1
	}
	table := &models.Table{
		Number:   in.Number,
		Capacity: in.Capacity,
		Floor:    floor,
		Status:   models.TableAvailable,
	}
	if err := s.tables.Create(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) Get(id string) (*models.Table, error) {
	return s.tables.GetByID(id)
}

func (s *TableService) List(filter repository.TableFilter) ([]models.Table, error) {
	if filter.Status != "" && !models.ValidTableStatus(filter.Status) {
		return nil, errs.E(errs.ErrValidation, "unrecognized table status %q", filter.Status)
	}
	return s.tables.List(filter)
}

// TableStatusPatch carries the fields a status update may set. Nil fields
// are left alone, except that moving to available force-clears occupancy.
type TableStatusPatch struct {
	Status           *models.TableStatus `json:"status"`
	WaiterID         *string             `json:"waiter_id"`
	GuestCount       *int                `json:"guest_count"`
	ReservationName  *string             `json:"reservation_name"`
	ReservationPhone *string             `json:"reservation_phone"`
	ReservationTime  *time.Time          `json:"reservation_time"`
}

// UpdateStatus applies a patch while keeping the occupancy invariants: an
// occupied table always has a waiter, an available table never carries
// waiter, guest, or reservation fields.
func (s *TableService) UpdateStatus(actor models.Identity, id string, patch TableStatusPatch) (*models.Table, error) {
	table, err := s.tables.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.WaiterID != nil {
		table.WaiterID = patch.WaiterID
	}
	if patch.GuestCount != nil {
		table.GuestCount = patch.GuestCount
	}
	if patch.ReservationName != nil {
		table.ReservationName = patch.ReservationName
	}
	if patch.ReservationPhone != nil {
		table.ReservationPhone = patch.ReservationPhone
	}
	if patch.ReservationTime != nil {
		table.ReservationTime = patch.ReservationTime
	}

	if patch.Status != nil {
		next := *patch.Status
		if !models.ValidTableStatus(next) {
			return nil, errs.E(errs.ErrValidation, "unrecognized table status %q", next)
		}
		switch next {
		case models.TableOccupied:
			if table.WaiterID == nil || *table.WaiterID == "" {
				return nil, errs.E(errs.ErrValidation, "an occupied table must have an assigned server")
			}
		case models.TableAvailable:
			// server-side normalization, whatever else the patch carried
			table.ClearOccupancy()
		}
		table.Status = next
	}

	table.Waiter = nil // avoid writing the preloaded association back
	if err := s.tables.Update(table); err != nil {
		return nil, err
	}
	return s.tables.GetByID(id)
}

// AssignWaiter sets the table's server without touching its status
func (s *TableService) AssignWaiter(actor models.Identity, id, waiterID string) (*models.Table, error) {
	if !policy.HasPermission(actor.Role, policy.PermAssignTables) {
		return nil, errs.E(errs.ErrAuthorization, "role %q may not assign tables", actor.Role)
	}
	if waiterID == "" {
		return nil, errs.E(errs.ErrValidation, "waiter_id is required")
	}

	table, err := s.tables.GetByID(id)
	if err != nil {
		return nil, err
	}
	table.WaiterID = &waiterID
	table.Waiter = nil
	if err := s.tables.Update(table); err != nil {
		return nil, err
	}
	return s.tables.GetByID(id)
}
