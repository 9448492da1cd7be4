package services

import (
	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/repository"
	"restaurant-pos-api/statemachine"
)

type OrderService struct {
	orders repository.OrderRepository
	tables repository.TableRepository
	menu   repository.MenuRepository
	locks  *TableLocks
}

func NewOrderService(orders repository.OrderRepository, tables repository.TableRepository, menu repository.MenuRepository, locks *TableLocks) *OrderService {
	return &OrderService{orders: orders, tables: tables, menu: menu, locks: locks}
}

type OrderItemInput struct {
	MenuItemID string   `json:"menu_item_id" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required,min=1"`
	Notes      string   `json:"notes"`
	Price      *float64 `json:"price"`
}

type CreateOrderInput struct {
	TableID  string           `json:"table_id" binding:"required"`
	WaiterID string           `json:"waiter_id"`
	Items    []OrderItemInput `json:"items"`
}

// Create submits items for an occupied table. A table has at most one
// active order: if one exists the items are appended to it, otherwise a
// fresh order is opened. The read-then-create runs under the table lock so
// two concurrent submissions cannot open duplicate orders.
func (s *OrderService) Create(actor models.Identity, in CreateOrderInput) (*models.Order, error) {
	table, err := s.tables.GetByID(in.TableID)
	if err != nil {
		return nil, err
	}
	if table.Status != models.TableOccupied {
		return nil, errs.E(errs.ErrConflict, "table %d is not occupied", table.Number)
	}

	unlock := s.locks.Lock(table.ID)
	defer unlock()

	order, err := s.activeOrderForTable(table.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		waiterID := in.WaiterID
		if waiterID == "" && table.WaiterID != nil {
			waiterID = *table.WaiterID
		}
		order = &models.Order{
			TableID:  table.ID,
			WaiterID: waiterID,
			Status:   models.OrderNew,
		}
		if err := s.orders.Create(order); err != nil {
			return nil, err
		}
	}

	for _, item := range in.Items {
		if err := s.appendItem(order, item); err != nil {
			return nil, err
		}
	}
	return s.orders.GetByID(order.ID)
}

// activeOrderForTable returns the table's unsettled order, or nil
func (s *OrderService) activeOrderForTable(tableID string) (*models.Order, error) {
	orders, err := s.orders.ListByTable(tableID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Status.Active() {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (s *OrderService) Get(id string) (*models.Order, error) {
	return s.orders.GetByID(id)
}

func (s *OrderService) List(filter repository.OrderFilter) ([]models.Order, error) {
	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return nil, errs.E(errs.ErrValidation, "unrecognized order status %q", filter.Status)
	}
	return s.orders.List(filter)
}

// AdvanceStatus moves an order along the workflow. The statemachine
// rejects unknown statuses, missing edges, and callers without authority
// over the target (kitchen statuses need a chef or a manager).
func (s *OrderService) AdvanceStatus(actor models.Identity, id string, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.Status, newStatus, actor.Role); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(order.ID, newStatus); err != nil {
		return nil, err
	}
	return s.orders.GetByID(order.ID)
}

// AddItem appends one item to an unsettled order
func (s *OrderService) AddItem(actor models.Identity, orderID string, in OrderItemInput) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(order.TableID)
	defer unlock()

	// re-read under the lock so a settlement racing us is visible
	order, err = s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.appendItem(order, in); err != nil {
		return nil, err
	}
	return s.orders.GetByID(order.ID)
}

func (s *OrderService) appendItem(order *models.Order, in OrderItemInput) error {
	if order.Status == models.OrderPaid {
		return errs.E(errs.ErrConflict, "cannot modify a settled order")
	}
	if in.Quantity < 1 {
		return errs.E(errs.ErrValidation, "quantity must be at least 1")
	}
	menuItem, err := s.menu.GetByID(in.MenuItemID)
	if err != nil {
		return err
	}

	price := menuItem.Price
	if in.Price != nil {
		price = *in.Price
	}
	return s.orders.AddItem(&models.OrderItem{
		OrderID:    order.ID,
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Price:      price,
		Quantity:   in.Quantity,
		Notes:      in.Notes,
		Status:     models.OrderNew,
	})
}

// OrderItemPatch updates only the fields present
type OrderItemPatch struct {
	Quantity *int                `json:"quantity"`
	Notes    *string             `json:"notes"`
	Price    *float64            `json:"price"`
	Status   *models.OrderStatus `json:"status"`
}

// UpdateItem replaces an item in place. Settled orders are immutable here
// too, symmetric with AddItem.
func (s *OrderService) UpdateItem(actor models.Identity, orderID, itemID string, patch OrderItemPatch) (*models.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OrderPaid {
		return nil, errs.E(errs.ErrConflict, "cannot modify a settled order")
	}

	var item *models.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			item = &order.Items[i]
			break
		}
	}
	if item == nil {
		return nil, errs.E(errs.ErrNotFound, "item %s not found on order %s", itemID, orderID)
	}

	if patch.Quantity != nil {
		if *patch.Quantity < 1 {
			return nil, errs.E(errs.ErrValidation, "quantity must be at least 1")
		}
		item.Quantity = *patch.Quantity
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Status != nil {
		if !models.ValidOrderStatus(*patch.Status) {
			return nil, errs.E(errs.ErrValidation, "unrecognized item status %q", *patch.Status)
		}
		item.Status = *patch.Status
	}

	if err := s.orders.UpdateItem(item); err != nil {
		return nil, err
	}
	return s.orders.GetByID(orderID)
}
