package services

import (
	"time"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
	"restaurant-pos-api/repository"
)

type PaymentService struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	tables   repository.TableRepository
	locks    *TableLocks
}

func NewPaymentService(payments repository.PaymentRepository, orders repository.OrderRepository, tables repository.TableRepository, locks *TableLocks) *PaymentService {
	return &PaymentService{payments: payments, orders: orders, tables: tables, locks: locks}
}

type SettleInput struct {
	OrderID string               `json:"order_id" binding:"required"`
	Amount  float64              `json:"amount" binding:"required,gt=0"`
	Tip     float64              `json:"tip"`
	Method  models.PaymentMethod `json:"payment_method" binding:"required"`
}

// Settle records a payment, marks the order paid, and releases the table
// when no unsettled order remains on it. The whole cascade runs under the
// table's lock so it cannot interleave with order creation or a second
// settlement on the same table.
func (s *PaymentService) Settle(actor models.Identity, in SettleInput) (*models.Payment, error) {
	if !models.ValidPaymentMethod(in.Method) {
		return nil, errs.E(errs.ErrValidation, "unrecognized payment method %q", in.Method)
	}
	if in.Tip < 0 {
		return nil, errs.E(errs.ErrValidation, "tip cannot be negative")
	}
	// Waiters settle in cash only; managers and above take any method
	if !policy.IsAtLeast(actor.Role, models.RoleManager) {
		if !policy.HasPermission(actor.Role, policy.PermPayments) {
			return nil, errs.E(errs.ErrAuthorization, "role %q may not take payments", actor.Role)
		}
		if in.Method != models.PayCash {
			return nil, errs.E(errs.ErrAuthorization, "waiters may only take cash payments")
		}
	}

	order, err := s.orders.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(order.TableID)
	defer unlock()

	// re-read under the lock: another settlement may have won the race
	order, err = s.orders.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.OrderPaid {
		return nil, errs.E(errs.ErrConflict, "order %s is already paid", order.ID)
	}

	payment := &models.Payment{
		OrderID:     order.ID,
		Amount:      in.Amount,
		Tip:         in.Tip,
		Method:      in.Method,
		PaymentDate: time.Now(),
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(order.ID, models.OrderPaid); err != nil {
		return nil, err
	}

	if err := s.releaseTableIfSettled(order.TableID); err != nil {
		return nil, err
	}
	return payment, nil
}

// releaseTableIfSettled frees the table once every order on it is paid or
// cancelled. Caller holds the table lock.
func (s *PaymentService) releaseTableIfSettled(tableID string) error {
	orders, err := s.orders.ListByTable(tableID)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.Status.Active() {
			return nil
		}
	}

	table, err := s.tables.GetByID(tableID)
	if err != nil {
		return err
	}
	table.Status = models.TableAvailable
	table.ClearOccupancy()
	table.Waiter = nil
	return s.tables.Update(table)
}

// ForOrder returns the payment that settled an order
func (s *PaymentService) ForOrder(orderID string) (*models.Payment, error) {
	return s.payments.GetByOrderID(orderID)
}

// ListByDateRange returns payments in [start, end)
func (s *PaymentService) ListByDateRange(start, end time.Time) ([]models.Payment, error) {
	return s.payments.ListByDateRange(start, end)
}
