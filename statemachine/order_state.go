// Package statemachine holds the authoritative definition of the order
// workflow: which status can follow which, and how much authority a caller
// needs to push an order along each edge.
package statemachine

import (
	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
)

// Transition defines a valid status change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition.
// Paid is deliberately absent as a target: an order only becomes paid
// through payment settlement, never through a plain status update.
var validTransitions = []Transition{
	{From: models.OrderNew, To: models.OrderInProgress},
	{From: models.OrderInProgress, To: models.OrderDone},
	{From: models.OrderDone, To: models.OrderDelivered},
	// Any unsettled order may still be cancelled
	{From: models.OrderNew, To: models.OrderCancelled},
	{From: models.OrderInProgress, To: models.OrderCancelled},
	{From: models.OrderDone, To: models.OrderCancelled},
	{From: models.OrderDelivered, To: models.OrderCancelled},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// kitchenStatuses are the targets only the kitchen (or management) may
// set. A waiter sharing the chef's tier does not qualify.
var kitchenStatuses = map[models.OrderStatus]bool{
	models.OrderInProgress: true,
	models.OrderDone:       true,
}

// RoleMaySet reports whether role has the authority to move an order
// into target, independent of the order's current status
func RoleMaySet(role models.Role, target models.OrderStatus) bool {
	if role == models.RoleAdmin {
		return true
	}
	if kitchenStatuses[target] {
		return role == models.RoleChef || policy.IsAtLeast(role, models.RoleManager)
	}
	return policy.IsAtLeast(role, models.RoleWaiter)
}

// ValidTransitionsFrom returns all valid next statuses from a given status
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether role may move an order from one status to
// another. The edge must exist and the role must have authority over the
// target status.
func CanTransition(from, to models.OrderStatus, role models.Role) error {
	if !models.ValidOrderStatus(to) {
		return errs.E(errs.ErrValidation, "unrecognized order status %q", to)
	}
	if !transitionMap[Transition{From: from, To: to}] {
		return errs.E(errs.ErrConflict,
			"invalid transition: %s → %s is not allowed; valid next statuses from %s: %s",
			from, to, from, describeValidFrom(from))
	}
	if !RoleMaySet(role, to) {
		return errs.E(errs.ErrAuthorization,
			"role %q may not move an order to %s", role, to)
	}
	return nil
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal status)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full state machine for documentation
func AllTransitions() []Transition {
	return validTransitions
}
