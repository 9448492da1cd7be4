// Package policy is the single place where role authority is decided.
// Handlers and services ask it three questions: does this role rank high
// enough, does it hold a permission tag, and may it provision staff of a
// target role. Nothing in here touches entity state.
package policy

import "restaurant-pos-api/models"

// Permission tags gate whole areas of the API
type Permission string

const (
	PermTables       Permission = "tables"
	PermMenu         Permission = "menu"
	PermOrders       Permission = "orders"
	PermPayments     Permission = "payments"
	PermStaff        Permission = "staff"
	PermReports      Permission = "reports"
	PermAssignTables Permission = "assign_tables"
	PermViewStaff    Permission = "view_staff"
)

// roleTiers ranks roles for coarse comparison. Waiter and chef share a
// tier on purpose: they are lateral roles with disjoint permissions.
var roleTiers = map[models.Role]int{
	models.RoleHost:    1,
	models.RoleWaiter:  2,
	models.RoleChef:    2,
	models.RoleManager: 3,
	models.RoleOwner:   4,
	models.RoleAdmin:   5,
}

// rolePermissions maps each role to the areas it may act in. Admin is not
// listed; it passes every check via the wildcard in HasPermission.
var rolePermissions = map[models.Role][]Permission{
	models.RoleHost: {
		PermTables,
		PermViewStaff,
	},
	models.RoleWaiter: {
		PermTables,
		PermOrders,
		PermPayments,
		PermViewStaff,
	},
	models.RoleChef: {
		PermOrders,
		PermViewStaff,
	},
	models.RoleManager: {
		PermTables,
		PermMenu,
		PermOrders,
		PermPayments,
		PermStaff,
		PermReports,
		PermAssignTables,
		PermViewStaff,
	},
	models.RoleOwner: {
		PermTables,
		PermMenu,
		PermOrders,
		PermPayments,
		PermStaff,
		PermReports,
		PermAssignTables,
		PermViewStaff,
	},
}

type permKey struct {
	role models.Role
	perm Permission
}

// Build a lookup map for O(1) permission checks
var permissionSet = func() map[permKey]bool {
	m := make(map[permKey]bool)
	for role, perms := range rolePermissions {
		for _, p := range perms {
			m[permKey{role, p}] = true
		}
	}
	return m
}()

// Tier returns the hierarchy rank of a role (0 for unknown roles)
func Tier(role models.Role) int {
	return roleTiers[role]
}

// IsAtLeast reports whether role satisfies a check requiring required.
// Tier comparison is the fallback; lateral roles need the explicit rules:
// a chef requirement is about kitchen responsibility, not rank, so a
// waiter's equal tier does not satisfy it (nor does a manager's higher
// one — only chef and admin pass).
func IsAtLeast(role, required models.Role) bool {
	if role == models.RoleAdmin {
		return true
	}
	if required == models.RoleChef {
		return role == models.RoleChef
	}
	if role == models.RoleChef && required != models.RoleChef {
		// chef's tier-2 rank does not stand in for waiter duties
		return required == models.RoleHost
	}
	return Tier(role) >= Tier(required)
}

// HasPermission reports whether role may act in the area tagged perm
func HasPermission(role models.Role, perm Permission) bool {
	if role == models.RoleAdmin {
		return true
	}
	return permissionSet[permKey{role, perm}]
}

// manageableRoles is the staff-provisioning hierarchy: who may create,
// modify, or deactivate accounts of which target roles. Distinct from the
// general permission matrix.
var manageableRoles = map[models.Role][]models.Role{
	models.RoleAdmin:   {models.RoleHost, models.RoleWaiter, models.RoleChef, models.RoleManager, models.RoleOwner, models.RoleAdmin},
	models.RoleOwner:   {models.RoleHost, models.RoleWaiter, models.RoleChef, models.RoleManager},
	models.RoleManager: {models.RoleHost, models.RoleWaiter, models.RoleChef},
}

// CanManageTargetRole reports whether acting may provision or modify a
// staff account holding target
func CanManageTargetRole(acting, target models.Role) bool {
	for _, r := range manageableRoles[acting] {
		if r == target {
			return true
		}
	}
	return false
}
