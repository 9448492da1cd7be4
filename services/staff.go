package services

import (
	"strings"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
	"restaurant-pos-api/repository"

	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	users repository.UserRepository
}

func NewStaffService(users repository.UserRepository) *StaffService {
	return &StaffService{users: users}
}

// List returns staff records. Without a filter the listing needs the
// staff permission and admins are left out of the result. The one
// broadening: any authenticated staff member may ask for role=waiter,
// which hosts need when assigning tables.
func (s *StaffService) List(actor models.Identity, roleFilter models.Role) ([]models.User, error) {
	switch {
	case roleFilter == models.RoleWaiter:
		if !policy.HasPermission(actor.Role, policy.PermViewStaff) {
			return nil, errs.E(errs.ErrAuthorization, "role %q may not view staff", actor.Role)
		}
	case roleFilter == models.RoleAdmin:
		if actor.Role != models.RoleAdmin {
			return nil, errs.E(errs.ErrAuthorization, "admin accounts are only visible to admins")
		}
	case roleFilter != "" && !models.ValidRole(roleFilter):
		return nil, errs.E(errs.ErrValidation, "invalid role %q", roleFilter)
	default:
		if !policy.HasPermission(actor.Role, policy.PermStaff) {
			return nil, errs.E(errs.ErrAuthorization, "role %q may not list staff", actor.Role)
		}
	}

	users, err := s.users.List(roleFilter)
	if err != nil {
		return nil, err
	}
	if roleFilter != "" {
		return users, nil
	}
	// unfiltered listings never include admin accounts
	staff := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role != models.RoleAdmin {
			staff = append(staff, u)
		}
	}
	return staff, nil
}

func (s *StaffService) Get(actor models.Identity, id string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleAdmin && actor.Role != models.RoleAdmin {
		return nil, errs.E(errs.ErrAuthorization, "admin accounts are only visible to admins")
	}
	return user, nil
}

type CreateStaffInput struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"required"`
}

// Create provisions a staff account, gated by the provisioning hierarchy:
// managers hire waiters, hosts, and chefs; owners also hire managers;
// only admins touch admin or owner accounts.
func (s *StaffService) Create(actor models.Identity, in CreateStaffInput) (*models.User, error) {
	if !models.ValidRole(in.Role) {
		return nil, errs.E(errs.ErrValidation, "invalid role %q", in.Role)
	}
	if !policy.CanManageTargetRole(actor.Role, in.Role) {
		return nil, errs.E(errs.ErrAuthorization, "role %q may not create %s accounts", actor.Role, in.Role)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, errs.E(errs.ErrConflict, "email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type StaffPatch struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

func (s *StaffService) Update(actor models.Identity, id string, patch StaffPatch) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageTargetRole(actor.Role, user.Role) {
		return nil, errs.E(errs.ErrAuthorization, "role %q may not modify %s accounts", actor.Role, user.Role)
	}

	if patch.Role != nil {
		if !models.ValidRole(*patch.Role) {
			return nil, errs.E(errs.ErrValidation, "invalid role %q", *patch.Role)
		}
		// the caller must outrank the new role too
		if !policy.CanManageTargetRole(actor.Role, *patch.Role) {
			return nil, errs.E(errs.ErrAuthorization, "role %q may not grant the %s role", actor.Role, *patch.Role)
		}
		user.Role = *patch.Role
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email != user.Email {
			if _, err := s.users.GetByEmail(email); err == nil {
				return nil, errs.E(errs.ErrConflict, "email %s is already registered", email)
			}
			user.Email = email
		}
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate soft-deletes a staff account; the row is never removed
func (s *StaffService) Deactivate(actor models.Identity, id string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageTargetRole(actor.Role, user.Role) {
		return nil, errs.E(errs.ErrAuthorization, "role %q may not deactivate %s accounts", actor.Role, user.Role)
	}
	user.Active = false
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
