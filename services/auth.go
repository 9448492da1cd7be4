package services

import (
	"strings"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/policy"
	"restaurant-pos-api/repository"

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs a token for an authenticated user. Implemented by
// middleware.TokenManager; injected so the service stays transport-free.
type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login authenticates by email and password. roleHint restricts which
// accounts may use the channel: "admin" admits only admin accounts, any
// other non-empty hint explicitly shuts admin accounts out.
func (s *AuthService) Login(email, password, roleHint string) (*models.Identity, string, error) {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Do not leak whether the account exists
		return nil, "", errs.E(errs.ErrAuthentication, "invalid email or password")
	}
	if !user.Active {
		return nil, "", errs.E(errs.ErrAuthentication, "account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", errs.E(errs.ErrAuthentication, "invalid email or password")
	}

	switch {
	case roleHint == "":
		// any active account may log in without a hint
	case roleHint == string(models.RoleAdmin):
		if user.Role != models.RoleAdmin {
			return nil, "", errs.E(errs.ErrAuthorization, "this login channel is for admin accounts only")
		}
	default:
		if user.Role == models.RoleAdmin {
			return nil, "", errs.E(errs.ErrAuthorization, "admin accounts must use the admin login channel")
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	identity := &models.Identity{ID: user.ID, Email: user.Email, Role: user.Role}
	return identity, token, nil
}

// Register provisions a new account. Only admin callers may use it; staff
// creation for lower roles goes through the staff service.
func (s *AuthService) Register(actor models.Identity, name, email, password string, role models.Role) (*models.User, error) {
	if !policy.IsAtLeast(actor.Role, models.RoleAdmin) {
		return nil, errs.E(errs.ErrAuthorization, "only admins may register accounts")
	}
	if !models.ValidRole(role) {
		return nil, errs.E(errs.ErrValidation, "invalid role %q", role)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, errs.E(errs.ErrConflict, "email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
