package services

import (
	"testing"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeIssuer struct{}

func (fakeIssuer) Issue(u *models.User) (string, error) { return "token-" + u.ID, nil }

func newAuthFixture() (*AuthService, *memUserRepo) {
	users := newMemUserRepo()
	return NewAuthService(users, fakeIssuer{}), users
}

func seedAccount(users *memUserRepo, email, password string, role models.Role, active bool) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	u := &models.User{Name: email, Email: email, PasswordHash: string(hash), Role: role, Active: active}
	if err := users.Create(u); err != nil {
		panic(err)
	}
	return u
}

func TestLogin(t *testing.T) {
	svc, users := newAuthFixture()
	account := seedAccount(users, "ana@pos.test", "secret1", models.RoleWaiter, true)

	identity, token, err := svc.Login("ana@pos.test", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.ID)
	assert.Equal(t, models.RoleWaiter, identity.Role)
	assert.Equal(t, "token-"+account.ID, token)

	_, _, err = svc.Login("ana@pos.test", "wrong", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthentication)

	_, _, err = svc.Login("ghost@pos.test", "secret1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthentication)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, users := newAuthFixture()
	seedAccount(users, "gone@pos.test", "secret1", models.RoleWaiter, false)

	_, _, err := svc.Login("gone@pos.test", "secret1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthentication)
}

func TestLoginRoleHint(t *testing.T) {
	svc, users := newAuthFixture()
	seedAccount(users, "ana@pos.test", "secret1", models.RoleWaiter, true)
	seedAccount(users, "root@pos.test", "secret1", models.RoleAdmin, true)

	// admin hint admits only admins
	_, _, err := svc.Login("ana@pos.test", "secret1", "admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)

	_, _, err = svc.Login("root@pos.test", "secret1", "admin")
	assert.NoError(t, err)

	// the staff channel shuts admins out
	_, _, err = svc.Login("root@pos.test", "secret1", "staff")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)

	// no hint admits anyone active with correct credentials
	_, _, err = svc.Login("root@pos.test", "secret1", "")
	assert.NoError(t, err)
}

func TestRegisterIsAdminOnly(t *testing.T) {
	svc, _ := newAuthFixture()

	for _, role := range []models.Role{models.RoleHost, models.RoleWaiter, models.RoleChef, models.RoleManager, models.RoleOwner} {
		_, err := svc.Register(asRole(role), "Pat", "pat@pos.test", "secret1", models.RoleWaiter)
		require.Error(t, err, "role %s", role)
		assert.ErrorIs(t, err, errs.ErrAuthorization)
	}

	user, err := svc.Register(asRole(models.RoleAdmin), "Pat", "Pat@POS.test", "secret1", models.RoleWaiter)
	require.NoError(t, err)
	assert.Equal(t, "pat@pos.test", user.Email, "emails are normalized")

	_, err = svc.Register(asRole(models.RoleAdmin), "Pat", "pat@pos.test", "secret1", models.RoleWaiter)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)

	_, err = svc.Register(asRole(models.RoleAdmin), "Pat", "pat2@pos.test", "secret1", models.Role("busboy"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
