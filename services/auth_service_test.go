package services_test

import (
	"errors"
	"regexp"
	"testing"

	"redakce-cms/models"
	"redakce-cms/repositories"
	"redakce-cms/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(repositories.NewUserRepository(db), repositories.NewTokenRepository(db))

	user, err := svc.Register(models.RegisterForm{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "Passw0rd", user.Password)

	logged, err := svc.LoginWeb("bob", "Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.LoginWeb("bob", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidCredentials))
	assert.Equal(t, "Špatné jméno nebo heslo.", err.Error())

	// unknown user gets the same generic message
	_, err = svc.LoginWeb("nobody", "Passw0rd")
	require.Error(t, err)
	assert.Equal(t, "Špatné jméno nebo heslo.", err.Error())
}

func TestRegisterRejectsDuplicatesAndWeakPasswords(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(repositories.NewUserRepository(db), repositories.NewTokenRepository(db))

	_, err := svc.Register(models.RegisterForm{Username: "bob", Email: "bob@example.com", Password: "Passw0rd"})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterForm{Username: "bob", Email: "jiny@example.com", Password: "Passw0rd"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, err = svc.Register(models.RegisterForm{Username: "jiny", Email: "bob@example.com", Password: "Passw0rd"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	// no upper-case letter
	_, err = svc.Register(models.RegisterForm{Username: "eva", Email: "eva@example.com", Password: "passw0rd"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	// no digit
	_, err = svc.Register(models.RegisterForm{Username: "eva", Email: "eva@example.com", Password: "Password"})
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestAPILoginMintsToken(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(repositories.NewUserRepository(db), repositories.NewTokenRepository(db))
	user := newUser(t, db, "editorka", models.RoleEditor, "Passw0rd")

	resp, err := svc.LoginAPI("editorka", "Passw0rd")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{24}$`), resp.Token)
	assert.Equal(t, models.RoleEditor, resp.Role)
	assert.Equal(t, "editorka", resp.Username)

	resolved, err := svc.ResolveToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	// a second login issues a second, independent token
	resp2, err := svc.LoginAPI("editorka", "Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, resp.Token, resp2.Token)

	_, err = svc.ResolveToken(resp.Token)
	assert.NoError(t, err, "older tokens stay valid")

	_, err = svc.ResolveToken("deadbeefdeadbeefdeadbeef")
	assert.True(t, errors.Is(err, models.ErrInvalidCredentials))
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	svc := services.NewAuthService(userRepo, repositories.NewTokenRepository(db))
	user := newUser(t, db, "bob", models.RoleUser, "Passw0rd")
	db.Model(user).Updates(map[string]interface{}{"force_password_change": true})

	err := svc.ChangePassword(user.ID, models.ChangePasswordForm{Password: "Kratke1", Confirm: "Kratke1"})
	assert.True(t, errors.Is(err, models.ErrValidation), "too short")

	err = svc.ChangePassword(user.ID, models.ChangePasswordForm{Password: "NoveHeslo1", Confirm: "JineHeslo1"})
	assert.True(t, errors.Is(err, models.ErrValidation), "confirmation mismatch")

	err = svc.ChangePassword(user.ID, models.ChangePasswordForm{Password: "noveheslo1", Confirm: "noveheslo1"})
	assert.True(t, errors.Is(err, models.ErrValidation), "missing upper-case")

	require.NoError(t, svc.ChangePassword(user.ID, models.ChangePasswordForm{Password: "NoveHeslo1", Confirm: "NoveHeslo1"}))

	updated, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.False(t, updated.ForcePasswordChange)
	assert.Nil(t, updated.TempPasswordIssuedAt)

	_, err = svc.LoginWeb("bob", "NoveHeslo1")
	assert.NoError(t, err)
	_, err = svc.LoginWeb("bob", "Passw0rd")
	assert.Error(t, err)
}
