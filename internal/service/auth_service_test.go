package service

import (
	"context"
	"errors"
	"testing"

	"chat-space-be/internal/dto"
	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterPasswordValidationRunsFirst(t *testing.T) {
	store := memory.NewStore()
	// Any repository call would surface this error, proving validation
	// short-circuits before the backend is touched.
	store.ForcedErr = errors.New("backend must not be called")
	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:        "Ana Silva",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	assert.EqualError(t, err, "Passwords do not match")

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:        "Ana Silva",
		Email:           "ana@example.com",
		Password:        "short",
		ConfirmPassword: "short",
	})
	assert.EqualError(t, err, "Password must be at least 6 characters")
}

func TestRegisterCreatesOnlineUserProfile(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:        "Ana Silva",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "user", res.Profile.Role)
	assert.Equal(t, "online", res.Profile.Status)

	profiles := store.Profiles()
	assert.Len(t, profiles, 1)
	assert.NotNil(t, profiles[0].PasswordHash)
	assert.NotEqual(t, "secret1", *profiles[0].PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	seedProfile(store, "Ana Silva", "ana@example.com", entity.ProfileRoleUser)
	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:        "Another Ana",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.Error(t, err)
	assert.Len(t, store.Profiles(), 1)
}

func TestLoginErrorsAreGeneric(t *testing.T) {
	store := memory.NewStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.DefaultCost)
	hashStr := string(hash)
	p := seedProfile(store, "Ana Silva", "ana@example.com", entity.ProfileRoleUser)
	p.PasswordHash = &hashStr

	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})

	// Unknown email and wrong password produce the same message.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginMarksProfileOnline(t *testing.T) {
	store := memory.NewStore()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.DefaultCost)
	hashStr := string(hash)
	p := seedProfile(store, "Ana Silva", "ana@example.com", entity.ProfileRoleUser)
	p.PasswordHash = &hashStr

	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "correct-pass"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "online", res.Profile.Status)
	assert.Equal(t, entity.ProfileStatusOnline, store.Profiles()[0].Status)
}

func TestRequireAdminUsesStoredRoleNotClaims(t *testing.T) {
	store := memory.NewStore()
	admin := seedProfile(store, "Admin", "admin@example.com", entity.ProfileRoleAdmin)
	demoted := seedProfile(store, "Former Admin", "former@example.com", entity.ProfileRoleUser)

	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})

	assert.NoError(t, svc.RequireAdmin(context.Background(), admin.Id))

	// A user whose stored role is no longer admin is rejected regardless of
	// what their still-valid token claims.
	err := svc.RequireAdmin(context.Background(), demoted.Id)
	assert.True(t, errors.Is(err, ErrForbidden))

	// A deleted profile loses access entirely.
	err = svc.RequireAdmin(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	store := memory.NewStore()
	p := seedProfile(store, "Ana Silva", "ana@example.com", entity.ProfileRoleUser)

	svc := NewAuthService(memory.NewFactory(store), nil, noopLogger{})
	assert.NoError(t, svc.Logout(context.Background(), p.Id))
	assert.Equal(t, entity.ProfileStatusOffline, store.Profiles()[0].Status)

	// A backend failure still yields a clean logout for the caller.
	store.ForcedErr = errors.New("db down")
	assert.NoError(t, svc.Logout(context.Background(), p.Id))
}
