package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantapp/internal/user"
	"merchantapp/internal/user/repository"
	"merchantapp/pkg/hash"
)

func TestRoleFromEmail(t *testing.T) {
	assert.Equal(t, user.RoleAdmin, RoleFromEmail("admin@grabber.com"))
	assert.Equal(t, user.RoleAdmin, RoleFromEmail("superadmin@shop.in"))
	assert.Equal(t, user.RoleMerchant, RoleFromEmail("rajesh@techworld.com"))
}

func TestRegister(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	u, err := svc.Register(ctx, "rajesh@techworld.com", "secret123", user.RoleMerchant)
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEmpty(t, u.MerchantID)
	assert.True(t, hash.CheckPassword(u.Password, "secret123"))

	_, err = svc.Register(ctx, "rajesh@techworld.com", "other", user.RoleMerchant)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterAdminHasNoMerchantID(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())

	u, err := svc.Register(context.Background(), "admin@grabber.com", "secret123", user.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, u.MerchantID)
}

func TestLoginProvisionsUnknownEmail(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())
	ctx := context.Background()

	u, err := svc.Login(ctx, "new.merchant@shop.in", "whatever")
	require.NoError(t, err)
	assert.Equal(t, user.RoleMerchant, u.Role)
	assert.NotEmpty(t, u.MerchantID)

	// same email logs into the same profile, password is never checked
	again, err := svc.Login(ctx, "new.merchant@shop.in", "different")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, u.MerchantID, again.MerchantID)
}

func TestLoginAdminRole(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())

	u, err := svc.Login(context.Background(), "admin@grabber.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)

	ok, err := svc.IsAdmin(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
