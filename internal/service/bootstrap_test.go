package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"ratehub/internal/model"
)

func TestEnsureAdmin_CreatesWhenMissing(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(0), nil)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		admin := args.Get(1).(*model.User)
		assert.Equal(t, model.RoleAdmin, admin.Role)
		assert.Equal(t, "admin@roxiler.com", admin.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin@123")))
	}).Return(nil)

	created, err := EnsureAdmin(context.Background(), mockUsers, "System Administrator", "admin@roxiler.com", "Admin@123", "Main Office")

	assert.NoError(t, err)
	assert.True(t, created)
	mockUsers.AssertExpectations(t)
}

func TestEnsureAdmin_SkipsWhenPresent(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("CountByRole", mock.Anything, model.RoleAdmin).Return(int64(1), nil)

	created, err := EnsureAdmin(context.Background(), mockUsers, "System Administrator", "admin@roxiler.com", "Admin@123", "Main Office")

	assert.NoError(t, err)
	assert.False(t, created)
	// Second and later starts never touch the users table.
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
