package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ratehub/internal/model"
	"ratehub/internal/repository"
)

// EnsureAdmin creates the default administrator account when no ADMIN user
// exists yet. It is safe to run on every process start. Returns whether an
// account was created.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, name, email, password, address string) (bool, error) {
	count, err := users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Address:      address,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
