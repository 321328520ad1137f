package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ratehub/internal/errors"
	"ratehub/internal/model"
	"ratehub/internal/query"
	"ratehub/internal/repository"
	"ratehub/internal/view"
)

// UserService exposes admin user management.
type UserService interface {
	CreateUser(ctx context.Context, name, email, password, address string, role model.Role) (*model.User, error)
	ListUsers(ctx context.Context, filter query.Filter, sort query.Sort) ([]view.UserAdminView, error)
}

type userService struct {
	users  repository.UserRepository
	stores repository.StoreRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, stores repository.StoreRepository) UserService {
	return &userService{users: users, stores: stores}
}

// CreateUser creates a user of any role on behalf of an administrator. When
// the new user is a STORE_OWNER and an unowned store carries the same email,
// the store's owner link is backfilled.
func (s *userService) CreateUser(ctx context.Context, name, email, password, address string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, errors.Validation("role must be one of ADMIN, USER, STORE_OWNER")
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	if existing, err := s.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("email already in use")
	} else if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Address:      address,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.Conflict("email already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if role == model.RoleStoreOwner {
		if err := s.backfillOwner(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *userService) backfillOwner(ctx context.Context, owner *model.User) error {
	store, err := s.stores.FindByEmail(ctx, owner.Email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find store for owner: %w", err)
	}
	if store.OwnerID != nil {
		return nil
	}
	ownerID := owner.ID
	store.OwnerID = &ownerID
	if err := s.stores.Update(ctx, store); err != nil {
		return fmt.Errorf("backfill store owner: %w", err)
	}
	return nil
}

// ListUsers returns the admin user listing.
func (s *userService) ListUsers(ctx context.Context, filter query.Filter, sort query.Sort) ([]view.UserAdminView, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, errors.Validation("role must be one of ADMIN, USER, STORE_OWNER")
	}
	users, err := s.users.List(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]view.UserAdminView, 0, len(users))
	for _, user := range users {
		result = append(result, view.AdminUser(user))
	}
	return result, nil
}
