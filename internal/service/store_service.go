package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ratehub/internal/errors"
	"ratehub/internal/model"
	"ratehub/internal/query"
	"ratehub/internal/repository"
	"ratehub/internal/view"
)

// StoreService exposes store creation, the role-scoped store listings, the
// store owner dashboard and the admin summary counts.
type StoreService interface {
	CreateStore(ctx context.Context, name, email, address string) (*model.Store, error)
	ListStoresForAdmin(ctx context.Context, filter query.Filter, sort query.Sort) ([]view.StoreAdminView, error)
	ListStoresForUser(ctx context.Context, callerID uuid.UUID, filter query.Filter) ([]view.StoreUserView, error)
	OwnerDashboard(ctx context.Context, callerID uuid.UUID, callerEmail string) (*view.OwnerDashboardView, error)
	DashboardStats(ctx context.Context) (*view.DashboardStatsView, error)
}

type storeService struct {
	stores  repository.StoreRepository
	users   repository.UserRepository
	ratings repository.RatingRepository
}

// NewStoreService builds a StoreService.
func NewStoreService(stores repository.StoreRepository, users repository.UserRepository, ratings repository.RatingRepository) StoreService {
	return &storeService{stores: stores, users: users, ratings: ratings}
}

// CreateStore creates a store. When a STORE_OWNER user already exists with
// the store's email, the owner link is set at creation.
func (s *storeService) CreateStore(ctx context.Context, name, email, address string) (*model.Store, error) {
	if existing, err := s.stores.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("store email already in use")
	} else if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check store existence: %w", err)
	}

	store := &model.Store{Name: name, Email: email, Address: address}
	if owner, err := s.users.FindByEmail(ctx, email); err == nil && owner.Role == model.RoleStoreOwner {
		ownerID := owner.ID
		store.OwnerID = &ownerID
	} else if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	if err := s.stores.Create(ctx, store); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.Conflict("store email already in use")
		}
		return nil, fmt.Errorf("create store: %w", err)
	}
	return store, nil
}

// ListStoresForAdmin returns every matching store decorated with its average
// rating. Averages are recomputed from current rows on every call.
func (s *storeService) ListStoresForAdmin(ctx context.Context, filter query.Filter, sort query.Sort) ([]view.StoreAdminView, error) {
	stores, err := s.stores.List(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	result := make([]view.StoreAdminView, 0, len(stores))
	for _, store := range stores {
		result = append(result, view.AdminStore(store, AverageRating(store.Ratings)))
	}
	return result, nil
}

// ListStoresForUser returns matching stores with the overall average and the
// caller's own rating, when present, on each row.
func (s *storeService) ListStoresForUser(ctx context.Context, callerID uuid.UUID, filter query.Filter) ([]view.StoreUserView, error) {
	stores, err := s.stores.List(ctx, filter, query.Sort{})
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	result := make([]view.StoreUserView, 0, len(stores))
	for _, store := range stores {
		var own *model.Rating
		for i := range store.Ratings {
			if store.Ratings[i].UserID == callerID {
				own = &store.Ratings[i]
				break
			}
		}
		result = append(result, view.UserStore(store, AverageRating(store.Ratings), own))
	}
	return result, nil
}

// OwnerDashboard resolves the caller's store by the explicit owner link
// first, then by legacy email equality, and returns its ratings decorated
// with rater details. No store on either path is an explicit not-found
// outcome.
func (s *storeService) OwnerDashboard(ctx context.Context, callerID uuid.UUID, callerEmail string) (*view.OwnerDashboardView, error) {
	store, err := s.stores.FindByOwnerID(ctx, callerID)
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find store by owner: %w", err)
		}
		store, err = s.stores.FindByEmail(ctx, callerEmail)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.NotFound("no store found for this owner")
			}
			return nil, fmt.Errorf("find store by email: %w", err)
		}
	}

	ratings, err := s.ratings.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	return view.OwnerDashboard(store, AverageRating(ratings), ratings), nil
}

// DashboardStats returns the admin landing counts.
func (s *storeService) DashboardStats(ctx context.Context) (*view.DashboardStatsView, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalStores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}
	totalRatings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}
	return &view.DashboardStatsView{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
