package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ratehub/internal/model"
	"ratehub/internal/query"
)

// StoreRepository defines store persistence operations.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	Update(ctx context.Context, store *model.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error)
	FindByEmail(ctx context.Context, email string) (*model.Store, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Store, error)
	List(ctx context.Context, filter query.Filter, sort query.Sort) ([]model.Store, error)
	Count(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository builds a GORM-backed repository.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) Update(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByEmail(ctx context.Context, email string) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Store, error) {
	var store model.Store
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// List returns matching stores with their ratings preloaded, so callers can
// fold averages without further round trips.
func (r *storeRepository) List(ctx context.Context, filter query.Filter, sort query.Sort) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Preload("Ratings").
		Scopes(filter.Scope(), sort.Scope(query.StoreSortFields)).
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Store{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
