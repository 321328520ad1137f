package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"ratehub/internal/errors"
	"ratehub/internal/model"
	"ratehub/internal/query"
)

func TestStoreService_ListStoresForAdmin(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	filter := query.Filter{Name: "tech"}
	sort := query.Sort{Field: "name"}
	mockStores.On("List", mock.Anything, filter, sort).Return([]model.Store{
		{ID: uuid.New(), Name: "Tech Gadgets Hub", Ratings: ratingsOf(3, 4)},
		{ID: uuid.New(), Name: "Tech Outlet", Ratings: nil},
	}, nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	result, err := svc.ListStoresForAdmin(context.Background(), filter, sort)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Tech Gadgets Hub", result[0].Name)
	assert.Equal(t, "3.5", result[0].AverageRating)
	assert.Equal(t, "0.0", result[1].AverageRating)
	mockStores.AssertExpectations(t)
}

func TestStoreService_ListStoresForAdmin_NoMatchesIsEmpty(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	filter := query.Filter{Name: "nothing"}
	mockStores.On("List", mock.Anything, filter, query.Sort{}).Return([]model.Store{}, nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	result, err := svc.ListStoresForAdmin(context.Background(), filter, query.Sort{})

	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestStoreService_ListStoresForUser(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	callerID := uuid.New()
	otherID := uuid.New()
	ownRatingID := uuid.New()
	rated := model.Store{
		ID:   uuid.New(),
		Name: "Urban Coffee House",
		Ratings: []model.Rating{
			{ID: ownRatingID, Value: 4, UserID: callerID},
			{ID: uuid.New(), Value: 2, UserID: otherID},
		},
	}
	unrated := model.Store{
		ID:      uuid.New(),
		Name:    "Gourmet Bites",
		Ratings: []model.Rating{{ID: uuid.New(), Value: 5, UserID: otherID}},
	}

	filter := query.Filter{}
	mockStores.On("List", mock.Anything, filter, query.Sort{}).Return([]model.Store{rated, unrated}, nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	result, err := svc.ListStoresForUser(context.Background(), callerID, filter)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	assert.Equal(t, "3.0", result[0].OverallRating)
	if assert.NotNil(t, result[0].UserSubmittedRating) {
		assert.Equal(t, 4, *result[0].UserSubmittedRating)
	}
	if assert.NotNil(t, result[0].RatingID) {
		assert.Equal(t, ownRatingID, *result[0].RatingID)
	}

	// Not yet rated: aggregate present, own rating null.
	assert.Equal(t, "5.0", result[1].OverallRating)
	assert.Nil(t, result[1].UserSubmittedRating)
	assert.Nil(t, result[1].RatingID)
}

func TestStoreService_OwnerDashboard(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	ownerID := uuid.New()
	storeID := uuid.New()
	store := &model.Store{ID: storeID, Name: "Tech Gadgets Hub", OwnerID: &ownerID}
	submitted := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	ratings := []model.Rating{
		{
			Value:     5,
			StoreID:   storeID,
			CreatedAt: submitted,
			User:      model.User{Name: "John Doe the Second Full Name", Email: "john@test.com", Address: "45 Blue Street, New York"},
		},
		{
			Value:   2,
			StoreID: storeID,
			User:    model.User{Name: "Jane Smith Professional Tester", Email: "jane@test.com", Address: "67 Red Avenue, London"},
		},
	}

	mockStores.On("FindByOwnerID", mock.Anything, ownerID).Return(store, nil)
	mockRatings.On("ListByStore", mock.Anything, storeID).Return(ratings, nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	dashboard, err := svc.OwnerDashboard(context.Background(), ownerID, "tech@gadgets.com")

	assert.NoError(t, err)
	assert.Equal(t, "Tech Gadgets Hub", dashboard.StoreName)
	assert.Equal(t, "3.5", dashboard.AverageRating)
	assert.Len(t, dashboard.Ratings, 2)
	assert.Equal(t, "John Doe the Second Full Name", dashboard.Ratings[0].UserName)
	assert.Equal(t, "john@test.com", dashboard.Ratings[0].UserEmail)
	assert.Equal(t, 5, dashboard.Ratings[0].Rating)
	assert.Equal(t, submitted, dashboard.Ratings[0].Date)
}

func TestStoreService_OwnerDashboard_EmailFallback(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	ownerID := uuid.New()
	storeID := uuid.New()
	// Legacy row: no owner link, only the matching email.
	store := &model.Store{ID: storeID, Name: "Green Garden Mart", Email: "garden@mart.com"}

	mockStores.On("FindByOwnerID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)
	mockStores.On("FindByEmail", mock.Anything, "garden@mart.com").Return(store, nil)
	mockRatings.On("ListByStore", mock.Anything, storeID).Return([]model.Rating{}, nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	dashboard, err := svc.OwnerDashboard(context.Background(), ownerID, "garden@mart.com")

	assert.NoError(t, err)
	assert.Equal(t, "Green Garden Mart", dashboard.StoreName)
	assert.Equal(t, "0.0", dashboard.AverageRating)
	assert.Empty(t, dashboard.Ratings)
}

func TestStoreService_OwnerDashboard_NoStoreIsNotFound(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	ownerID := uuid.New()
	mockStores.On("FindByOwnerID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)
	mockStores.On("FindByEmail", mock.Anything, "nobody@test.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	dashboard, err := svc.OwnerDashboard(context.Background(), ownerID, "nobody@test.com")

	assert.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.Nil(t, dashboard)
	mockRatings.AssertNotCalled(t, "ListByStore", mock.Anything, mock.Anything)
}

func TestStoreService_CreateStore_LinksExistingOwner(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	owner := &model.User{ID: uuid.New(), Email: "tech@gadgets.com", Role: model.RoleStoreOwner}
	mockStores.On("FindByEmail", mock.Anything, "tech@gadgets.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("FindByEmail", mock.Anything, "tech@gadgets.com").Return(owner, nil)
	mockStores.On("Create", mock.Anything, mock.AnythingOfType("*model.Store")).Return(nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	store, err := svc.CreateStore(context.Background(), "Tech Gadgets Hub", "tech@gadgets.com", "456 Digital Avenue")

	assert.NoError(t, err)
	if assert.NotNil(t, store.OwnerID) {
		assert.Equal(t, owner.ID, *store.OwnerID)
	}
}

func TestStoreService_CreateStore_DuplicateEmailIsConflict(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	existing := &model.Store{ID: uuid.New(), Email: "tech@gadgets.com"}
	mockStores.On("FindByEmail", mock.Anything, "tech@gadgets.com").Return(existing, nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	store, err := svc.CreateStore(context.Background(), "Another Tech Hub", "tech@gadgets.com", "1 Copy Street")

	assert.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindConflict))
	assert.Nil(t, store)
	mockStores.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStoreService_DashboardStats(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockUsers := new(MockUserRepository)
	mockRatings := new(MockRatingRepository)

	mockUsers.On("Count", mock.Anything).Return(int64(4), nil)
	mockStores.On("Count", mock.Anything).Return(int64(5), nil)
	mockRatings.On("Count", mock.Anything).Return(int64(10), nil)

	svc := NewStoreService(mockStores, mockUsers, mockRatings)
	stats, err := svc.DashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(5), stats.TotalStores)
	assert.Equal(t, int64(10), stats.TotalRatings)
}
