package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"ratehub/internal/errors"
	"ratehub/internal/model"
)

func TestRatingService_SubmitRating_Validation(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{name: "below minimum", value: 0},
		{name: "above maximum", value: 6},
		{name: "negative", value: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRatings := new(MockRatingRepository)
			mockStores := new(MockStoreRepository)
			svc := NewRatingService(mockRatings, mockStores)

			result, err := svc.SubmitRating(context.Background(), uuid.New(), uuid.New(), tt.value)

			assert.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindValidation))
			assert.Nil(t, result)
			// An invalid value must never reach the store or the ledger.
			mockStores.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			mockRatings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			mockRatings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestRatingService_SubmitRating_StoreMissing(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockStores := new(MockStoreRepository)
	storeID := uuid.New()
	mockStores.On("FindByID", mock.Anything, storeID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewRatingService(mockRatings, mockStores)
	result, err := svc.SubmitRating(context.Background(), uuid.New(), storeID, 4)

	assert.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.Nil(t, result)
	mockRatings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRatings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRatingService_SubmitRating_FirstWriteCreates(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockStores := new(MockStoreRepository)
	userID := uuid.New()
	storeID := uuid.New()

	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID}, nil)
	mockRatings.On("FindByUserAndStore", mock.Anything, userID, storeID).Return(nil, gorm.ErrRecordNotFound)
	mockRatings.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).Return(nil)

	svc := NewRatingService(mockRatings, mockStores)
	result, err := svc.SubmitRating(context.Background(), userID, storeID, 4)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 4, result.Value)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, storeID, result.StoreID)
	mockRatings.AssertExpectations(t)
	mockRatings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRatingService_SubmitRating_ResubmissionUpdates(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockStores := new(MockStoreRepository)
	userID := uuid.New()
	storeID := uuid.New()
	existing := &model.Rating{ID: uuid.New(), Value: 2, UserID: userID, StoreID: storeID}

	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID}, nil)
	mockRatings.On("FindByUserAndStore", mock.Anything, userID, storeID).Return(existing, nil)
	mockRatings.On("Update", mock.Anything, existing).Return(nil)

	svc := NewRatingService(mockRatings, mockStores)
	result, err := svc.SubmitRating(context.Background(), userID, storeID, 5)

	assert.NoError(t, err)
	// The existing row is overwritten in place; the second value wins.
	assert.Equal(t, existing.ID, result.ID)
	assert.Equal(t, 5, result.Value)
	mockRatings.AssertExpectations(t)
	mockRatings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRatingService_SubmitRating_ResubmissionSameValueIsNoop(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockStores := new(MockStoreRepository)
	userID := uuid.New()
	storeID := uuid.New()
	existing := &model.Rating{ID: uuid.New(), Value: 3, UserID: userID, StoreID: storeID}

	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID}, nil)
	mockRatings.On("FindByUserAndStore", mock.Anything, userID, storeID).Return(existing, nil)
	mockRatings.On("Update", mock.Anything, existing).Return(nil)

	svc := NewRatingService(mockRatings, mockStores)
	result, err := svc.SubmitRating(context.Background(), userID, storeID, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Value)
	mockRatings.AssertExpectations(t)
}

func TestRatingService_SubmitRating_LostCreateRaceBecomesUpdate(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockStores := new(MockStoreRepository)
	userID := uuid.New()
	storeID := uuid.New()
	// Another request created the row between our lookup and our create; the
	// unique index rejects the duplicate and the winner's row gets updated.
	winner := &model.Rating{ID: uuid.New(), Value: 2, UserID: userID, StoreID: storeID}

	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID}, nil)
	mockRatings.On("FindByUserAndStore", mock.Anything, userID, storeID).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRatings.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).Return(gorm.ErrDuplicatedKey)
	mockRatings.On("FindByUserAndStore", mock.Anything, userID, storeID).Return(winner, nil).Once()
	mockRatings.On("Update", mock.Anything, winner).Return(nil)

	svc := NewRatingService(mockRatings, mockStores)
	result, err := svc.SubmitRating(context.Background(), userID, storeID, 5)

	assert.NoError(t, err)
	assert.Equal(t, winner.ID, result.ID)
	assert.Equal(t, 5, result.Value)
	mockRatings.AssertExpectations(t)
}

func TestRatingService_SubmitRating_UnresolvedRaceIsConflict(t *testing.T) {
	mockRatings := new(MockRatingRepository)
	mockStores := new(MockStoreRepository)
	userID := uuid.New()
	storeID := uuid.New()

	mockStores.On("FindByID", mock.Anything, storeID).Return(&model.Store{ID: storeID}, nil)
	mockRatings.On("FindByUserAndStore", mock.Anything, userID, storeID).Return(nil, gorm.ErrRecordNotFound)
	mockRatings.On("Create", mock.Anything, mock.AnythingOfType("*model.Rating")).Return(gorm.ErrDuplicatedKey)

	svc := NewRatingService(mockRatings, mockStores)
	result, err := svc.SubmitRating(context.Background(), userID, storeID, 5)

	assert.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindConflict))
	assert.Nil(t, result)
}
