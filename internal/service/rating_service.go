package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ratehub/internal/errors"
	"ratehub/internal/model"
	"ratehub/internal/repository"
	"ratehub/internal/view"
)

// RatingService is the rating ledger: it enforces at most one rating per
// (user, store) pair with upsert semantics.
type RatingService interface {
	SubmitRating(ctx context.Context, userID, storeID uuid.UUID, value int) (*view.RatingView, error)
}

type ratingService struct {
	ratings repository.RatingRepository
	stores  repository.StoreRepository
}

// NewRatingService builds a RatingService.
func NewRatingService(ratings repository.RatingRepository, stores repository.StoreRepository) RatingService {
	return &ratingService{ratings: ratings, stores: stores}
}

// SubmitRating creates the caller's rating for a store, or overwrites it if
// one already exists. Out-of-range values fail before any lookup; a missing
// store fails before any write. The unique index on (user_id, store_id)
// adjudicates concurrent first submissions: losing the create race converts
// the call into an update.
func (s *ratingService) SubmitRating(ctx context.Context, userID, storeID uuid.UUID, value int) (*view.RatingView, error) {
	if value < model.MinRatingValue || value > model.MaxRatingValue {
		return nil, errors.Validation("rating must be between %d and %d", model.MinRatingValue, model.MaxRatingValue)
	}

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("store not found")
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	existing, err := s.ratings.FindByUserAndStore(ctx, userID, storeID)
	if err == nil {
		return s.overwrite(ctx, existing, value)
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find rating: %w", err)
	}

	rating := &model.Rating{UserID: userID, StoreID: storeID, Value: value}
	if err := s.ratings.Create(ctx, rating); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the create race; the row now exists, so update it.
			current, ferr := s.ratings.FindByUserAndStore(ctx, userID, storeID)
			if ferr != nil {
				return nil, errors.Conflict("concurrent rating submission")
			}
			return s.overwrite(ctx, current, value)
		}
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return view.OwnRating(rating), nil
}

func (s *ratingService) overwrite(ctx context.Context, rating *model.Rating, value int) (*view.RatingView, error) {
	rating.Value = value
	if err := s.ratings.Update(ctx, rating); err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}
	return view.OwnRating(rating), nil
}
