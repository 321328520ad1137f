// Package view holds the role-scoped projections of domain records. Each
// role gets its own tagged variant; handlers never shape entities inline.
package view

import (
	"time"

	"github.com/google/uuid"

	"ratehub/internal/model"
)

// ProfileView is the authenticated user's own record, returned from auth
// endpoints. The password hash is never part of any view.
type ProfileView struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Role    model.Role `json:"role"`
}

// Profile projects a user for the user themself.
func Profile(u *model.User) ProfileView {
	return ProfileView{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    u.Role,
	}
}

// UserAdminView is a user row as seen by an administrator.
type UserAdminView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AdminUser projects a user for the admin listing.
func AdminUser(u model.User) UserAdminView {
	return UserAdminView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// StoreAdminView is a store row as seen by an administrator, decorated with
// its aggregate rating.
type StoreAdminView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	OwnerID       *uuid.UUID `json:"ownerId,omitempty"`
	AverageRating string     `json:"averageRating"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// AdminStore projects a store for the admin listing.
func AdminStore(s model.Store, averageRating string) StoreAdminView {
	return StoreAdminView{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Address:       s.Address,
		OwnerID:       s.OwnerID,
		AverageRating: averageRating,
		CreatedAt:     s.CreatedAt,
	}
}

// StoreUserView is a store row as seen by a normal user: name, address, the
// overall aggregate, and the caller's own rating when one exists. RatingID is
// carried so the client can follow up with an update.
type StoreUserView struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Address             string     `json:"address"`
	OverallRating       string     `json:"overallRating"`
	UserSubmittedRating *int       `json:"userSubmittedRating"`
	RatingID            *uuid.UUID `json:"ratingId"`
}

// UserStore projects a store for the user-facing listing. own may be nil,
// meaning the caller has not rated this store yet.
func UserStore(s model.Store, averageRating string, own *model.Rating) StoreUserView {
	v := StoreUserView{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		OverallRating: averageRating,
	}
	if own != nil {
		value := own.Value
		ratingID := own.ID
		v.UserSubmittedRating = &value
		v.RatingID = &ratingID
	}
	return v
}

// RatingView is the rating as returned to its submitter.
type RatingView struct {
	ID        uuid.UUID `json:"id"`
	Value     int       `json:"value"`
	UserID    uuid.UUID `json:"userId"`
	StoreID   uuid.UUID `json:"storeId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnRating projects a rating for the user who submitted it.
func OwnRating(r *model.Rating) *RatingView {
	return &RatingView{
		ID:        r.ID,
		Value:     r.Value,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		UpdatedAt: r.UpdatedAt,
	}
}

// OwnerRatingView is a single rating row on the store owner's dashboard,
// decorated with the rater's details.
type OwnerRatingView struct {
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Address   string    `json:"address"`
	Rating    int       `json:"rating"`
	Date      time.Time `json:"date"`
}

// OwnerDashboardView is everything a store owner sees: their store's name,
// its aggregate, and who rated it.
type OwnerDashboardView struct {
	StoreName     string            `json:"storeName"`
	AverageRating string            `json:"averageRating"`
	Ratings       []OwnerRatingView `json:"ratings"`
}

// OwnerDashboard projects a store and its ratings for the owner. Ratings must
// have their User association populated.
func OwnerDashboard(s *model.Store, averageRating string, ratings []model.Rating) *OwnerDashboardView {
	rows := make([]OwnerRatingView, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, OwnerRatingView{
			UserName:  r.User.Name,
			UserEmail: r.User.Email,
			Address:   r.User.Address,
			Rating:    r.Value,
			Date:      r.CreatedAt,
		})
	}
	return &OwnerDashboardView{
		StoreName:     s.Name,
		AverageRating: averageRating,
		Ratings:       rows,
	}
}

// DashboardStatsView is the admin landing summary.
type DashboardStatsView struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
