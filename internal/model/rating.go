package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating value bounds.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is a single user's rating of a single store. The composite unique
// index guarantees at most one row per (user, store) pair; concurrent
// duplicate creates are rejected by the database, not coordinated in code.
type Rating struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Value     int       `json:"value" gorm:"not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_ratings_user_store,priority:1"`
	StoreID   uuid.UUID `json:"store_id" gorm:"type:char(36);not null;uniqueIndex:idx_ratings_user_store,priority:2"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Store Store `json:"-" gorm:"foreignKey:StoreID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
