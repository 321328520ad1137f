package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents a rateable store. OwnerID links it to its STORE_OWNER
// user when one exists; older rows may only carry the matching email, so
// owner resolution falls back to email equality.
type Store struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string     `json:"name" gorm:"size:255;not null;index"`
	Email     string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Address   string     `json:"address" gorm:"size:400;not null"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Ratings []Rating `json:"-" gorm:"foreignKey:StoreID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
