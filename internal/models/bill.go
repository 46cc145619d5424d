package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents one payable utility charge in the catalog.
// Amounts are stored in cents to avoid float error, e.g. 12.34 = 1234.
// Bills are seeded out-of-band and read-only over the API.
type Bill struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Category    string    `gorm:"size:64;index;not null" json:"category"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Location    string    `gorm:"size:255" json:"location,omitempty"`
	Image       string    `gorm:"size:512" json:"image,omitempty"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
