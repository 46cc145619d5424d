package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRecord represents one user's act of paying one bill.
// The composite unique index on (email, bills_id) carries the
// one-payment-per-user-per-bill invariant; a violation comes back from the
// store as gorm.ErrDuplicatedKey.
//
// BillsID references Bill.ID without a foreign-key constraint: a dangling
// reference is tolerated and handled at read time.
type PaymentRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_payment_user_bill" json:"email"`
	BillsID   string    `gorm:"size:36;not null;uniqueIndex:idx_payment_user_bill" json:"billsId"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Status    string    `gorm:"size:32" json:"status,omitempty"`
	Amount    int64     `json:"amount,omitempty"` // cents; 0 when the caller supplied none
	Note      string    `gorm:"size:255" json:"note,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
