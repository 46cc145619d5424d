package database

import (
	"fmt"

	"github.com/kamrul397/m10-payBill-server/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models. This is where
// the composite unique index on (email, bills_id) comes into existence.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Bill{},
		&models.PaymentRecord{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
