package database

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/kamrul397/m10-payBill-server/internal/models"

	"gorm.io/gorm"
)

// SeedBills loads the bill catalog from a JSON file (an array of bills) when
// the table is still empty. The catalog has no creation endpoint; this is the
// only way records get in.
func SeedBills(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Bill{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count bills: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var bills []models.Bill
	if err := json.Unmarshal(data, &bills); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	if len(bills) == 0 {
		return nil
	}

	if err := db.Create(&bills).Error; err != nil {
		return fmt.Errorf("insert seed bills: %w", err)
	}
	slog.Info("seeded bill catalog", "file", path, "count", len(bills))
	return nil
}
