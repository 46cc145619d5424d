package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeEnriched_PaymentFieldsWin(t *testing.T) {
	paid := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bill := &Bill{
		ID:       "B1",
		Title:    "Power",
		Category: "Electricity",
		Amount:   4200,
		Location: "Dhaka",
		Date:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	rec := &PaymentRecord{
		ID:      "P1",
		Email:   "a@x.com",
		BillsID: "B1",
		Date:    paid,
		Status:  "paid",
	}

	e := MergeEnriched(bill, rec)

	assert.Equal(t, "P1", e.ID, "record id wins over bill id")
	assert.Equal(t, paid, e.Date, "record date wins over bill date")
	assert.Equal(t, "paid", e.Status)
	assert.Equal(t, "Power", e.Title)
	assert.Equal(t, "Electricity", e.Category)
	assert.Equal(t, "Dhaka", e.Location)
	assert.Equal(t, int64(4200), e.Amount, "bill amount used when record has none")
}

func TestMergeEnriched_RecordAmountOverrides(t *testing.T) {
	bill := &Bill{ID: "B1", Title: "Power", Amount: 4200}
	rec := &PaymentRecord{ID: "P1", Email: "a@x.com", BillsID: "B1", Amount: 3999}

	e := MergeEnriched(bill, rec)

	assert.Equal(t, int64(3999), e.Amount)
}

func TestMergeEnriched_NilBill(t *testing.T) {
	rec := &PaymentRecord{ID: "P1", Email: "a@x.com", BillsID: "B1", Status: "paid"}

	e := MergeEnriched(nil, rec)

	assert.Equal(t, "B1", e.BillsID)
	assert.Equal(t, "paid", e.Status)
	assert.Empty(t, e.Title)
	assert.Empty(t, e.Category)
	assert.Zero(t, e.Amount)
}
