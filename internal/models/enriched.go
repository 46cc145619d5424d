package models

import "time"

// EnrichedPayment is a PaymentRecord overlaid on the descriptive fields of
// the Bill it references, for display.
type EnrichedPayment struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	BillsID string    `json:"billsId"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status,omitempty"`
	Note    string    `json:"note,omitempty"`
	Amount  int64     `json:"amount,omitempty"`

	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// MergeEnriched combines a payment record with its referenced bill.
// Precedence, field by field:
//
//	id, email, billsId, date, status, note  — always from the record
//	title, category, location, image, description — from the bill
//	amount — from the record when it carries one (non-zero), else the bill's
//
// A nil bill (dangling or malformed reference) yields the record's own
// fields only.
func MergeEnriched(bill *Bill, rec *PaymentRecord) EnrichedPayment {
	e := EnrichedPayment{
		ID:      rec.ID,
		Email:   rec.Email,
		BillsID: rec.BillsID,
		Date:    rec.Date,
		Status:  rec.Status,
		Note:    rec.Note,
		Amount:  rec.Amount,
	}
	if bill == nil {
		return e
	}
	e.Title = bill.Title
	e.Category = bill.Category
	e.Location = bill.Location
	e.Image = bill.Image
	e.Description = bill.Description
	if rec.Amount == 0 {
		e.Amount = bill.Amount
	}
	return e
}
