package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kamrul397/m10-payBill-server/internal/models"
	"github.com/kamrul397/m10-payBill-server/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// enrichConcurrency caps the bill lookup fan-out per list request.
const enrichConcurrency = 8

// PaymentHandler manages per-user payment records against the bill catalog.
type PaymentHandler struct {
	DB *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db}
}

// ---------- request structures ----------

type createPaymentReq struct {
	Email   string     `json:"email"`
	BillsID string     `json:"billsId"`
	Date    *time.Time `json:"date"`
	Status  string     `json:"status"`
	Amount  *int64     `json:"amount"`
	Note    string     `json:"note"`
}

type updatePaymentReq struct {
	Date   *time.Time `json:"date"`
	Status *string    `json:"status"`
	Amount *int64     `json:"amount"`
	Note   *string    `json:"note"`
}

// CreatePayment records one user's payment of one bill.
// Uniqueness of (email, billsId) lives in the store as a unique index, so two
// concurrent identical requests cannot both get through: the loser surfaces
// as gorm.ErrDuplicatedKey and is rejected with 400.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req createPaymentReq
	if err := util.BindStrictJSON(c, &req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.BillsID == "" {
		util.Error(c, http.StatusBadRequest, "missing email or billsId")
		return
	}

	rec := models.PaymentRecord{
		Email:   req.Email,
		BillsID: req.BillsID,
		Date:    time.Now(),
		Status:  req.Status,
		Note:    req.Note,
	}
	if req.Date != nil {
		rec.Date = *req.Date
	}
	if req.Amount != nil {
		rec.Amount = *req.Amount
	}

	err := h.DB.WithContext(c.Request.Context()).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		util.Error(c, http.StatusBadRequest, "already paid this bill")
		return
	}
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to save payment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": rec.ID})
}

// ListPayments returns a user's payment records, newest first, each enriched
// with the referenced bill's descriptive fields.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		util.Error(c, http.StatusBadRequest, "missing email")
		return
	}

	enriched, err := h.fetchEnriched(c.Request.Context(), email, c.Query("limit"))
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to fetch payments", err)
		return
	}

	c.JSON(http.StatusOK, enriched)
}

// fetchEnriched loads a user's records sorted by date DESC and joins each
// with its bill. Lookups fan out concurrently; results land by index, so the
// final order follows the store sort, not completion order.
func (h *PaymentHandler) fetchEnriched(ctx context.Context, email, limitParam string) ([]models.EnrichedPayment, error) {
	q := h.DB.WithContext(ctx).
		Where("email = ?", email).
		Order("date DESC")
	if n, ok := util.ParseLimit(limitParam); ok {
		q = q.Limit(n)
	}

	var recs []models.PaymentRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedPayment, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range recs {
		i := i
		g.Go(func() error {
			rec := &recs[i]
			enriched[i] = models.MergeEnriched(h.lookupBill(gctx, rec.BillsID), rec)
			return nil
		})
	}
	_ = g.Wait()

	return enriched, nil
}

// lookupBill resolves a bill reference, degrading to nil on a malformed id,
// a dangling reference, or a store error. A failed lookup costs the caller
// enrichment, never the whole list.
func (h *PaymentHandler) lookupBill(ctx context.Context, billsID string) *models.Bill {
	if billsID == "" {
		return nil
	}
	if _, err := uuid.Parse(billsID); err != nil {
		return nil
	}

	var bill models.Bill
	if err := h.DB.WithContext(ctx).First(&bill, "id = ?", billsID).Error; err != nil {
		return nil
	}
	return &bill
}

// UpdatePayment applies a partial update. An unmatched id is not an error;
// the caller sees it as a zero modified count.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	var req updatePaymentReq
	if err := util.BindStrictJSON(c, &req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"matchedCount": 0, "modifiedCount": 0})
		return
	}

	tx := h.DB.WithContext(c.Request.Context()).
		Model(&models.PaymentRecord{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to update payment", tx.Error)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  tx.RowsAffected,
		"modifiedCount": tx.RowsAffected,
	})
}

// DeletePayment removes a record; deleting a non-existent id is not an error.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	tx := h.DB.WithContext(c.Request.Context()).
		Where("id = ?", id).
		Delete(&models.PaymentRecord{})
	if tx.Error != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to delete payment", tx.Error)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": tx.RowsAffected})
}
