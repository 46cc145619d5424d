package handler

import (
	"errors"
	"net/http"

	"github.com/kamrul397/m10-payBill-server/internal/models"
	"github.com/kamrul397/m10-payBill-server/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillHandler serves read-only access to the bill catalog.
type BillHandler struct {
	DB *gorm.DB
}

func NewBillHandler(db *gorm.DB) *BillHandler {
	return &BillHandler{DB: db}
}

// ListBills returns bills sorted by descending date.
// ?category= filters by case-insensitive exact match; ?limit= caps the count
// when it parses to a non-negative integer and is ignored otherwise.
func (h *BillHandler) ListBills(c *gin.Context) {
	q := h.DB.WithContext(c.Request.Context()).Model(&models.Bill{})

	if category := c.Query("category"); category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", category)
	}
	q = q.Order("date DESC")
	if n, ok := util.ParseLimit(c.Query("limit")); ok {
		q = q.Limit(n)
	}

	bills := make([]models.Bill, 0)
	if err := q.Find(&bills).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to fetch bills", err)
		return
	}

	c.JSON(http.StatusOK, bills)
}

// GetBill returns a single bill, or a JSON null when no bill has that id.
func (h *BillHandler) GetBill(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	var bill models.Bill
	err := h.DB.WithContext(c.Request.Context()).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to fetch bill", err)
		return
	}

	c.JSON(http.StatusOK, bill)
}

// ListCategories returns the distinct category values across all bills.
func (h *BillHandler) ListCategories(c *gin.Context) {
	categories := make([]string, 0)
	err := h.DB.WithContext(c.Request.Context()).
		Model(&models.Bill{}).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to fetch categories", err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
