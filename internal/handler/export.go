package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kamrul397/m10-payBill-server/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportPayments streams a user's enriched payment rows as an XLSX download.
func (h *PaymentHandler) ExportPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		util.Error(c, http.StatusBadRequest, "missing email")
		return
	}

	rows, err := h.fetchEnriched(c.Request.Context(), email, c.Query("limit"))
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to fetch payments", err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Payments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to build export", err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Title", "Category", "Amount", "Status", "Location", "Date"}
	for i, head := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, r := range rows {
		row := idx + 2
		amount := strconv.FormatFloat(float64(r.Amount)/100.0, 'f', 2, 64)

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Location)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.Date.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 20)
	f.SetColWidth(sheetName, "F", "F", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"payments_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Fail(c, http.StatusInternalServerError, "failed to write export", err)
	}
}
