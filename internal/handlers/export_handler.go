package handler

import (
	"fmt"
	"net/http"
	"time"

	"invoice-dashboard-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const invoicesSheet = "Invoices"

var invoiceColumns = []string{"ID", "Customer", "Email", "Amount", "Status", "Date"}

// ExportInvoices streams every invoice matching ?query= as an xlsx workbook.
func (h *Handler) ExportInvoices(c *gin.Context) {
	invoices, err := h.store.Invoices.SearchAllInvoices(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", invoicesSheet); err != nil {
		respondError(c, err)
		return
	}

	if err := f.SetSheetRow(invoicesSheet, "A1", &invoiceColumns); err != nil {
		respondError(c, err)
		return
	}
	for i, inv := range invoices {
		var name, email string
		if inv.Customer != nil {
			name, email = inv.Customer.Name, inv.Customer.Email
		}
		row := []interface{}{
			inv.ID,
			name,
			email,
			utils.FormatCurrency(inv.Amount),
			inv.Status,
			time.Time(inv.Date).Format("2006-01-02"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(invoicesSheet, cell, &row); err != nil {
			respondError(c, err)
			return
		}
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}
