package handler

import (
	"context"
	"net/http"
	"time"

	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Invoice mutations also change the per-customer totals of the customers page.
var invoicePaths = []string{InvoicesPath, DashboardPath, CustomersPath}

func (h *Handler) ListInvoices(c *gin.Context) {
	query := c.Query("query")
	page := pageParam(c)
	h.cachedPage(c, func(ctx context.Context) (gin.H, error) {
		invoices, err := h.store.Invoices.FetchFilteredInvoices(ctx, query, page)
		if err != nil {
			return nil, err
		}
		pages, err := h.store.Invoices.FetchInvoicesPages(ctx, query)
		if err != nil {
			return nil, err
		}
		return gin.H{"invoices": invoices, "totalPages": pages}, nil
	})
}

// GetInvoice returns an invoice together with the customer options of its
// edit form.
func (h *Handler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	invoice, err := h.store.Invoices.FetchInvoiceByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found."})
		return
	}
	customers, err := h.store.Customers.FetchCustomers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice, "customers": customers})
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	var form InvoiceForm
	if !bindForm(c, &form, "Missing Fields. Failed to Create Invoice.") {
		return
	}

	amount := utils.DollarsToCents(form.Amount)
	if err := h.store.Invoices.CreateNewInvoice(c.Request.Context(), form.CustomerID, amount, form.Status, time.Now().UTC()); err != nil {
		respondError(c, err)
		return
	}
	h.revalidateAndRedirect(c, InvoicesPath, invoicePaths...)
}

func (h *Handler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form InvoiceForm
	if !bindForm(c, &form, "Missing Fields. Failed to Update Invoice.") {
		return
	}

	err := h.store.Invoices.UpdateExistInvoice(c.Request.Context(), id, repository.InvoiceUpdate{
		CustomerID: form.CustomerID,
		Amount:     utils.DollarsToCents(form.Amount),
		Status:     form.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.revalidateAndRedirect(c, InvoicesPath, invoicePaths...)
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Invoices.DeleteExistInvoice(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.revalidateAndRedirect(c, InvoicesPath, invoicePaths...)
}
