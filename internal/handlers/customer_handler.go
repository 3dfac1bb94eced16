package handler

import (
	"context"
	"net/http"

	"invoice-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// Customer edits change the names shown next to invoices and the dashboard
// counts, so every customer mutation purges all three pages.
var customerPaths = []string{CustomersPath, InvoicesPath, DashboardPath}

func (h *Handler) ListCustomers(c *gin.Context) {
	query := c.Query("query")
	page := pageParam(c)
	h.cachedPage(c, func(ctx context.Context) (gin.H, error) {
		customers, err := h.store.Customers.FetchFilteredCustomers(ctx, query, page)
		if err != nil {
			return nil, err
		}
		pages, err := h.store.Customers.FetchCustomersPages(ctx, query)
		if err != nil {
			return nil, err
		}
		return gin.H{"customers": customers, "totalPages": pages}, nil
	})
}

func (h *Handler) AllCustomers(c *gin.Context) {
	customers, err := h.store.Customers.FetchCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.store.Customers.FetchCustomerByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var form CustomerForm
	if !bindForm(c, &form, "Missing Fields. Failed to Create Customer.") {
		return
	}

	err := h.store.Customers.CreateNewCustomer(c.Request.Context(), form.Name, form.Email, form.ImageURL, form.normalizedUUID())
	if err != nil {
		respondError(c, err)
		return
	}
	h.revalidateAndRedirect(c, CustomersPath, customerPaths...)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form CustomerForm
	if !bindForm(c, &form, "Missing Fields. Failed to Update Customer.") {
		return
	}

	ctx := c.Request.Context()
	uuid := form.normalizedUUID()
	if form.UUID == "" {
		// keep the natural key the customer already has
		existing, err := h.store.Customers.FetchCustomerByID(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		if existing == nil {
			respondError(c, repository.ErrUpdateCustomer)
			return
		}
		uuid = existing.UUID
	}

	err := h.store.Customers.UpdateExistCustomer(ctx, id, repository.CustomerUpdate{
		Name:     form.Name,
		Email:    form.Email,
		UUID:     uuid,
		ImageURL: form.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.revalidateAndRedirect(c, CustomersPath, customerPaths...)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.Customers.DeleteExistCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.revalidateAndRedirect(c, CustomersPath, customerPaths...)
}
