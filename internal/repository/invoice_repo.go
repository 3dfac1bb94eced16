package repository

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemsPerPage is the fixed page size of the invoices and customers tables.
const ItemsPerPage = 6

type InvoiceRepository struct {
	db    *gorm.DB
	delay time.Duration
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// LatestInvoice is an invoice joined with its customer, amount already formatted.
type LatestInvoice struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// InvoiceUpdate holds the editable columns of an invoice.
type InvoiceUpdate struct {
	CustomerID uint
	Amount     int64
	Status     string
}

func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * ItemsPerPage
}

func totalPages(count int64) int {
	return int(math.Ceil(float64(count) / ItemsPerPage))
}

func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}

// searchInvoices matches the query against customer name, customer email and status.
func searchInvoices(db *gorm.DB, query string) *gorm.DB {
	like := likePattern(query)
	return db.Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR LOWER(invoices.status) LIKE ?", like, like, like)
}

func (r *InvoiceRepository) FetchLatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, dbError("fetch latest invoices", err, ErrFetchLatestInvoices)
	}

	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date DESC").
		Order("id DESC").
		Limit(5).
		Find(&invoices).Error
	if err != nil {
		return nil, dbError("fetch latest invoices", err, ErrFetchLatestInvoices)
	}

	latest := make([]LatestInvoice, 0, len(invoices))
	for _, inv := range invoices {
		li := LatestInvoice{
			ID:     inv.ID,
			Amount: utils.FormatCurrency(inv.Amount),
			Status: inv.Status,
			Date:   time.Time(inv.Date).Format("2006-01-02"),
		}
		if inv.Customer != nil {
			li.Name = inv.Customer.Name
			li.Email = inv.Customer.Email
			li.ImageURL = inv.Customer.ImageURL
		}
		latest = append(latest, li)
	}
	return latest, nil
}

// FetchFilteredInvoices returns one page of invoices matching query, newest first.
func (r *InvoiceRepository) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := searchInvoices(r.db.WithContext(ctx), query).
		Select("invoices.*").
		Preload("Customer").
		Order("invoices.date DESC").
		Order("invoices.id DESC").
		Offset(pageOffset(page)).
		Limit(ItemsPerPage).
		Find(&invoices).Error
	if err != nil {
		return nil, dbError("fetch filtered invoices", err, ErrFetchInvoices)
	}
	return invoices, nil
}

// SearchAllInvoices returns every invoice matching query, newest first.
func (r *InvoiceRepository) SearchAllInvoices(ctx context.Context, query string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := searchInvoices(r.db.WithContext(ctx), query).
		Select("invoices.*").
		Preload("Customer").
		Order("invoices.date DESC").
		Order("invoices.id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, dbError("search invoices", err, ErrFetchInvoices)
	}
	return invoices, nil
}

func (r *InvoiceRepository) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	var count int64
	if err := searchInvoices(r.db.WithContext(ctx), query).Count(&count).Error; err != nil {
		return 0, dbError("fetch invoices pages", err, ErrFetchInvoicesPages)
	}
	return totalPages(count), nil
}

// FetchInvoiceByID returns nil without error when no invoice has that id.
func (r *InvoiceRepository) FetchInvoiceByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("fetch invoice", err, ErrFetchInvoice)
	}
	return &invoice, nil
}

// upsert inserts the invoice or, when its (customer_id, amount, status)
// triple already exists, moves that row's date to today.
func (r *InvoiceRepository) upsert(ctx context.Context, inv *models.Invoice) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}, {Name: "amount"}, {Name: "status"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"date": datatypes.Date(time.Now().UTC()),
			}),
		}).
		Create(inv).Error
}

func (r *InvoiceRepository) CreateNewInvoice(ctx context.Context, customerID uint, amount int64, status string, date time.Time) error {
	inv := &models.Invoice{
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       datatypes.Date(date),
	}
	if err := r.upsert(ctx, inv); err != nil {
		return dbError("create invoice", err, ErrCreateInvoice)
	}
	return nil
}

// UpsertInvoice is the seeding insert. A new invoice keeps its own date; an
// existing triple has its date moved to today, as with CreateNewInvoice.
func (r *InvoiceRepository) UpsertInvoice(ctx context.Context, inv *models.Invoice) error {
	if err := r.upsert(ctx, inv); err != nil {
		return dbError("seed invoice", err, ErrSeedInvoice)
	}
	return nil
}

func (r *InvoiceRepository) UpdateExistInvoice(ctx context.Context, id uint, data InvoiceUpdate) error {
	result := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": data.CustomerID,
			"amount":      data.Amount,
			"status":      data.Status,
		})
	if result.Error != nil {
		return dbError("update invoice", result.Error, ErrUpdateInvoice)
	}
	if result.RowsAffected == 0 {
		return dbError("update invoice", gorm.ErrRecordNotFound, ErrUpdateInvoice)
	}
	return nil
}

func (r *InvoiceRepository) DeleteExistInvoice(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Invoice{}, id)
	if result.Error != nil {
		return dbError("delete invoice", result.Error, ErrDeleteInvoice)
	}
	if result.RowsAffected == 0 {
		return dbError("delete invoice", gorm.ErrRecordNotFound, ErrDeleteInvoice)
	}
	return nil
}
