package repository

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerSummary is a row of the customers table with invoice totals.
type CustomerSummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"totalInvoices"`
	PaidSum       string `json:"paidSum"`
	PendingSum    string `json:"pendingSum"`
}

// CustomerUpdate holds the editable columns of a customer.
type CustomerUpdate struct {
	Name     string
	Email    string
	UUID     string
	ImageURL string
}

func searchCustomers(db *gorm.DB, query string) *gorm.DB {
	like := likePattern(query)
	return db.Model(&models.Customer{}).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
}

// FetchCustomers returns every customer ordered by name, for select inputs.
func (r *CustomerRepository) FetchCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error; err != nil {
		return nil, dbError("fetch customers", err, ErrFetchAllCustomers)
	}
	return customers, nil
}

func (r *CustomerRepository) FetchCustomersPages(ctx context.Context, query string) (int, error) {
	var count int64
	if err := searchCustomers(r.db.WithContext(ctx), query).Count(&count).Error; err != nil {
		return 0, dbError("fetch customers pages", err, ErrFetchCustomersPages)
	}
	return totalPages(count), nil
}

// FetchFilteredCustomers returns one page of customers matching query with
// their invoices summed per status. Anything not paid counts as pending.
func (r *CustomerRepository) FetchFilteredCustomers(ctx context.Context, query string, page int) ([]CustomerSummary, error) {
	var customers []models.Customer
	err := searchCustomers(r.db.WithContext(ctx), query).
		Preload("Invoices").
		Order("name ASC").
		Order("id ASC").
		Offset(pageOffset(page)).
		Limit(ItemsPerPage).
		Find(&customers).Error
	if err != nil {
		return nil, dbError("fetch filtered customers", err, ErrFetchCustomers)
	}

	summaries := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		var paid, pending int64
		for _, inv := range c.Invoices {
			if inv.Status == models.InvoiceStatusPaid {
				paid += inv.Amount
			} else {
				pending += inv.Amount
			}
		}
		summaries = append(summaries, CustomerSummary{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: len(c.Invoices),
			PaidSum:       utils.FormatCurrency(paid),
			PendingSum:    utils.FormatCurrency(pending),
		})
	}
	return summaries, nil
}

// FetchCustomerByID returns nil without error when no customer has that id.
func (r *CustomerRepository) FetchCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("fetch customer", err, ErrFetchCustomer)
	}
	return &customer, nil
}

// FindCustomerByUUID looks a customer up by its natural key. It returns nil
// without error when the uuid is unknown.
func (r *CustomerRepository) FindCustomerByUUID(ctx context.Context, uuid string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "uuid = ?", uuid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("find customer by uuid", err, ErrFetchCustomer)
	}
	return &customer, nil
}

// FindCustomerByEmail returns nil without error when the email is unknown.
func (r *CustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).First(&customer, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("find customer by email", err, ErrFetchCustomer)
	}
	return &customer, nil
}

// CreateNewCustomer inserts a customer or, when the email is already taken,
// refreshes that customer's image.
func (r *CustomerRepository) CreateNewCustomer(ctx context.Context, name, email, imageURL, uuid string) error {
	customer := &models.Customer{
		UUID:     uuid,
		Name:     name,
		Email:    email,
		ImageURL: imageURL,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"image_url"}),
		}).
		Create(customer).Error
	if err != nil {
		return dbError("create customer", err, ErrCreateCustomer)
	}
	return nil
}

// UpsertCustomerByUUID is the seeding upsert: keyed on uuid, it only renames
// an existing customer.
func (r *CustomerRepository) UpsertCustomerByUUID(ctx context.Context, c *models.Customer) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uuid"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(c).Error
	if err != nil {
		return dbError("seed customer", err, ErrSeedCustomer)
	}
	return nil
}

func (r *CustomerRepository) UpdateExistCustomer(ctx context.Context, id uint, data CustomerUpdate) error {
	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":      data.Name,
			"email":     data.Email,
			"uuid":      data.UUID,
			"image_url": data.ImageURL,
		})
	if result.Error != nil {
		return dbError("update customer", result.Error, ErrUpdateCustomer)
	}
	if result.RowsAffected == 0 {
		return dbError("update customer", gorm.ErrRecordNotFound, ErrUpdateCustomer)
	}
	return nil
}

// DeleteExistCustomer fails when the customer is missing or still has invoices.
func (r *CustomerRepository) DeleteExistCustomer(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if result.Error != nil {
		return dbError("delete customer", result.Error, ErrDeleteCustomer)
	}
	if result.RowsAffected == 0 {
		return dbError("delete customer", gorm.ErrRecordNotFound, ErrDeleteCustomer)
	}
	return nil
}
