package repository

import (
	"context"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type CardData struct {
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

func (r *DashboardRepository) sumByStatus(ctx context.Context, status string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status).
		Scan(&sum).Error
	return sum, err
}

// FetchCardData runs the four summary queries concurrently.
func (r *DashboardRepository) FetchCardData(ctx context.Context) (*CardData, error) {
	var (
		customers, invoices int64
		paid, pending       int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Customer{}).Count(&customers).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Model(&models.Invoice{}).Count(&invoices).Error
	})
	g.Go(func() error {
		var err error
		paid, err = r.sumByStatus(gctx, models.InvoiceStatusPaid)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = r.sumByStatus(gctx, models.InvoiceStatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dbError("fetch card data", err, ErrFetchCardData)
	}

	return &CardData{
		NumberOfCustomers:    customers,
		NumberOfInvoices:     invoices,
		TotalPaidInvoices:    utils.FormatCurrency(paid),
		TotalPendingInvoices: utils.FormatCurrency(pending),
	}, nil
}
