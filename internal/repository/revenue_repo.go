package repository

import (
	"context"
	"time"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevenueRepository struct {
	db    *gorm.DB
	delay time.Duration
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

func (r *RevenueRepository) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, dbError("fetch revenue", err, ErrFetchRevenue)
	}

	var revenue []models.Revenue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&revenue).Error; err != nil {
		return nil, dbError("fetch revenue", err, ErrFetchRevenue)
	}
	return revenue, nil
}

// UpsertRevenue inserts the (month, revenue) pair unless it is already present.
func (r *RevenueRepository) UpsertRevenue(ctx context.Context, rev *models.Revenue) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}, {Name: "revenue"}},
			DoNothing: true,
		}).
		Create(rev).Error
	if err != nil {
		return dbError("seed revenue", err, ErrSeedRevenue)
	}
	return nil
}
