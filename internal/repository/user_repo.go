package repository

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByEmail returns nil without error when no user has that email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError("get user by email", err, ErrFetchUser)
	}
	return &user, nil
}

// UpsertUser inserts the user or renames the one already holding its email.
// The stored password of an existing user is left untouched.
func (r *UserRepository) UpsertUser(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(u).Error
	if err != nil {
		return dbError("seed user", err, ErrSeedUser)
	}
	return nil
}
