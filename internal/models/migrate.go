package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the dashboard tables. Customers must exist
// before invoices because of the foreign key.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Customer{},
		&Invoice{},
		&Revenue{},
	)
}
