package models

import (
	"gorm.io/datatypes"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice amounts are stored in cents. (customer_id, amount, status) is the
// natural key used for upserts.
type Invoice struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CustomerID uint           `gorm:"not null;uniqueIndex:idx_invoices_customer_amount_status" json:"customer_id"`
	Amount     int64          `gorm:"not null;uniqueIndex:idx_invoices_customer_amount_status" json:"amount"`
	Status     string         `gorm:"size:20;not null;uniqueIndex:idx_invoices_customer_amount_status" json:"status"`
	Date       datatypes.Date `gorm:"not null;index" json:"date"`
	Customer   *Customer      `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
}
