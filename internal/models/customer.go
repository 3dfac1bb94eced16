package models

type Customer struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UUID     string    `gorm:"column:uuid;size:64;not null;uniqueIndex" json:"uuid"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	ImageURL string    `gorm:"column:image_url;size:255" json:"image_url"`
	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"invoices,omitempty"`
}
