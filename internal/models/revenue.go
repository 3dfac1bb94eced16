package models

type Revenue struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Month   string `gorm:"size:16;not null;uniqueIndex:idx_revenues_month_revenue" json:"month"`
	Revenue int    `gorm:"not null;uniqueIndex:idx_revenues_month_revenue" json:"revenue"`
}
