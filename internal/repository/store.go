package repository

import (
	"time"

	"gorm.io/gorm"
)

// Store groups the repositories sharing one database handle.
type Store struct {
	Users     *UserRepository
	Customers *CustomerRepository
	Invoices  *InvoiceRepository
	Revenue   *RevenueRepository
	Dashboard *DashboardRepository
}

type Option func(*Store)

// WithArtificialDelay slows down the revenue and latest-invoices reads, which
// is useful when working on loading states in the UI.
func WithArtificialDelay(d time.Duration) Option {
	return func(s *Store) {
		s.Invoices.delay = d
		s.Revenue.delay = d
	}
}

func NewStore(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		Users:     NewUserRepository(db),
		Customers: NewCustomerRepository(db),
		Invoices:  NewInvoiceRepository(db),
		Revenue:   NewRevenueRepository(db),
		Dashboard: NewDashboardRepository(db),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
