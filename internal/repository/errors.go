package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Error is returned by every repository operation that hits a storage fault.
// Msg is safe to show to end users; the underlying cause is only logged.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

var (
	ErrFetchRevenue        = &Error{Msg: "Failed to fetch revenue data."}
	ErrFetchCardData       = &Error{Msg: "Failed to fetch card data."}
	ErrFetchLatestInvoices = &Error{Msg: "Failed to fetch the latest invoices."}
	ErrFetchInvoices       = &Error{Msg: "Failed to fetch invoices."}
	ErrFetchInvoicesPages  = &Error{Msg: "Failed to fetch total number of invoices."}
	ErrFetchInvoice        = &Error{Msg: "Failed to fetch invoice."}
	ErrCreateInvoice       = &Error{Msg: "Failed to create invoice."}
	ErrUpdateInvoice       = &Error{Msg: "Failed to update invoice."}
	ErrDeleteInvoice       = &Error{Msg: "Failed to delete invoice."}

	ErrFetchAllCustomers   = &Error{Msg: "Failed to fetch all customers."}
	ErrFetchCustomersPages = &Error{Msg: "Failed to fetch total number of customers."}
	ErrFetchCustomers      = &Error{Msg: "Failed to fetch customers."}
	ErrFetchCustomer       = &Error{Msg: "Failed to fetch customer."}
	ErrCreateCustomer      = &Error{Msg: "Failed to create customer."}
	ErrUpdateCustomer      = &Error{Msg: "Failed to update customer."}
	ErrDeleteCustomer      = &Error{Msg: "Failed to delete customer."}

	ErrFetchUser    = &Error{Msg: "Failed to fetch user."}
	ErrSeedUser     = &Error{Msg: "Failed to seed user."}
	ErrSeedCustomer = &Error{Msg: "Failed to seed customer."}
	ErrSeedInvoice  = &Error{Msg: "Failed to seed invoice."}
	ErrSeedRevenue  = &Error{Msg: "Failed to seed revenue."}
)

// dbError logs the storage fault and returns the public error in its place.
func dbError(op string, err error, public *Error) error {
	log.Error().Err(err).Str("op", op).Msg("database error")
	return public
}

// simulateLatency blocks for d unless ctx is done first.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	log.Debug().Dur("delay", d).Msg("simulating slow query")
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
