package seed

import (
	"context"
	"fmt"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/auth"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder upserts the fixture data set. Running it twice leaves the same rows.
type Seeder struct {
	db          *gorm.DB
	fixtures    Fixtures
	bcryptCost  int
	atomic      bool
	concurrency int
}

type Option func(*Seeder)

func WithFixtures(f Fixtures) Option {
	return func(s *Seeder) { s.fixtures = f }
}

func WithBcryptCost(cost int) Option {
	return func(s *Seeder) { s.bcryptCost = cost }
}

// WithAtomic runs every phase inside one transaction. A transaction holds a
// single connection, so the per-phase fan-out drops to one.
func WithAtomic(atomic bool) Option {
	return func(s *Seeder) { s.atomic = atomic }
}

func WithConcurrency(n int) Option {
	return func(s *Seeder) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewSeeder(db *gorm.DB, opts ...Option) *Seeder {
	s := &Seeder{
		db:          db,
		fixtures:    Placeholder,
		bcryptCost:  bcrypt.DefaultCost,
		atomic:      true,
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run seeds users, customers, invoices and revenue in that order and stops at
// the first failing phase.
func (s *Seeder) Run(ctx context.Context) error {
	start := time.Now()
	var err error
	if s.atomic {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.seed(ctx, repository.NewStore(tx), 1)
		})
	} else {
		err = s.seed(ctx, repository.NewStore(s.db), s.concurrency)
	}
	if err != nil {
		log.Error().Err(err).Bool("atomic", s.atomic).Msg("seeding failed")
		return err
	}
	log.Info().Dur("took", time.Since(start)).Bool("atomic", s.atomic).Msg("database seeded")
	return nil
}

func (s *Seeder) seed(ctx context.Context, store *repository.Store, limit int) error {
	phases := []struct {
		name string
		run  func(context.Context, *repository.Store, int) error
	}{
		{"users", s.seedUsers},
		{"customers", s.seedCustomers},
		{"invoices", s.seedInvoices},
		{"revenue", s.seedRevenue},
	}
	for _, p := range phases {
		if err := p.run(ctx, store, limit); err != nil {
			return fmt.Errorf("seed %s: %w", p.name, err)
		}
		log.Debug().Str("phase", p.name).Msg("seed phase done")
	}
	return nil
}

// fanOut calls fn for every item with at most limit calls in flight and
// returns the first error.
func fanOut[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, item := range items {
		g.Go(func() error {
			return fn(gctx, item)
		})
	}
	return g.Wait()
}

func (s *Seeder) seedUsers(ctx context.Context, store *repository.Store, limit int) error {
	return fanOut(ctx, limit, s.fixtures.Users, func(ctx context.Context, u UserFixture) error {
		hash, err := auth.HashPassword(u.Password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password of %s: %w", u.Email, err)
		}
		return store.Users.UpsertUser(ctx, &models.User{Name: u.Name, Email: u.Email, Password: hash})
	})
}

func (s *Seeder) seedCustomers(ctx context.Context, store *repository.Store, limit int) error {
	return fanOut(ctx, limit, s.fixtures.Customers, func(ctx context.Context, c CustomerFixture) error {
		return store.Customers.UpsertCustomerByUUID(ctx, &models.Customer{
			UUID:     c.UUID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	})
}

func (s *Seeder) seedInvoices(ctx context.Context, store *repository.Store, limit int) error {
	return fanOut(ctx, limit, s.fixtures.Invoices, func(ctx context.Context, f InvoiceFixture) error {
		customer, err := store.Customers.FindCustomerByUUID(ctx, f.CustomerUUID)
		if err != nil {
			return err
		}
		if customer == nil {
			return fmt.Errorf("customer not found: %s", f.CustomerUUID)
		}
		date, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return fmt.Errorf("invoice date %q: %w", f.Date, err)
		}
		return store.Invoices.UpsertInvoice(ctx, &models.Invoice{
			CustomerID: customer.ID,
			Amount:     f.Amount,
			Status:     f.Status,
			Date:       datatypes.Date(date),
		})
	})
}

func (s *Seeder) seedRevenue(ctx context.Context, store *repository.Store, limit int) error {
	return fanOut(ctx, limit, s.fixtures.Revenue, func(ctx context.Context, r models.Revenue) error {
		return store.Revenue.UpsertRevenue(ctx, &models.Revenue{Month: r.Month, Revenue: r.Revenue})
	})
}
