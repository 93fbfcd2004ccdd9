package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/acmedash/seeder/internal/config"
	"github.com/acmedash/seeder/internal/fixtures"
	"github.com/acmedash/seeder/internal/observability/metrics"
	"github.com/acmedash/seeder/internal/seed/password"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Summary reports documents inserted per collection during one run.
type Summary struct {
	Users     int `json:"users"`
	Customers int `json:"customers"`
	Invoices  int `json:"invoices"`
	Revenue   int `json:"revenue"`
}

// Seeder replaces the dashboard collections with the fixture dataset.
type Seeder struct {
	opener  Opener
	data    fixtures.Provider
	cost    int
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(cfg config.Config, opener Opener, data fixtures.Provider, log *zap.Logger, m *metrics.Metrics) *Seeder {
	return &Seeder{
		opener:  opener,
		data:    data,
		cost:    cfg.BcryptCost,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
}

// Run executes one seeding pass: open a connection, clear the four
// collections, and insert users, customers, invoices and revenue in
// that order. The sequence is not transactional: a failure part way
// through leaves earlier phases' writes in place, and the next
// successful run's clear step removes them. Failures are returned as
// classified *Error values.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	start := s.now()

	var summary Summary
	err := s.run(ctx, &summary)

	outcome := "success"
	if err != nil {
		outcome = string(Classify(err).Kind)
	}
	s.metrics.ObserveRun(outcome, s.now().Sub(start))
	s.metrics.AddInserted(CollectionUsers, summary.Users)
	s.metrics.AddInserted(CollectionCustomers, summary.Customers)
	s.metrics.AddInserted(CollectionInvoices, summary.Invoices)
	s.metrics.AddInserted(CollectionRevenue, summary.Revenue)

	return summary, err
}

func (s *Seeder) run(ctx context.Context, summary *Summary) error {
	store, err := s.opener.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			s.log.Warn("closing database connection failed", zap.Error(cerr))
		}
	}()

	if err := s.clear(ctx, store); err != nil {
		return err
	}

	now := s.now().UTC()

	customers := s.data.Customers()

	userDocs, err := s.buildUsers(now)
	if err != nil {
		return err
	}
	if summary.Users, err = store.InsertUsers(ctx, userDocs); err != nil {
		return fmt.Errorf("insert users: %w", err)
	}

	customerDocs := buildCustomers(customers, now)
	if summary.Customers, err = store.InsertCustomers(ctx, customerDocs); err != nil {
		return fmt.Errorf("insert customers: %w", err)
	}

	invoiceDocs, err := buildInvoices(s.data.Invoices(), customers, now)
	if err != nil {
		return err
	}
	if summary.Invoices, err = store.InsertInvoices(ctx, invoiceDocs); err != nil {
		return fmt.Errorf("insert invoices: %w", err)
	}

	revenueDocs := buildRevenue(s.data.Revenue(), now)
	if summary.Revenue, err = store.InsertRevenue(ctx, revenueDocs); err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}

	s.log.Info("database seeded",
		zap.Int("users", summary.Users),
		zap.Int("customers", summary.Customers),
		zap.Int("invoices", summary.Invoices),
		zap.Int("revenue", summary.Revenue),
	)
	return nil
}

// clear empties the four collections concurrently. They are disjoint,
// so no ordering is needed among the deletes.
func (s *Seeder) clear(ctx context.Context, store Store) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, collection := range Collections() {
		g.Go(func() error {
			if err := store.Clear(gctx, collection); err != nil {
				return fmt.Errorf("clear %s: %w", collection, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// buildUsers hashes each password concurrently; hashing is independent
// per user and bcrypt work dominates the phase.
func (s *Seeder) buildUsers(now time.Time) ([]UserDoc, error) {
	users := s.data.Users()
	docs := make([]UserDoc, len(users))

	var g errgroup.Group
	for i, u := range users {
		g.Go(func() error {
			hashed, err := password.Hash(u.Password, s.cost)
			if err != nil {
				return fmt.Errorf("hash password for user %s: %w", u.ID, err)
			}
			docs[i] = UserDoc{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Password:  hashed,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func buildCustomers(customers []fixtures.Customer, now time.Time) []CustomerDoc {
	docs := make([]CustomerDoc, len(customers))
	for i, c := range customers {
		docs[i] = CustomerDoc{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			ImageURL:  c.ImageURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return docs
}

// buildInvoices resolves every customer reference against the
// in-memory customer list before any invoice is written. An unresolved
// reference aborts the run; earlier phases are not rolled back.
func buildInvoices(invoices []fixtures.Invoice, customers []fixtures.Customer, now time.Time) ([]InvoiceDoc, error) {
	known := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		known[c.ID] = struct{}{}
	}

	docs := make([]InvoiceDoc, len(invoices))
	for i, inv := range invoices {
		if _, ok := known[inv.CustomerID]; !ok {
			return nil, ErrReferential(i, inv.CustomerID)
		}
		docs[i] = InvoiceDoc{
			CustomerID: inv.CustomerID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       inv.Date,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}
	return docs, nil
}

func buildRevenue(revenue []fixtures.Revenue, now time.Time) []RevenueDoc {
	docs := make([]RevenueDoc, len(revenue))
	for i, r := range revenue {
		docs[i] = RevenueDoc{
			Month:     r.Month,
			Revenue:   r.Revenue,
			Year:      RevenueYear,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	return docs
}
