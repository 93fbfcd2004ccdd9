package seed

import "context"

// Store is a connected handle on the dashboard database for the
// duration of one seeding run. Implementations must be safe for the
// concurrent Clear calls a run issues.
type Store interface {
	// Clear removes every document from the named collection.
	Clear(ctx context.Context, collection string) error

	InsertUsers(ctx context.Context, docs []UserDoc) (int, error)
	InsertCustomers(ctx context.Context, docs []CustomerDoc) (int, error)
	InsertInvoices(ctx context.Context, docs []InvoiceDoc) (int, error)
	InsertRevenue(ctx context.Context, docs []RevenueDoc) (int, error)

	// Close releases the underlying connection. Called exactly once
	// per run, on every exit path.
	Close() error
}

// Opener establishes a Store per run. Open must fail fast with a
// configuration error when no connection target is configured, before
// any network I/O.
type Opener interface {
	Open(ctx context.Context) (Store, error)
}
