package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/acmedash/seeder/internal/config"
	"github.com/acmedash/seeder/internal/seed"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Opener opens a seed.Store backed by MongoDB. A fresh connection is
// established per run and released when the run closes the store.
type Opener struct {
	cfg Config
	log *zap.Logger
}

func NewOpener(cfg config.Config, log *zap.Logger) *Opener {
	return &Opener{
		cfg: Config{
			URI:                    cfg.MongoURI,
			Database:               cfg.DatabaseName,
			ConnectTimeout:         cfg.ConnectTimeout,
			ServerSelectionTimeout: cfg.ServerSelectionTimeout,
			DisconnectTimeout:      cfg.DisconnectTimeout,
		},
		log: log,
	}
}

// Open validates configuration before any network I/O, then connects
// and pings. Connection and selection failures come back classified as
// connectivity errors.
func (o *Opener) Open(ctx context.Context) (seed.Store, error) {
	if o.cfg.URI == "" {
		return nil, seed.ErrConfiguration()
	}

	client, err := Connect(ctx, o.cfg, o.log)
	if err != nil {
		return nil, seed.ErrConnectivity(err)
	}

	return &store{
		client:            client,
		db:                client.Database(o.cfg.Database),
		disconnectTimeout: o.cfg.DisconnectTimeout,
	}, nil
}

type store struct {
	client            *mongo.Client
	db                *mongo.Database
	disconnectTimeout time.Duration
}

func (s *store) Clear(ctx context.Context, collection string) error {
	_, err := s.db.Collection(collection).DeleteMany(ctx, bson.D{})
	return err
}

func (s *store) InsertUsers(ctx context.Context, docs []seed.UserDoc) (int, error) {
	return insertMany(ctx, s.db.Collection(seed.CollectionUsers), docs)
}

func (s *store) InsertCustomers(ctx context.Context, docs []seed.CustomerDoc) (int, error) {
	return insertMany(ctx, s.db.Collection(seed.CollectionCustomers), docs)
}

func (s *store) InsertInvoices(ctx context.Context, docs []seed.InvoiceDoc) (int, error) {
	return insertMany(ctx, s.db.Collection(seed.CollectionInvoices), docs)
}

func (s *store) InsertRevenue(ctx context.Context, docs []seed.RevenueDoc) (int, error) {
	return insertMany(ctx, s.db.Collection(seed.CollectionRevenue), docs)
}

func (s *store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// insertMany reports the count the driver acknowledged, not the input
// length, so the summary reflects what was actually written.
func insertMany[T any](ctx context.Context, collection *mongo.Collection, docs []T) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	items := make([]interface{}, len(docs))
	for i, doc := range docs {
		items[i] = doc
	}
	res, err := collection.InsertMany(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", collection.Name(), err)
	}
	return len(res.InsertedIDs), nil
}
