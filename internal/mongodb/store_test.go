package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/acmedash/seeder/internal/config"
	"github.com/acmedash/seeder/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenWithoutURIFailsFast(t *testing.T) {
	opener := NewOpener(config.Config{
		DatabaseName:           "dashboard",
		ConnectTimeout:         time.Second,
		ServerSelectionTimeout: time.Second,
		DisconnectTimeout:      time.Second,
	}, zap.NewNop())

	started := time.Now()
	store, err := opener.Open(context.Background())

	require.Error(t, err)
	assert.Nil(t, store)
	// no dial attempt: the configuration check returns immediately
	assert.Less(t, time.Since(started), time.Second)

	serr := seed.Classify(err)
	assert.Equal(t, seed.KindConfiguration, serr.Kind)
	assert.NotEmpty(t, serr.Suggestion)
}

func TestNewOpenerMapsConfig(t *testing.T) {
	opener := NewOpener(config.Config{
		MongoURI:               "mongodb://localhost:27017",
		DatabaseName:           "demo",
		ConnectTimeout:         3 * time.Second,
		ServerSelectionTimeout: 4 * time.Second,
		DisconnectTimeout:      5 * time.Second,
	}, zap.NewNop())

	assert.Equal(t, "mongodb://localhost:27017", opener.cfg.URI)
	assert.Equal(t, "demo", opener.cfg.Database)
	assert.Equal(t, 3*time.Second, opener.cfg.ConnectTimeout)
	assert.Equal(t, 4*time.Second, opener.cfg.ServerSelectionTimeout)
	assert.Equal(t, 5*time.Second, opener.cfg.DisconnectTimeout)
}
