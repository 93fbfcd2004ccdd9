package mongodb

import (
	"github.com/acmedash/seeder/internal/config"
	"github.com/acmedash/seeder/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("mongodb",
	fx.Provide(func(cfg config.Config, log *zap.Logger) seed.Opener {
		return NewOpener(cfg, log)
	}),
)
