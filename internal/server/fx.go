package server

import (
	"github.com/acmedash/seeder/internal/seed"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(
		NewEngine,
		func(engine *gin.Engine, seeder *seed.Seeder, log *zap.Logger) *Server {
			return NewServer(engine, seeder, log)
		},
	),
	fx.Invoke(func(s *Server) {
		s.RegisterRoutes()
	}),
	fx.Invoke(run),
)
