package main

import (
	"github.com/acmedash/seeder/internal/config"
	"github.com/acmedash/seeder/internal/fixtures"
	"github.com/acmedash/seeder/internal/mongodb"
	"github.com/acmedash/seeder/internal/observability"
	"github.com/acmedash/seeder/internal/seed"
	"github.com/acmedash/seeder/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fixtures.Module,
		mongodb.Module,
		seed.Module,
		server.Module,
	)
	app.Run()
}
