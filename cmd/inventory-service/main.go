package main

import (
	"context"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/rs/zerolog/log"

	"github.com/example/shop-services/config"
	"github.com/example/shop-services/modules/inventory"
	"github.com/example/shop-services/modules/inventoryapi"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadInventory(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("app", cfg.AppName).
		Int("port", cfg.HTTPPort).
		Str("db", cfg.DBPath).
		Msg("Starting inventory service")

	inventoryModule := inventory.NewModule(cfg.DBPath)
	apiModule := inventoryapi.NewModule(cfg.HTTPPort)
	apiModule.SetInventoryModule(inventoryModule)

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create mono application")
	}

	app.Register(inventoryModule)
	app.Register(apiModule)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	log.Info().Int("port", cfg.HTTPPort).Msg("Inventory service started")

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Info().Msg("Graceful shutdown initiated")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Info().Int("code", exitCode).Msg("Inventory service exited")
	os.Exit(exitCode)
}
