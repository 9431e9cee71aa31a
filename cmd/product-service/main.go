package main

import (
	"context"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/rs/zerolog/log"

	"github.com/example/shop-services/config"
	"github.com/example/shop-services/modules/product"
	"github.com/example/shop-services/modules/productapi"
	"github.com/example/shop-services/modules/stockclient"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadProduct(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("app", cfg.AppName).
		Int("port", cfg.HTTPPort).
		Str("db", cfg.DBPath).
		Str("inventory", cfg.InventoryURL).
		Msg("Starting product service")

	productModule := product.NewModule(cfg.DBPath)
	productModule.SetStockChecker(stockclient.New(cfg.InventoryURL))

	apiModule := productapi.NewModule(cfg.HTTPPort, cfg.AllowOrigins)
	apiModule.SetProductModule(productModule)

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create mono application")
	}

	app.Register(productModule)
	app.Register(apiModule)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	log.Info().Int("port", cfg.HTTPPort).Msg("Product service started")

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
	log.Info().Int("code", exitCode).Msg("Product service exited")
	os.Exit(exitCode)
}
