package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/shiftboard/internal/client/api"
	"github.com/dmitrijs2005/shiftboard/internal/client/cli"
	"github.com/dmitrijs2005/shiftboard/internal/client/config"
	"github.com/dmitrijs2005/shiftboard/internal/client/tokenstore"
	"github.com/dmitrijs2005/shiftboard/internal/logging"
)

func main() {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := tokenstore.Open(ctx, tokenstore.Options{
		BaseURL:   cfg.APIBaseURL,
		Path:      cfg.TokenStorePath,
		RedisAddr: cfg.RedisAddr,
	}, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn(context.Background(), "closing token store", "error", err)
		}
	}()

	client := api.NewClient(api.Options{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{},
		Store:      store.Store,
		Logger:     logger.With("component", "api"),
	})
	if err := api.InitDefault(client); err != nil {
		log.Fatalf("api: %v", err)
	}

	logger.Debug(ctx, "starting", "api", client.BaseURL(), "token_store", store.Kind)

	cli.NewApp(api.Default(), logger, os.Stdin, os.Stdout).Run(ctx)
}
