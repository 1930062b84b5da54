package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"sector-sentiment/internal/interfaces"
	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/market"
	"sector-sentiment/internal/market/marketobs"
	"sector-sentiment/internal/store"
	"sector-sentiment/internal/trace"
)

// initializeSystem initializes environment, logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadScopeConfig loads and returns the scope configuration
func loadScopeConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializePriceSource selects the price source from config and wraps
// it with observability middleware
func initializePriceSource(ctx context.Context, cfg *store.Config) interfaces.PriceSource {
	var src interfaces.PriceSource
	switch cfg.Market.Source {
	case "kite":
		src = market.NewKiteSource(
			os.Getenv("KITE_API_KEY"),
			os.Getenv("KITE_ACCESS_TOKEN"),
			"NSE",
		)
		logger.Info(ctx, "Using Kite Connect daily candles")
	case "mock":
		src = market.NewMockSource()
		logger.Warn(ctx, "Using MOCK price data - correlations are not meaningful")
	default:
		src = market.NewYahooSource()
		logger.Info(ctx, "Using Yahoo Finance daily candles")
	}

	// Wrap with observability middleware
	return marketobs.Wrap(src)
}
