package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"sector-sentiment/internal/ingest"
	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/store"
	"sector-sentiment/internal/trace"
)

func main() {
	configPath := flag.String("config", "config/scope_energy.yaml", "scope config YAML")
	outDir := flag.String("out", "data/raw", "base directory for raw JSONL output")
	flag.Parse()

	_ = godotenv.Load()
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize tracer: %v\n", err)
	}

	ctx := context.Background()
	defer func() { _ = trace.Shutdown(ctx) }()

	cfg, err := store.LoadConfig(*configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		os.Exit(1)
	}

	repo, err := ingest.NewRepository(*outDir, cfg.Name)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to prepare output directory", err)
		os.Exit(1)
	}

	svc := ingest.NewService(cfg, repo)
	timer := logger.StartOperation(ctx, "ingest_run", "scope", cfg.Name)
	if err := svc.Run(timer.GetContext()); err != nil {
		timer.EndWithError(err)
		os.Exit(1)
	}
	timer.End()

	fmt.Println("raw files written to", repo.Dir())
}
