package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sector-sentiment/internal/clean"
	"sector-sentiment/internal/evaluate"
	"sector-sentiment/internal/features"
	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/market"
	"sector-sentiment/internal/trace"
)

func fatal(ctx context.Context, msg string, err error) {
	logger.ErrorWithErr(ctx, msg, err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	rawPosts := flag.String("raw-posts", "", "path to raw posts JSONL file")
	ticker := flag.String("ticker", "", "ticker symbol for price data")
	start := flag.String("start", "", "window start date (YYYY-MM-DD)")
	end := flag.String("end", "", "window end date (YYYY-MM-DD)")
	workdir := flag.String("workdir", "data/work", "directory for intermediate and final outputs")
	configPath := flag.String("config", "config/scope_energy.yaml", "scope config YAML")
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() { _ = trace.Shutdown(ctx) }()

	if *rawPosts == "" || *ticker == "" || *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "required flags: -raw-posts, -ticker, -start, -end")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadScopeConfig(ctx, *configPath)
	if err != nil {
		os.Exit(1)
	}

	startDay, err := time.Parse("2006-01-02", *start)
	if err != nil {
		fatal(ctx, "Invalid -start date", err)
	}
	endDay, err := time.Parse("2006-01-02", *end)
	if err != nil {
		fatal(ctx, "Invalid -end date", err)
	}
	if endDay.Before(startDay) {
		fatal(ctx, "Invalid window", fmt.Errorf("end %s before start %s", *end, *start))
	}

	// The window is inclusive of the whole end day.
	startTS := startDay.UTC().Unix()
	endTS := endDay.UTC().Unix() + 86399

	if _, err := os.Stat(*rawPosts); err != nil {
		fatal(ctx, "Raw posts file not readable", err)
	}
	if err := os.MkdirAll(*workdir, 0o755); err != nil {
		fatal(ctx, "Cannot create workdir", err)
	}

	cleanPath := filepath.Join(*workdir, "clean_posts.jsonl")
	scoredPath := filepath.Join(*workdir, "scored_posts.jsonl")
	featuresPath := filepath.Join(*workdir, "features_daily.csv")
	returnsPath := filepath.Join(*workdir, "returns_daily.csv")
	joinedPath := filepath.Join(*workdir, "joined_and_corr.csv")

	timer := logger.StartOperation(ctx, "pipeline_run")
	ctx = timer.GetContext()

	// Stage 1: filter and clean.
	cleaner := clean.NewCleaner(cfg)
	nClean, err := cleaner.CleanStream(ctx, *rawPosts, startTS, endTS, cleanPath)
	if err != nil {
		fatal(ctx, "Cleaning stage failed", err)
	}

	// Stage 2: sentiment and weight annotation.
	annotator := features.NewAnnotator(cfg)
	nScored, err := annotator.ProcessFile(ctx, cleanPath, scoredPath)
	if err != nil {
		fatal(ctx, "Scoring stage failed", err)
	}

	// Stage 3: daily aggregation.
	daily, err := features.AggregateDaily(ctx, scoredPath, featuresPath)
	if err != nil {
		fatal(ctx, "Aggregation stage failed", err)
	}

	// Stage 4: prices and forward returns.
	source := initializePriceSource(ctx, cfg)
	prices, err := source.FetchDaily(ctx, *ticker, startDay.UTC(), endDay.UTC().Add(24*time.Hour))
	if err != nil {
		fatal(ctx, "Price fetch failed", err)
	}
	if len(prices) == 0 {
		fatal(ctx, "Price fetch failed", fmt.Errorf("no price rows for %s", *ticker))
	}
	rets := market.ForwardReturns(prices)
	if err := market.WriteReturnsCSV(returnsPath, rets); err != nil {
		fatal(ctx, "Writing returns failed", err)
	}

	// Stage 5: join and correlate.
	result, err := evaluate.Evaluate(ctx, featuresPath, returnsPath, joinedPath)
	if err != nil {
		fatal(ctx, "Evaluation stage failed", err)
	}

	timer.End("clean", nClean, "scored", nScored, "days", len(daily), "joined_rows", len(result.Rows))

	fmt.Printf("clean=%d scored=%d days=%d joined=%d\n", nClean, nScored, len(daily), len(result.Rows))
	fmt.Println(strings.Join(result.SummaryRow, ","))
}
