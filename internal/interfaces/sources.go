package interfaces

import (
	"context"
	"time"

	"sector-sentiment/internal/types"
)

// PriceSource supplies a per-date adjusted-close series for a ticker.
// Implementations must return points sorted ascending by date,
// normalized to UTC midnight, and an error naming the ticker when the
// range comes back empty.
type PriceSource interface {
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]types.PricePoint, error)
}

// ContentSource supplies raw social records for the configured scope.
// The pipeline core never fetches content itself; it reads the files a
// ContentSource produced.
type ContentSource interface {
	FetchPosts(ctx context.Context) ([]types.RawRecord, error)
	FetchComments(ctx context.Context, postIDs []string) ([]types.RawRecord, error)
}
