package marketobs

import (
	"context"
	"time"

	"sector-sentiment/internal/interfaces"
	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/trace"
	"sector-sentiment/internal/types"
)

// observableSource wraps a PriceSource with logging and tracing.
type observableSource struct {
	inner interfaces.PriceSource
}

// Wrap wraps a PriceSource with observability middleware.
func Wrap(source interfaces.PriceSource) interfaces.PriceSource {
	return &observableSource{inner: source}
}

func (o *observableSource) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]types.PricePoint, error) {
	ctx, span := trace.StartSpan(ctx, "market.FetchDaily")
	defer span.End()

	logger.Debug(ctx, "Fetching daily prices", "symbol", symbol,
		"start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"))
	t0 := time.Now()

	points, err := o.inner.FetchDaily(ctx, symbol, start, end)
	if err != nil {
		span.RecordError(err)
		logger.ErrorWithErr(ctx, "Price fetch failed", err, "symbol", symbol)
		return nil, err
	}

	logger.Info(ctx, "Price fetch completed", "symbol", symbol,
		"points", len(points), "duration_ms", time.Since(t0).Milliseconds())
	return points, nil
}
