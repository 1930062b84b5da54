package market

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"sector-sentiment/internal/types"
)

// MockSource generates a deterministic daily price walk for testing and
// offline development. The same symbol always yields the same series.
type MockSource struct{}

// NewMockSource creates a mock price source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// FetchDaily generates one point per calendar day in [start, end].
func (m *MockSource) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]types.PricePoint, error) {
	start = normalizeDay(start)
	end = normalizeDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("no data returned for %s", symbol)
	}

	seed := int64(0)
	for _, c := range symbol {
		seed = seed*31 + int64(c)
	}
	r := rand.New(rand.NewSource(seed))

	price := 50.0 + r.Float64()*100.0
	var points []types.PricePoint
	for d := start; !d.After(end); d = d.Add(24 * time.Hour) {
		price *= 1.0 + (r.Float64()-0.5)*0.02
		points = append(points, types.PricePoint{Date: d, AdjClose: price})
	}
	return points, nil
}
