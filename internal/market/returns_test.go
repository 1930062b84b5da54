package market

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"sector-sentiment/internal/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForwardReturns(t *testing.T) {
	prices := []types.PricePoint{
		{Date: day(2024, 3, 1), AdjClose: 100},
		{Date: day(2024, 3, 4), AdjClose: 102},
		{Date: day(2024, 3, 5), AdjClose: 51},
	}

	rets := ForwardReturns(prices)
	if len(rets) != 2 {
		t.Fatalf("Expected the last date to be dropped, got %d rows", len(rets))
	}
	if math.Abs(rets[0].RetFwd1D-0.02) > 1e-12 {
		t.Errorf("Expected first return 0.02, got %v", rets[0].RetFwd1D)
	}
	if math.Abs(rets[1].RetFwd1D-(-0.5)) > 1e-12 {
		t.Errorf("Expected second return -0.5, got %v", rets[1].RetFwd1D)
	}
	if !rets[1].Date.Equal(day(2024, 3, 4)) {
		t.Errorf("Expected last kept date 2024-03-04, got %v", rets[1].Date)
	}
}

func TestForwardReturnsTooShort(t *testing.T) {
	if got := ForwardReturns(nil); got != nil {
		t.Errorf("Expected nil for empty input, got %v", got)
	}
	one := []types.PricePoint{{Date: day(2024, 3, 1), AdjClose: 100}}
	if got := ForwardReturns(one); got != nil {
		t.Errorf("Expected nil for a single observation, got %v", got)
	}
}

func TestForwardReturnsNormalizesDates(t *testing.T) {
	prices := []types.PricePoint{
		{Date: time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC), AdjClose: 100},
		{Date: time.Date(2024, 3, 2, 13, 30, 0, 0, time.UTC), AdjClose: 101},
	}
	rets := ForwardReturns(prices)
	if len(rets) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rets))
	}
	if !rets[0].Date.Equal(day(2024, 3, 1)) {
		t.Errorf("Expected UTC midnight, got %v", rets[0].Date)
	}
}

func TestMockSourceEmptyRangeNamesTicker(t *testing.T) {
	src := NewMockSource()
	_, err := src.FetchDaily(context.Background(), "XOM", day(2024, 3, 10), day(2024, 3, 1))
	if err == nil {
		t.Fatal("Expected an error for an empty range")
	}
	if !strings.Contains(err.Error(), "XOM") {
		t.Errorf("Expected the error to name the ticker, got %q", err.Error())
	}
}

func TestMockSourceDeterministic(t *testing.T) {
	src := NewMockSource()
	ctx := context.Background()
	start, end := day(2024, 3, 1), day(2024, 3, 10)

	a, err := src.FetchDaily(ctx, "XOM", start, end)
	if err != nil {
		t.Fatal(err)
	}
	b, err := src.FetchDaily(ctx, "XOM", start, end)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("Expected identical non-empty series, got %d and %d rows", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Mock series not deterministic at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	other, err := src.FetchDaily(ctx, "CVX", start, end)
	if err != nil {
		t.Fatal(err)
	}
	differs := len(other) != len(a)
	for i := 0; !differs && i < len(a); i++ {
		differs = a[i].AdjClose != other[i].AdjClose
	}
	if !differs {
		t.Error("Expected different symbols to produce different mock series")
	}
}
