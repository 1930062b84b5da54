package market

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"sector-sentiment/internal/api"
	"sector-sentiment/internal/types"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// YahooSource fetches daily adjusted closes from the Yahoo Finance v8
// chart endpoint.
type YahooSource struct {
	client *api.Client
}

// NewYahooSource creates a Yahoo Finance price source.
func NewYahooSource() *YahooSource {
	return &YahooSource{
		client: api.NewClient(
			api.WithTimeout(30*time.Second),
			api.WithHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
			api.WithLogging(true),
		),
	}
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				AdjClose []struct {
					AdjClose []float64 `json:"adjclose"`
				} `json:"adjclose"`
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDaily returns the adjusted-close series for [start, end], sorted
// ascending and normalized to UTC midnight. An empty series is an error
// naming the ticker.
func (y *YahooSource) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]types.PricePoint, error) {
	params := url.Values{}
	params.Set("period1", strconv.FormatInt(start.UTC().Unix(), 10))
	params.Set("period2", strconv.FormatInt(end.UTC().Unix(), 10))
	params.Set("interval", "1d")
	params.Set("events", "div,split")

	var resp yahooChartResponse
	if err := y.client.GetJSON(ctx, yahooChartURL+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, fmt.Errorf("fetch prices for %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("fetch prices for %s: %s (%s)", symbol, resp.Chart.Error.Description, resp.Chart.Error.Code)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data returned for %s", symbol)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.Quote
	adj := result.Indicators.AdjClose

	points := make([]types.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		var price float64
		switch {
		case len(adj) > 0 && i < len(adj[0].AdjClose):
			price = adj[0].AdjClose[i]
		case len(closes) > 0 && i < len(closes[0].Close):
			price = closes[0].Close[i]
		default:
			continue
		}
		if price == 0 {
			continue
		}
		points = append(points, types.PricePoint{
			Date:     normalizeDay(time.Unix(ts, 0)),
			AdjClose: price,
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no data returned for %s", symbol)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}
