package market

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"sector-sentiment/internal/types"
)

// KiteSource fetches daily candles from Zerodha for NSE-listed sector
// ETFs and stocks. The instrument dump is loaded once and cached as a
// symbol-to-token map.
type KiteSource struct {
	kc       *kiteconnect.Client
	exchange string

	mu     sync.Mutex
	tokens map[string]int
}

// NewKiteSource creates a Zerodha-backed price source. Credentials come
// from the environment (KITE_API_KEY / KITE_ACCESS_TOKEN).
func NewKiteSource(apiKey, accessToken, exchange string) *KiteSource {
	kc := kiteconnect.New(apiKey)
	kc.SetAccessToken(accessToken)
	if exchange == "" {
		exchange = "NSE"
	}
	return &KiteSource{
		kc:       kc,
		exchange: exchange,
		tokens:   make(map[string]int),
	}
}

func (k *KiteSource) instrumentToken(symbol string) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if token, ok := k.tokens[symbol]; ok {
		return token, nil
	}

	instruments, err := k.kc.GetInstruments()
	if err != nil {
		return 0, fmt.Errorf("load instrument dump: %w", err)
	}
	for _, inst := range instruments {
		if inst.Exchange == k.exchange {
			k.tokens[inst.Tradingsymbol] = inst.InstrumentToken
		}
	}

	token, ok := k.tokens[symbol]
	if !ok {
		return 0, fmt.Errorf("symbol %s not found on %s", symbol, k.exchange)
	}
	return token, nil
}

// FetchDaily returns daily closes for [start, end]. Zerodha has no
// adjusted-close field on day candles, so the close is used as-is.
func (k *KiteSource) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]types.PricePoint, error) {
	token, err := k.instrumentToken(symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch prices for %s: %w", symbol, err)
	}

	candles, err := k.kc.GetHistoricalData(token, "day", start, end, false, false)
	if err != nil {
		return nil, fmt.Errorf("fetch prices for %s: %w", symbol, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no data returned for %s", symbol)
	}

	points := make([]types.PricePoint, 0, len(candles))
	for _, c := range candles {
		points = append(points, types.PricePoint{
			Date:     normalizeDay(c.Date.Time),
			AdjClose: c.Close,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}
