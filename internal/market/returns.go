package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"sector-sentiment/internal/types"
)

// ForwardReturns derives forward one-day returns from an adjusted-close
// series: ret_fwd_1d[t] = p[t+1]/p[t] - 1. The last date has no forward
// return and is dropped. Input must be sorted ascending by date.
func ForwardReturns(prices []types.PricePoint) []types.ReturnRecord {
	if len(prices) < 2 {
		return nil
	}
	out := make([]types.ReturnRecord, 0, len(prices)-1)
	for i := 0; i+1 < len(prices); i++ {
		out = append(out, types.ReturnRecord{
			Date:     normalizeDay(prices[i].Date),
			AdjClose: prices[i].AdjClose,
			RetFwd1D: prices[i+1].AdjClose/prices[i].AdjClose - 1.0,
		})
	}
	return out
}

// WriteReturnsCSV writes the forward-return table with an ISO date as
// the first column.
func WriteReturnsCSV(path string, rets []types.ReturnRecord) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create returns output: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"date", "adj_close", "ret_fwd_1d"}); err != nil {
		return err
	}
	for _, r := range rets {
		rec := []string{
			r.Date.Format("2006-01-02"),
			strconv.FormatFloat(r.AdjClose, 'f', -1, 64),
			strconv.FormatFloat(r.RetFwd1D, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// normalizeDay truncates a timestamp to UTC midnight so grouping and
// joins line up across stages.
func normalizeDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
