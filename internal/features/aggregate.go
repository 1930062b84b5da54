package features

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/types"
)

// requiredColumns must be present in the scored stream; their absence
// is an upstream contract violation, not bad data.
var requiredColumns = []string{"compound", "created_utc", "weight"}

type dayAccum struct {
	weightedSum float64 // sum(compound*weight)
	weightSum   float64
	compoundSum float64
	n           int
}

// AggregateDaily reads a scored JSONL file, keeps in-scope records
// (unless no record carries the in_scope key at all, in which case no
// filtering occurs), groups them by UTC calendar date and writes the
// daily feature table as CSV. A column "exists" when any record in the
// file carries the key, mirroring tabular semantics; missing required
// columns fail immediately with their names.
func AggregateDaily(ctx context.Context, scoredPath, outCSV string) ([]types.DailyFeature, error) {
	in, err := os.Open(scoredPath)
	if err != nil {
		return nil, fmt.Errorf("open scored records: %w", err)
	}
	defer in.Close()

	var rows []map[string]any
	columns := make(map[string]bool)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var row map[string]any
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			continue
		}
		for k := range row {
			columns[k] = true
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan scored records: %w", err)
	}

	var missing []string
	for _, col := range requiredColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns in scored data: %s", strings.Join(missing, ", "))
	}

	filterScope := columns["in_scope"]

	byDay := make(map[time.Time]*dayAccum)
	for _, row := range rows {
		if filterScope {
			if inScope, _ := row["in_scope"].(bool); !inScope {
				continue
			}
		}
		created, ok := asFloat(row["created_utc"])
		if !ok {
			continue
		}
		compound, _ := asFloat(row["compound"])
		weight, _ := asFloat(row["weight"])

		day := time.Unix(int64(created), 0).UTC().Truncate(24 * time.Hour)
		acc := byDay[day]
		if acc == nil {
			acc = &dayAccum{}
			byDay[day] = acc
		}
		acc.weightedSum += compound * weight
		acc.weightSum += weight
		acc.compoundSum += compound
		acc.n++
	}

	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	feats := make([]types.DailyFeature, 0, len(days))
	for _, d := range days {
		acc := byDay[d]
		f := types.DailyFeature{
			Date:     d,
			SentMean: acc.compoundSum / float64(acc.n),
			NItems:   acc.n,
		}
		// Zero total weight yields exactly 0.0, not a division error.
		if acc.weightSum != 0 {
			f.SentMeanWeighted = acc.weightedSum / acc.weightSum
		}
		feats = append(feats, f)
	}

	if err := writeFeaturesCSV(outCSV, feats); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Aggregation completed", "in", scoredPath, "out", outCSV, "days", len(feats))
	return feats, nil
}

func writeFeaturesCSV(path string, feats []types.DailyFeature) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create features output: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"date", "sent_mean_weighted", "sent_mean", "n_items"}); err != nil {
		return err
	}
	for _, f := range feats {
		rec := []string{
			f.Date.Format("2006-01-02"),
			strconv.FormatFloat(f.SentMeanWeighted, 'f', -1, 64),
			strconv.FormatFloat(f.SentMean, 'f', -1, 64),
			strconv.Itoa(f.NItems),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
