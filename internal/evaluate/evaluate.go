package evaluate

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/types"
)

// Result is the outcome of one evaluation: the joined rows plus the
// correlation statistic, when enough rows were available.
type Result struct {
	Rows       []types.EvalRow
	Corr       float64
	PValue     float64
	HasCorr    bool
	SummaryRow []string
}

// Evaluate inner-joins the daily feature table with the forward-return
// table on date, drops rows missing either series, computes the Pearson
// correlation with its two-sided p-value when at least two rows remain,
// and writes the joined table plus exactly one trailing summary row.
// Fewer than two rows is not fatal: a placeholder row is written and a
// warning logged.
func Evaluate(ctx context.Context, featuresPath, returnsPath, outPath string) (*Result, error) {
	feats, err := readFeaturesCSV(featuresPath)
	if err != nil {
		return nil, err
	}
	rets, err := readReturnsCSV(returnsPath)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]types.ReturnRecord, len(rets))
	for _, r := range rets {
		byDate[r.Date] = r
	}

	var rows []types.EvalRow
	for _, f := range feats {
		r, ok := byDate[f.Date]
		if !ok {
			continue
		}
		rows = append(rows, types.EvalRow{
			Date:             f.Date,
			SentMeanWeighted: f.SentMeanWeighted,
			SentMean:         f.SentMean,
			NItems:           f.NItems,
			AdjClose:         r.AdjClose,
			RetFwd1D:         r.RetFwd1D,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	res := &Result{Rows: rows}
	if len(rows) >= 2 {
		x := make([]float64, len(rows))
		y := make([]float64, len(rows))
		for i, row := range rows {
			x[i] = row.SentMeanWeighted
			y[i] = row.RetFwd1D
		}
		res.Corr, res.PValue = Pearson(x, y)
		res.HasCorr = true
		res.SummaryRow = []string{
			"Correlation",
			fmt.Sprintf("Correlation: %.6f", res.Corr),
			"", "", "",
			fmt.Sprintf("P-value: %.6g", res.PValue),
		}
	} else {
		res.SummaryRow = []string{
			"Correlation",
			"Not enough data",
			"", "", "",
			fmt.Sprintf("Rows available: %d", len(rows)),
		}
		logger.Warn(ctx, "Not enough overlapping rows for correlation", "rows", len(rows))
	}

	if err := writeJoinedCSV(outPath, rows, res.SummaryRow); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Evaluation completed", "rows", len(rows), "out", outPath)
	return res, nil
}

func writeJoinedCSV(path string, rows []types.EvalRow, summary []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create evaluation output: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"date", "sent_mean_weighted", "sent_mean", "n_items", "adj_close", "ret_fwd_1d"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.Date.Format("2006-01-02"),
			strconv.FormatFloat(row.SentMeanWeighted, 'f', -1, 64),
			strconv.FormatFloat(row.SentMean, 'f', -1, 64),
			strconv.Itoa(row.NItems),
			strconv.FormatFloat(row.AdjClose, 'f', -1, 64),
			strconv.FormatFloat(row.RetFwd1D, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	if err := w.Write(summary); err != nil {
		return err
	}
	return w.Error()
}

func readFeaturesCSV(path string) ([]types.DailyFeature, error) {
	records, idx, err := readTable(path)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}

	var out []types.DailyFeature
	for _, rec := range records {
		date, err := time.ParseInLocation("2006-01-02", rec[0], time.UTC)
		if err != nil {
			continue
		}
		smw, ok1 := parseFloatCell(cell(rec, idx, "sent_mean_weighted"))
		sm, _ := parseFloatCell(cell(rec, idx, "sent_mean"))
		if !ok1 {
			continue
		}
		n, _ := strconv.Atoi(cell(rec, idx, "n_items"))
		out = append(out, types.DailyFeature{
			Date:             date,
			SentMeanWeighted: smw,
			SentMean:         sm,
			NItems:           n,
		})
	}
	return out, nil
}

func readReturnsCSV(path string) ([]types.ReturnRecord, error) {
	records, idx, err := readTable(path)
	if err != nil {
		return nil, fmt.Errorf("read returns: %w", err)
	}

	var out []types.ReturnRecord
	for _, rec := range records {
		date, err := time.ParseInLocation("2006-01-02", rec[0], time.UTC)
		if err != nil {
			continue
		}
		adj, _ := parseFloatCell(cell(rec, idx, "adj_close"))
		ret, ok := parseFloatCell(cell(rec, idx, "ret_fwd_1d"))
		if !ok {
			continue
		}
		out = append(out, types.ReturnRecord{Date: date, AdjClose: adj, RetFwd1D: ret})
	}
	return out, nil
}

// readTable reads a headered CSV, returning data records and a
// column-name index.
func readTable(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s: empty table", path)
	}

	idx := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		idx[name] = i
	}
	return all[1:], idx, nil
}

func cell(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func parseFloatCell(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
