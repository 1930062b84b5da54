package clean

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/store"
	"sector-sentiment/internal/types"
)

// Cleaner applies the row filter, text normalization, spam rejection and
// scope detection for one configured sector. It holds only loaded
// configuration and is safe to reuse across files.
type Cleaner struct {
	tickerSet map[string]bool
	nameRes   map[string]*regexp.Regexp // lowercased alias -> whole-word matcher
	nameMap   map[string]string         // lowercased alias -> ticker
	keywords  []string                  // lowercased sector keywords
	minScore  int
}

// NewCleaner builds a Cleaner from scope config. Company-name aliases are
// compiled once into whole-word matchers.
func NewCleaner(cfg *store.Config) *Cleaner {
	nameMap := cfg.LoweredNameMap()
	nameRes := make(map[string]*regexp.Regexp, len(nameMap))
	for name := range nameMap {
		nameRes[name] = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	}
	return &Cleaner{
		tickerSet: cfg.TickerSet(),
		nameRes:   nameRes,
		nameMap:   nameMap,
		keywords:  cfg.LoweredKeywords(),
		minScore:  cfg.MinScore,
	}
}

// BuildCleaned normalizes one filtered record and derives the scope
// fields. The second return is false when the record is classified as
// spam and must be dropped.
func (c *Cleaner) BuildCleaned(rec types.RawRecord) (types.CleanedRecord, bool) {
	original := strings.TrimSpace(rec.Title + " " + rec.Selftext)
	textClean := NormalizeText(original)
	if IsSpam(textClean) {
		return types.CleanedRecord{}, false
	}

	low := strings.ToLower(textClean)
	tickers := c.ExtractTickers(rec.Title + " " + rec.Selftext)

	out := types.CleanedRecord{
		RawRecord:    rec,
		TextClean:    textClean,
		TextLenWords: len(strings.Fields(textClean)),
		IsEnglish:    true,
		Tickers:      tickers,
		HasTicker:    len(tickers) > 0,
	}
	for _, k := range c.keywords {
		if strings.Contains(low, k) {
			out.SectorKeywordPresent = true
			break
		}
	}
	out.InScope = out.HasTicker || out.SectorKeywordPresent
	return out, true
}

// CleanStream runs the row filter and the normalizer back to back,
// streaming rawPath into a cleaned JSONL file at outPath. It returns the
// number of records kept.
func (c *Cleaner) CleanStream(ctx context.Context, rawPath string, startTS, endTS int64, outPath string) (int, error) {
	in, err := os.Open(rawPath)
	if err != nil {
		return 0, fmt.Errorf("open raw posts: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create clean output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	kept := 0
	seen := 0
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		seen++
		rec, ok := c.AcceptLine(sc.Bytes(), startTS, endTS)
		if !ok {
			continue
		}
		cleaned, ok := c.BuildCleaned(rec)
		if !ok {
			continue
		}
		b, err := json.Marshal(cleaned)
		if err != nil {
			return kept, fmt.Errorf("marshal cleaned record %s: %w", rec.PostID, err)
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return kept, err
		}
		kept++
	}
	if err := sc.Err(); err != nil {
		return kept, fmt.Errorf("scan raw posts: %w", err)
	}

	logger.Info(ctx, "Cleaning completed", "in", rawPath, "out", outPath, "lines", seen, "kept", kept)
	return kept, nil
}
