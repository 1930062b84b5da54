package features

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/store"
	"sector-sentiment/internal/types"
)

// Annotator attaches sentiment scores and engagement weights to cleaned
// records. Stateless apart from loaded configuration and the lexicon.
type Annotator struct {
	analyzer         *SentimentAnalyzer
	lambda           float64
	cap              float64
	subredditWeights map[string]float64
}

// NewAnnotator builds an Annotator from scope config.
func NewAnnotator(cfg *store.Config) *Annotator {
	return &Annotator{
		analyzer:         NewSentimentAnalyzer(),
		lambda:           cfg.Decay.Lambda,
		cap:              cfg.Decay.Cap,
		subredditWeights: cfg.SubredditWeights,
	}
}

func (a *Annotator) subredditWeight(name string) float64 {
	if w, ok := a.subredditWeights[name]; ok {
		return w
	}
	return 1.0
}

// Annotate scores one cleaned record and attaches its source type and
// weight.
func (a *Annotator) Annotate(rec types.CleanedRecord) types.ScoredRecord {
	s := a.analyzer.PolarityScores(rec.TextClean)
	out := types.ScoredRecord{
		CleanedRecord: rec,
		Compound:      s.Compound,
		Pos:           s.Pos,
		Neg:           s.Neg,
		Neu:           s.Neu,
		SourceType:    types.SourcePost,
	}
	if rec.IsComment {
		out.SourceType = types.SourceComment
	}
	out.Weight = a.ComputeWeight(&rec, false)
	return out
}

// ProcessFile streams cleaned JSONL into scored JSONL. Records with a
// missing or blank text_clean are skipped; malformed lines are skipped,
// not fatal.
func (a *Annotator) ProcessFile(ctx context.Context, inPath, outPath string) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("open cleaned records: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create scored output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	scored := 0
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec types.CleanedRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if strings.TrimSpace(rec.TextClean) == "" {
			continue
		}
		b, err := json.Marshal(a.Annotate(rec))
		if err != nil {
			return scored, fmt.Errorf("marshal scored record %s: %w", rec.PostID, err)
		}
		if _, err := fmt.Fprintln(w, string(b)); err != nil {
			return scored, err
		}
		scored++
	}
	if err := sc.Err(); err != nil {
		return scored, fmt.Errorf("scan cleaned records: %w", err)
	}

	logger.Info(ctx, "Scoring completed", "in", inPath, "out", outPath, "scored", scored)
	return scored, nil
}
