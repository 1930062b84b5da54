package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sector-sentiment/internal/types"
)

// Meta is the sidecar written next to each day's raw files so a run
// can be traced back to the scope settings that produced it.
type Meta struct {
	Scope         string   `json:"scope"`
	TimeFilter    string   `json:"time_filter"`
	Subreddits    []string `json:"subreddits"`
	Keywords      []string `json:"keywords"`
	PostsCount    int      `json:"posts_count"`
	CommentsCount int      `json:"comments_count"`
	IngestedAtUTC int64    `json:"ingested_at_utc"`
}

// Repository persists raw records as date-stamped JSONL files under
// <base>/<scope>/.
type Repository struct {
	dir string
}

// NewRepository creates the scope directory if needed.
func NewRepository(baseDir, scope string) (*Repository, error) {
	dir := filepath.Join(baseDir, scope)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create raw dir %s: %w", dir, err)
	}
	return &Repository{dir: dir}, nil
}

// Dir returns the scope directory records are written under.
func (r *Repository) Dir() string {
	return r.dir
}

// WriteAll writes posts, comments and the metadata sidecar for one
// ingest run, stamped with the run date.
func (r *Repository) WriteAll(posts, comments []types.RawRecord, meta Meta, runDate time.Time) error {
	stamp := runDate.Format("2006-01-02")

	if err := r.writeJSONL(fmt.Sprintf("posts_%s.jsonl", stamp), posts); err != nil {
		return err
	}
	if err := r.writeJSONL(fmt.Sprintf("comments_%s.jsonl", stamp), comments); err != nil {
		return err
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	metaPath := filepath.Join(r.dir, fmt.Sprintf("meta_%s.json", stamp))
	if err := os.WriteFile(metaPath, metaBytes, 0o644); err != nil {
		return fmt.Errorf("write meta %s: %w", metaPath, err)
	}
	return nil
}

func (r *Repository) writeJSONL(name string, rows []types.RawRecord) error {
	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
