package features

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sector-sentiment/internal/types"
)

func TestAnnotateSourceType(t *testing.T) {
	a := testAnnotator()

	post := basePost()
	post.TextClean = "the results were good"
	scored := a.Annotate(post)
	if scored.SourceType != types.SourcePost {
		t.Errorf("Expected source_type post, got %q", scored.SourceType)
	}
	if scored.Compound <= 0 {
		t.Errorf("Expected positive compound for positive text, got %v", scored.Compound)
	}
	if scored.Weight <= 0 {
		t.Errorf("Expected positive weight, got %v", scored.Weight)
	}

	comment := basePost()
	comment.IsComment = true
	comment.Rank = 1
	scored = a.Annotate(comment)
	if scored.SourceType != types.SourceComment {
		t.Errorf("Expected source_type comment, got %q", scored.SourceType)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "clean.jsonl")
	outPath := filepath.Join(dir, "scored.jsonl")

	lines := []string{
		`{"post_id":"p1","created_utc":1000,"ingested_at_utc":1000,"text_clean":"earnings were great","text_len_words":3,"in_scope":true}`,
		`{"post_id":"p2","created_utc":1000,"ingested_at_utc":1000,"text_clean":"  ","text_len_words":0}`,
		`{"post_id":"broken"`,
		``,
	}
	if err := os.WriteFile(inPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := testAnnotator()
	n, err := a.ProcessFile(context.Background(), inPath, outPath)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("Expected 1 scored record, got %d", n)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		t.Fatal("Expected one output line")
	}
	var rec types.ScoredRecord
	if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.PostID != "p1" {
		t.Errorf("Expected p1, got %q", rec.PostID)
	}
	if rec.Compound <= 0 {
		t.Errorf("Expected positive compound, got %v", rec.Compound)
	}
	if rec.Weight != 0.5 {
		t.Errorf("Expected short-text weight 0.5, got %v", rec.Weight)
	}
}
