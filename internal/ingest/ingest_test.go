package ingest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sector-sentiment/internal/types"
)

func TestPostIDFromPermalink(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"/r/energy/comments/1abc2d/some_title/", "1abc2d"},
		{"https://old.reddit.com/r/stocks/comments/xyz9/title", "xyz9"},
		{"/r/energy/hot/", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := postIDFromPermalink(tc.link); got != tc.want {
			t.Errorf("postIDFromPermalink(%q) = %q, want %q", tc.link, got, tc.want)
		}
	}
}

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"142 points", 142},
		{"1,204 points", 1204},
		{"57 comments", 57},
		{"comment", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := parseLeadingInt(tc.in); got != tc.want {
			t.Errorf("parseLeadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRepositoryWriteAll(t *testing.T) {
	base := t.TempDir()
	repo, err := NewRepository(base, "energy")
	if err != nil {
		t.Fatal(err)
	}

	runDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []types.RawRecord{
		{PostID: "p1", Subreddit: "stocks", CreatedUTC: 1709290000, Title: "XOM earnings", Score: 12},
	}
	comments := []types.RawRecord{
		{PostID: "p1", CommentID: "c1", CommentText: "solid quarter", CommentScore: 4, Rank: 1, IsComment: true},
	}
	meta := Meta{Scope: "energy", PostsCount: 1, CommentsCount: 1}

	if err := repo.WriteAll(posts, comments, meta, runDate); err != nil {
		t.Fatal(err)
	}

	postsPath := filepath.Join(base, "energy", "posts_2024-03-01.jsonl")
	b, err := os.ReadFile(postsPath)
	if err != nil {
		t.Fatal(err)
	}
	var rec types.RawRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		t.Fatalf("posts file is not valid JSONL: %v", err)
	}
	if rec.PostID != "p1" || rec.Title != "XOM earnings" {
		t.Errorf("Unexpected post record: %+v", rec)
	}

	if _, err := os.Stat(filepath.Join(base, "energy", "comments_2024-03-01.jsonl")); err != nil {
		t.Errorf("Expected comments file: %v", err)
	}

	metaPath := filepath.Join(base, "energy", "meta_2024-03-01.json")
	mb, err := os.ReadFile(metaPath)
	if err != nil {
		t.Fatal(err)
	}
	var gotMeta Meta
	if err := json.Unmarshal(mb, &gotMeta); err != nil {
		t.Fatal(err)
	}
	if gotMeta.Scope != "energy" || gotMeta.PostsCount != 1 {
		t.Errorf("Unexpected meta: %+v", gotMeta)
	}
}
