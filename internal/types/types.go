package types

import "time"

// SourceType distinguishes the two record kinds the weight formula
// branches on.
type SourceType string

const (
	SourcePost    SourceType = "post"
	SourceComment SourceType = "comment"
)

// RawRecord is one social post or comment as written by the ingest step.
// Immutable once ingested; optional numeric fields default to zero.
type RawRecord struct {
	PostID      string `json:"post_id"`
	Subreddit   string `json:"subreddit,omitempty"`
	CreatedUTC  int64  `json:"created_utc"`
	Title       string `json:"title,omitempty"`
	Selftext    string `json:"selftext,omitempty"`
	Score       int    `json:"score,omitempty"`
	NumComments int    `json:"num_comments,omitempty"`
	URL         string `json:"url,omitempty"`
	IsComment   bool   `json:"is_comment"`

	// Comment-only fields.
	CommentID    string `json:"comment_id,omitempty"`
	CommentText  string `json:"comment_text,omitempty"`
	CommentScore int    `json:"comment_score,omitempty"`
	Rank         int    `json:"rank,omitempty"`

	// Ingest metadata.
	KeywordMatched string `json:"keyword_matched,omitempty"`
	ScopeName      string `json:"scope_name,omitempty"`
	IngestedAtUTC  int64  `json:"ingested_at_utc,omitempty"`
}

// CleanedRecord is a RawRecord that passed the row filter plus the
// derived text fields. Spam records are dropped before this stage, so a
// CleanedRecord is never spam-flagged.
type CleanedRecord struct {
	RawRecord

	TextClean            string   `json:"text_clean"`
	TextLenWords         int      `json:"text_len_words"`
	IsEnglish            bool     `json:"is_english"`
	Tickers              []string `json:"tickers"`
	HasTicker            bool     `json:"has_ticker"`
	SectorKeywordPresent bool     `json:"sector_keyword_present"`
	InScope              bool     `json:"in_scope"`
}

// ScoredRecord is a CleanedRecord with sentiment sub-scores and the
// engagement weight attached. One-to-one with CleanedRecord.
type ScoredRecord struct {
	CleanedRecord

	Compound   float64    `json:"compound"`
	Pos        float64    `json:"pos"`
	Neg        float64    `json:"neg"`
	Neu        float64    `json:"neu"`
	SourceType SourceType `json:"source_type"`
	Weight     float64    `json:"weight"`
}

// DailyFeature is one row of the aggregated daily time series. Date is
// normalized to UTC midnight.
type DailyFeature struct {
	Date             time.Time
	SentMeanWeighted float64
	SentMean         float64
	NItems           int
}

// PricePoint is one adjusted-close observation from a price source.
type PricePoint struct {
	Date     time.Time
	AdjClose float64
}

// ReturnRecord pairs an adjusted close with its forward one-day return.
// The last date of a fetched range has no forward return and is dropped.
type ReturnRecord struct {
	Date     time.Time
	AdjClose float64
	RetFwd1D float64
}

// EvalRow is one joined row of the evaluation table.
type EvalRow struct {
	Date             time.Time
	SentMeanWeighted float64
	SentMean         float64
	NItems           int
	AdjClose         float64
	RetFwd1D         float64
}
