package clean

import (
	"encoding/json"
	"strings"

	"github.com/abadojack/whatlanggo"

	"sector-sentiment/internal/types"
)

// createdProbe distinguishes a missing created_utc from an explicit zero.
type createdProbe struct {
	CreatedUTC *int64 `json:"created_utc"`
}

// AcceptLine parses one raw JSONL line and applies the ordered row
// checks, cheapest first, short-circuiting on the first failure:
//
//  1. line parses as a JSON object (malformed lines are skipped, not fatal)
//  2. created_utc exists and lies inside the inclusive [startTS, endTS] window
//  3. post_id is non-empty after trimming
//  4. at least one of title/selftext is non-empty after trimming
//  5. score meets the configured upvote threshold
//  6. concatenated title+selftext is non-empty
//  7. the text classifies as English (detector failure counts as rejection)
//
// The second return reports whether the record passed.
func (c *Cleaner) AcceptLine(line []byte, startTS, endTS int64) (types.RawRecord, bool) {
	if len(strings.TrimSpace(string(line))) == 0 {
		return types.RawRecord{}, false
	}

	var rec types.RawRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return types.RawRecord{}, false
	}

	var probe createdProbe
	if err := json.Unmarshal(line, &probe); err != nil || probe.CreatedUTC == nil {
		return types.RawRecord{}, false
	}
	if rec.CreatedUTC < startTS || rec.CreatedUTC > endTS {
		return types.RawRecord{}, false
	}

	if strings.TrimSpace(rec.PostID) == "" {
		return types.RawRecord{}, false
	}

	titleOK := strings.TrimSpace(rec.Title) != ""
	bodyOK := strings.TrimSpace(rec.Selftext) != ""
	if !titleOK && !bodyOK {
		return types.RawRecord{}, false
	}

	if rec.Score < c.minScore {
		return types.RawRecord{}, false
	}

	text := strings.TrimSpace(rec.Title + " " + rec.Selftext)
	if text == "" {
		return types.RawRecord{}, false
	}

	if !isEnglish(text) {
		return types.RawRecord{}, false
	}

	return rec, true
}

func isEnglish(text string) bool {
	info := whatlanggo.Detect(text)
	return info.Lang == whatlanggo.Eng
}
