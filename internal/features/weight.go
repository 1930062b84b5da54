package features

import (
	"math"

	"sector-sentiment/internal/types"
)

// ComputeWeight returns the engagement weight for a cleaned record.
// Posts lean on score and num_comments, comments on comment_score and
// rank. Every factor is non-negative by construction and the result is
// clamped to the configured cap; missing inputs default to zero, never
// error.
func (a *Annotator) ComputeWeight(rec *types.CleanedRecord, spam bool) float64 {
	ageHours := math.Max(0, float64(rec.IngestedAtUTC-rec.CreatedUTC)/3600.0)
	decay := math.Exp(-a.lambda * ageHours)

	entityBoost := 1.0 + 0.2*float64(len(rec.Tickers))
	if rec.SectorKeywordPresent {
		entityBoost += 0.2
	}

	if rec.IsComment {
		cs := float64(max(0, rec.CommentScore))
		rank := rec.Rank
		if rank == 0 {
			rank = 1
		}
		rankFactor := 1.0 / float64(max(1, rank))
		base := 1 + math.Log1p(cs)
		scale := 1.0 / float64(1+max(0, rec.NumComments))
		return math.Min(a.cap, base*rankFactor*decay*entityBoost*scale)
	}

	sc := float64(max(0, rec.Score))
	nc := float64(max(0, rec.NumComments))
	base := 1.0 + math.Log1p(sc) + 0.5*math.Log1p(nc)
	subW := a.subredditWeight(rec.Subreddit)
	quality := 1.0
	if spam {
		quality = 0.2
	}
	shortPenalty := 1.0
	if rec.TextLenWords < 5 {
		shortPenalty = 0.5
	}
	return math.Min(a.cap, base*entityBoost*decay*subW*quality*shortPenalty)
}
