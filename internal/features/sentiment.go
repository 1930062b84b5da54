package features

import (
	"math"
	"strings"
	"unicode"
)

// Sentiment holds the polarity scores for one text: compound in [-1, 1]
// and pos/neg/neu proportions in [0, 1].
type Sentiment struct {
	Compound float64 `json:"compound"`
	Pos      float64 `json:"pos"`
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
}

// Rule constants, matching the reference lexicon model: booster step,
// negation dampener, ALL-CAPS emphasis, exclamation/question emphasis
// and the alpha used to normalize the raw valence sum.
const (
	boosterIncr   = 0.293
	negationScale = -0.74
	capsIncr      = 0.733
	exclamIncr    = 0.292
	normAlpha     = 15.0
)

// SentimentAnalyzer scores text with a valence lexicon plus the standard
// heuristics: negation windows, intensifiers with distance damping,
// contrastive "but" re-weighting, punctuation emphasis and ALL-CAPS
// emphasis.
type SentimentAnalyzer struct {
	lexicon   map[string]float64
	boosters  map[string]float64
	negations map[string]bool
}

// NewSentimentAnalyzer creates an analyzer with the built-in lexicon.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		lexicon:   loadValenceLexicon(),
		boosters:  loadBoosterWords(),
		negations: loadNegationWords(),
	}
}

// PolarityScores computes the sentiment of one text.
func (sa *SentimentAnalyzer) PolarityScores(text string) Sentiment {
	words := tokenizeKeepCase(text)
	if len(words) == 0 {
		return Sentiment{Neu: 0.0}
	}

	mixedCaps := hasMixedCaps(words)

	valences := make([]float64, len(words))
	for i, w := range words {
		low := strings.ToLower(w)
		v, ok := sa.lexicon[low]
		if !ok {
			continue
		}

		if mixedCaps && isAllCaps(w) {
			if v > 0 {
				v += capsIncr
			} else {
				v -= capsIncr
			}
		}

		// Look back up to three words for boosters and negations,
		// damping boosters with distance.
		for dist := 1; dist <= 3 && i-dist >= 0; dist++ {
			prev := strings.ToLower(words[i-dist])
			if _, isLex := sa.lexicon[prev]; isLex {
				continue
			}
			if b, isBooster := sa.boosters[prev]; isBooster {
				scalar := b
				if v < 0 {
					scalar = -scalar
				}
				if mixedCaps && isAllCaps(words[i-dist]) {
					if v > 0 {
						scalar += capsIncr
					} else {
						scalar -= capsIncr
					}
				}
				switch dist {
				case 2:
					scalar *= 0.95
				case 3:
					scalar *= 0.9
				}
				v += scalar
			}
			if sa.negations[prev] {
				v *= negationScale
			}
		}

		valences[i] = v
	}

	// Contrastive conjunction: sentiment after "but" dominates.
	for i, w := range words {
		if strings.ToLower(w) == "but" {
			for j := range valences {
				if j < i {
					valences[j] *= 0.5
				} else if j > i {
					valences[j] *= 1.5
				}
			}
			break
		}
	}

	var sum float64
	var posSum, negSum float64
	neuCount := 0
	for _, v := range valences {
		sum += v
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += v - 1
		default:
			neuCount++
		}
	}

	punct := punctuationEmphasis(text)
	if sum > 0 {
		sum += punct
	} else if sum < 0 {
		sum -= punct
	}

	if posSum > math.Abs(negSum) {
		posSum += punct
	} else if posSum < math.Abs(negSum) {
		negSum -= punct
	}

	total := posSum + math.Abs(negSum) + float64(neuCount)
	out := Sentiment{Compound: normalizeScore(sum)}
	if total > 0 {
		out.Pos = round3(math.Abs(posSum / total))
		out.Neg = round3(math.Abs(negSum / total))
		out.Neu = round3(math.Abs(float64(neuCount) / total))
	}
	return out
}

// punctuationEmphasis scores exclamation marks (capped at four) and
// repeated question marks.
func punctuationEmphasis(text string) float64 {
	ep := strings.Count(text, "!")
	if ep > 4 {
		ep = 4
	}
	amp := float64(ep) * exclamIncr

	qm := strings.Count(text, "?")
	if qm > 1 {
		if qm <= 3 {
			amp += float64(qm) * 0.18
		} else {
			amp += 0.96
		}
	}
	return amp
}

// normalizeScore maps the raw valence sum into [-1, 1].
func normalizeScore(sum float64) float64 {
	norm := sum / math.Sqrt(sum*sum+normAlpha)
	if norm < -1 {
		return -1
	}
	if norm > 1 {
		return 1
	}
	return norm
}

func tokenizeKeepCase(text string) []string {
	var words []string
	var cur strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' {
			cur.WriteRune(r)
		} else if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

func isAllCaps(w string) bool {
	hasLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// hasMixedCaps reports whether some but not all words are ALL-CAPS;
// emphasis only means something when the whole text is not shouted.
func hasMixedCaps(words []string) bool {
	caps := 0
	for _, w := range words {
		if isAllCaps(w) {
			caps++
		}
	}
	return caps > 0 && caps < len(words)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
