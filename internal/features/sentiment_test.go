package features

import (
	"strings"
	"testing"
)

func TestPolarityScoresSign(t *testing.T) {
	sa := NewSentimentAnalyzer()

	cases := []struct {
		name string
		text string
		sign int
	}{
		{"positive word", "the results were good", 1},
		{"negative word", "the results were bad", -1},
		{"negated positive", "the results were not good", -1},
		{"negated negative", "the results were not bad", 1},
		{"neutral text", "the meeting is on tuesday", 0},
		{"contrast favors clause after but", "the quarter was great but the guidance is terrible", -1},
	}
	for _, tc := range cases {
		got := sa.PolarityScores(tc.text).Compound
		switch {
		case tc.sign > 0 && got <= 0:
			t.Errorf("%s: expected positive compound, got %v", tc.name, got)
		case tc.sign < 0 && got >= 0:
			t.Errorf("%s: expected negative compound, got %v", tc.name, got)
		case tc.sign == 0 && got != 0:
			t.Errorf("%s: expected zero compound, got %v", tc.name, got)
		}
	}
}

func TestPolarityScoresBooster(t *testing.T) {
	sa := NewSentimentAnalyzer()
	plain := sa.PolarityScores("the stock looks good").Compound
	boosted := sa.PolarityScores("the stock looks very good").Compound
	if boosted <= plain {
		t.Errorf("Expected booster to raise compound: %v vs %v", boosted, plain)
	}
}

func TestPolarityScoresExclamation(t *testing.T) {
	sa := NewSentimentAnalyzer()
	plain := sa.PolarityScores("earnings were great").Compound
	excited := sa.PolarityScores("earnings were great!!").Compound
	if excited <= plain {
		t.Errorf("Expected exclamation emphasis to raise compound: %v vs %v", excited, plain)
	}
}

func TestPolarityScoresCaps(t *testing.T) {
	sa := NewSentimentAnalyzer()
	plain := sa.PolarityScores("this rally is good today").Compound
	shouted := sa.PolarityScores("this rally is GOOD today").Compound
	if shouted <= plain {
		t.Errorf("Expected ALL-CAPS emphasis to raise compound: %v vs %v", shouted, plain)
	}
}

func TestPolarityScoresBounds(t *testing.T) {
	sa := NewSentimentAnalyzer()
	long := strings.Repeat("great gain profit love win ", 20)
	s := sa.PolarityScores(long)
	if s.Compound < -1 || s.Compound > 1 {
		t.Errorf("Compound out of [-1, 1]: %v", s.Compound)
	}
	if s.Pos < 0 || s.Pos > 1 || s.Neg < 0 || s.Neg > 1 || s.Neu < 0 || s.Neu > 1 {
		t.Errorf("Proportions out of [0, 1]: pos=%v neg=%v neu=%v", s.Pos, s.Neg, s.Neu)
	}
}

func TestPolarityScoresEmpty(t *testing.T) {
	sa := NewSentimentAnalyzer()
	s := sa.PolarityScores("   ")
	if s.Compound != 0 || s.Pos != 0 || s.Neg != 0 || s.Neu != 0 {
		t.Errorf("Expected all-zero scores for empty text, got %+v", s)
	}
}
