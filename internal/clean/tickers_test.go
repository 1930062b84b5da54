package clean

import (
	"reflect"
	"testing"
)

func TestExtractTickers(t *testing.T) {
	c := NewCleaner(testConfig())

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"dollar symbol and alias dedup", "I like $AAPL and Apple Inc", []string{"AAPL"}},
		{"bare symbol", "AAPL keeps climbing", []string{"AAPL"}},
		{"alias only", "Exxon posted record profits", []string{"XOM"}},
		{"multiple sorted", "Rotating out of $XOM into $CVX and AAPL", []string{"AAPL", "CVX", "XOM"}},
		{"lowercase symbol ignored", "I think aapl is overvalued", nil},
		{"unknown symbol ignored", "$TSLA is not in this scope", nil},
		{"alias needs word boundary", "pineapple incorporated", nil},
	}
	for _, tc := range cases {
		got := c.ExtractTickers(tc.text)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
