package clean

import (
	"regexp"
	"sort"
	"strings"
)

var symbolRe = regexp.MustCompile(`\b\$?([A-Z]{1,5})\b`)

// ExtractTickers collects uppercase symbols of 1-5 letters (optionally
// $-prefixed) that belong to the configured ticker set, unioned with
// tickers resolved from company-name aliases matched whole-word and
// case-insensitively. It runs on the original, uncleaned text so that
// casing evidence survives. The result is sorted and deduplicated.
func (c *Cleaner) ExtractTickers(text string) []string {
	syms := make(map[string]bool)

	for _, m := range symbolRe.FindAllStringSubmatch(text, -1) {
		if c.tickerSet[m[1]] {
			syms[m[1]] = true
		}
	}

	low := strings.ToLower(text)
	for name, re := range c.nameRes {
		if re.MatchString(low) {
			syms[c.nameMap[name]] = true
		}
	}

	out := make([]string, 0, len(syms))
	for s := range syms {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
