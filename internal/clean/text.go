package clean

import (
	"regexp"
	"strings"
)

var (
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	urlWrapRe    = regexp.MustCompile(`(https?://[^\s]+|www\.[^\s]+)`)
	blockquoteRe = regexp.MustCompile(`(?m)^>.*$`)
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]+`")
	urlSpamRe    = regexp.MustCompile(`https?://[^\s]+`)
)

// spamPhrases are matched case-insensitively anywhere in the cleaned text.
var spamPhrases = []string{"buy now", "free", "click here", "subscribe", "visit", "offer"}

// NormalizeText cleans the concatenated title+selftext. Emails and URLs
// are wrapped in angle brackets rather than stripped, whitespace runs
// collapse to one space, and blockquote lines plus fenced/inline code
// spans are removed. The substitution order is significant and must not
// change: later patterns operate on the output of earlier ones.
func NormalizeText(text string) string {
	text = emailRe.ReplaceAllString(text, "<${0}>")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = urlWrapRe.ReplaceAllString(text, "<${0}>")
	text = blockquoteRe.ReplaceAllString(text, "")
	text = fencedCodeRe.ReplaceAllString(text, "")
	text = inlineCodeRe.ReplaceAllString(text, "")
	return text
}

// IsSpam classifies normalized text. A record is spam when it contains a
// known spam phrase, is a low-content link (URL with three or fewer
// words total), or carries more than five exclamation marks.
func IsSpam(cleanText string) bool {
	low := strings.ToLower(cleanText)
	for _, phrase := range spamPhrases {
		if strings.Contains(low, phrase) {
			return true
		}
	}
	if urlSpamRe.MatchString(cleanText) && len(strings.Fields(cleanText)) <= 3 {
		return true
	}
	if strings.Count(cleanText, "!") > 5 {
		return true
	}
	return false
}
