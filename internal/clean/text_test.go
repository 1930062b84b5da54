package clean

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"email wrapped",
			"reach me at someone@example.com for details",
			"reach me at <someone@example.com> for details",
		},
		{
			"url wrapped",
			"see https://example.com/report for the filing",
			"see <https://example.com/report> for the filing",
		},
		{
			"www url wrapped",
			"see www.example.com for the filing",
			"see <www.example.com> for the filing",
		},
		{
			"whitespace collapsed",
			"too   many    spaces",
			"too many spaces",
		},
		{
			"blockquote removed",
			"my take\n> quoted reply\nconclusion",
			"my take\n\nconclusion",
		},
		{
			"fenced code removed",
			"before ```x = 1\ny = 2``` after",
			"before  after",
		},
		{
			"inline code removed",
			"run `df.head()` first",
			"run  first",
		},
	}
	for _, tc := range cases {
		if got := NormalizeText(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsSpam(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"spam phrase with exclamations", "Click here to buy now!!!!!!", true},
		{"risk free pitch", "Risk free returns guaranteed", true},
		{"url with two words", "check https://example.com/deal", true},
		{"too many exclamations", "TO THE MOON! ! ! ! ! !", true},
		{"thoughtful post", "A longer thoughtful post about buybacks and dividend policy at the majors", false},
		{"url in a real discussion", "The earnings deck at https://example.com/q3 shows margins expanding again this quarter", false},
	}
	for _, tc := range cases {
		if got := IsSpam(tc.text); got != tc.want {
			t.Errorf("%s: IsSpam=%v, want %v", tc.name, got, tc.want)
		}
	}
}
