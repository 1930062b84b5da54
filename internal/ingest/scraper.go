package ingest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/types"
)

// Scraper is the HTML fallback used when the listing API refuses the
// request. It walks old.reddit search result pages, which render
// without JavaScript.
type Scraper struct {
	timeout time.Duration
}

// NewScraper creates a scraper with the given request timeout.
func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{timeout: timeout}
}

// ScrapeSearch scrapes one subreddit search page for a keyword and
// maps the results onto raw post records. Scores parsed from the page
// are approximate; fields the page does not expose stay zero.
func (s *Scraper) ScrapeSearch(ctx context.Context, subreddit, keyword string, maxPosts int) ([]types.RawRecord, error) {
	rows := []types.RawRecord{}

	c := colly.NewCollector(
		colly.AllowedDomains("old.reddit.com"),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML("div.search-result-link", func(e *colly.HTMLElement) {
		if len(rows) >= maxPosts {
			return
		}

		title := strings.TrimSpace(e.ChildText("a.search-title"))
		if title == "" {
			return
		}

		link := e.ChildAttr("a.search-title", "href")
		postID := postIDFromPermalink(link)
		if postID == "" {
			return
		}

		var createdUTC int64
		if ts, err := time.Parse(time.RFC3339, e.ChildAttr("time", "datetime")); err == nil {
			createdUTC = ts.UTC().Unix()
		}

		score := parseLeadingInt(e.ChildText("span.search-score"))
		numComments := parseLeadingInt(e.ChildText("a.search-comments"))

		// Result cards carry at most a body snippet; the full selftext
		// comes from the comments endpoint when comments are on.
		body := resultBody(e.DOM)

		rows = append(rows, types.RawRecord{
			PostID:      postID,
			Subreddit:   subreddit,
			CreatedUTC:  createdUTC,
			Title:       title,
			Selftext:    body,
			Score:       score,
			NumComments: numComments,
			URL:         link,
			IsComment:   false,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "url", r.Request.URL.String())
	})

	searchURL := fmt.Sprintf("https://old.reddit.com/r/%s/search?q=%s&restrict_sr=on&sort=new",
		url.PathEscape(subreddit), url.QueryEscape(keyword))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", searchURL, err)
	}
	c.Wait()

	logger.Info(ctx, "Scrape fallback completed", "subreddit", subreddit, "keyword", keyword, "posts", len(rows))
	return rows, nil
}

// resultBody extracts the snippet paragraphs of one search result card,
// skipping quoted lines the site renders inside the snippet.
func resultBody(sel *goquery.Selection) string {
	var parts []string
	sel.Find("div.search-result-body p, div.search-result-body").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" && !strings.HasPrefix(text, ">") {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// postIDFromPermalink pulls the base36 id out of a permalink like
// /r/energy/comments/1abc2d/some_title/.
func postIDFromPermalink(link string) string {
	parts := strings.Split(strings.Trim(link, "/"), "/")
	for i, p := range parts {
		if p == "comments" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// parseLeadingInt reads the first integer in strings like
// "142 points" or "57 comments".
func parseLeadingInt(s string) int {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil {
		return 0
	}
	return n
}
