package ingest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"sector-sentiment/internal/api"
	"sector-sentiment/internal/interfaces"
	"sector-sentiment/internal/logger"
	"sector-sentiment/internal/store"
	"sector-sentiment/internal/types"
)

const redditBaseURL = "https://www.reddit.com"

// Service fetches raw posts and top comments for the configured scope
// from the Reddit listing API and hands them to a Repository. The
// pipeline core never calls this; it reads the files this writes.
type Service struct {
	client  *api.Client
	scraper *Scraper
	cfg     *store.Config
	repo    *Repository
	now     func() time.Time
}

var _ interfaces.ContentSource = (*Service)(nil)

// NewService creates an ingest service for one scope.
func NewService(cfg *store.Config, repo *Repository) *Service {
	return &Service{
		client: api.NewClient(
			api.WithTimeout(30*time.Second),
			api.WithHeader("User-Agent", "sector-sentiment research ingest/1.0"),
			api.WithLogging(true),
		),
		scraper: NewScraper(30 * time.Second),
		cfg:     cfg,
		repo:    repo,
		now:     time.Now,
	}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Kind string     `json:"kind"`
			Data redditItem `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditItem struct {
	ID          string  `json:"id"`
	Subreddit   string  `json:"subreddit"`
	CreatedUTC  float64 `json:"created_utc"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Body        string  `json:"body"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	URL         string  `json:"url"`
}

// FetchPosts searches every configured subreddit for every configured
// keyword, newest first. Failures on one subreddit/keyword pair fall
// back to the HTML scraper and never abort the whole run.
func (s *Service) FetchPosts(ctx context.Context) ([]types.RawRecord, error) {
	var rows []types.RawRecord
	for _, sub := range s.cfg.Ingest.Subreddits {
		for _, keyword := range s.cfg.Keywords {
			recs, err := s.searchSubreddit(ctx, sub, keyword)
			if err != nil {
				logger.Warn(ctx, "Listing API failed, falling back to scraper",
					"subreddit", sub, "keyword", keyword, "error", err)
				recs, err = s.scraper.ScrapeSearch(ctx, sub, keyword, s.cfg.Ingest.MaxPostsPerQuery)
				if err != nil {
					logger.ErrorWithErr(ctx, "Scraper fallback failed", err,
						"subreddit", sub, "keyword", keyword)
					continue
				}
			}
			for i := range recs {
				recs[i].KeywordMatched = keyword
				recs[i].ScopeName = s.cfg.Name
				recs[i].IngestedAtUTC = s.now().UTC().Unix()
			}
			rows = append(rows, recs...)
		}
	}
	logger.Info(ctx, "Post ingestion completed", "posts", len(rows))
	return rows, nil
}

func (s *Service) searchSubreddit(ctx context.Context, sub, keyword string) ([]types.RawRecord, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("restrict_sr", "1")
	params.Set("sort", "new")
	params.Set("t", s.cfg.Ingest.TimeFilter)
	params.Set("limit", strconv.Itoa(s.cfg.Ingest.MaxPostsPerQuery))

	var listing redditListing
	u := fmt.Sprintf("%s/r/%s/search.json", redditBaseURL, url.PathEscape(sub))
	if err := s.client.GetJSON(ctx, u, params, &listing); err != nil {
		return nil, err
	}

	var rows []types.RawRecord
	for _, child := range listing.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		item := child.Data
		rows = append(rows, types.RawRecord{
			PostID:      item.ID,
			Subreddit:   sub,
			CreatedUTC:  int64(item.CreatedUTC),
			Title:       item.Title,
			Selftext:    item.Selftext,
			Score:       item.Score,
			NumComments: item.NumComments,
			URL:         item.URL,
			IsComment:   false,
		})
	}
	return rows, nil
}

// FetchComments pulls the top-N comments for each post, ranked by
// listing order (rank 1 = top).
func (s *Service) FetchComments(ctx context.Context, postIDs []string) ([]types.RawRecord, error) {
	if !s.cfg.Ingest.SearchTopComments {
		return nil, nil
	}

	var rows []types.RawRecord
	for _, postID := range postIDs {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(s.cfg.Ingest.TopComments))
		params.Set("depth", "1")
		params.Set("sort", "top")

		var listings []redditListing
		u := fmt.Sprintf("%s/comments/%s.json", redditBaseURL, url.PathEscape(postID))
		if err := s.client.GetJSON(ctx, u, params, &listings); err != nil {
			logger.Warn(ctx, "Comment fetch failed", "post_id", postID, "error", err)
			continue
		}
		if len(listings) < 2 {
			continue
		}

		rank := 0
		for _, child := range listings[1].Data.Children {
			if child.Kind != "t1" {
				continue
			}
			rank++
			if rank > s.cfg.Ingest.TopComments {
				break
			}
			item := child.Data
			rows = append(rows, types.RawRecord{
				PostID:        postID,
				CommentID:     item.ID,
				CreatedUTC:    int64(item.CreatedUTC),
				CommentText:   item.Body,
				CommentScore:  item.Score,
				Rank:          rank,
				ScopeName:     s.cfg.Name,
				IngestedAtUTC: s.now().UTC().Unix(),
				IsComment:     true,
			})
		}
	}
	logger.Info(ctx, "Comment ingestion completed", "comments", len(rows))
	return rows, nil
}

// Run fetches posts plus comments and persists both with a metadata
// sidecar.
func (s *Service) Run(ctx context.Context) error {
	posts, err := s.FetchPosts(ctx)
	if err != nil {
		return fmt.Errorf("fetch posts: %w", err)
	}

	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.PostID)
	}
	comments, err := s.FetchComments(ctx, postIDs)
	if err != nil {
		return fmt.Errorf("fetch comments: %w", err)
	}

	meta := Meta{
		Scope:         s.cfg.Name,
		TimeFilter:    s.cfg.Ingest.TimeFilter,
		Subreddits:    s.cfg.Ingest.Subreddits,
		Keywords:      s.cfg.Keywords,
		PostsCount:    len(posts),
		CommentsCount: len(comments),
		IngestedAtUTC: s.now().UTC().Unix(),
	}
	return s.repo.WriteAll(posts, comments, meta, s.now().UTC())
}
