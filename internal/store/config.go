package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the scope configuration for one pipeline run. It is loaded
// once and passed explicitly into each stage; nothing mutates it after
// LoadConfig returns.
type Config struct {
	Name     string            `yaml:"name"`
	Tickers  []string          `yaml:"tickers"`
	NameMap  map[string]string `yaml:"name_map"`
	Keywords []string          `yaml:"keywords"`

	Decay struct {
		Lambda float64 `yaml:"lambda"`
		Cap    float64 `yaml:"cap"`
	} `yaml:"decay"`

	SubredditWeights map[string]float64 `yaml:"subreddit_weights"`

	// MinScore is the upvote threshold applied by the row filter.
	MinScore int `yaml:"min_score"`

	Ingest struct {
		Subreddits        []string `yaml:"subreddits"`
		TimeFilter        string   `yaml:"time_filter"`
		MaxPostsPerQuery  int      `yaml:"max_posts_per_query"`
		SearchTopComments bool     `yaml:"search_top_comments"`
		TopComments       int      `yaml:"top_comments"`
	} `yaml:"ingest"`

	Market struct {
		Source string `yaml:"source"`
	} `yaml:"market"`
}

// TickerSet returns the configured ticker symbols as a lookup set.
func (c *Config) TickerSet() map[string]bool {
	set := make(map[string]bool, len(c.Tickers))
	for _, t := range c.Tickers {
		set[strings.ToUpper(strings.TrimSpace(t))] = true
	}
	return set
}

// LoweredNameMap returns the company-name alias map with lowercased keys,
// the form the ticker extractor matches against.
func (c *Config) LoweredNameMap() map[string]string {
	m := make(map[string]string, len(c.NameMap))
	for name, sym := range c.NameMap {
		m[strings.ToLower(name)] = sym
	}
	return m
}

// LoweredKeywords returns the sector keywords lowercased.
func (c *Config) LoweredKeywords() []string {
	out := make([]string, 0, len(c.Keywords))
	for _, k := range c.Keywords {
		out = append(out, strings.ToLower(k))
	}
	return out
}

// SubredditWeight returns the configured weight for a subreddit,
// defaulting to 1.0.
func (c *Config) SubredditWeight(name string) float64 {
	if w, ok := c.SubredditWeights[name]; ok {
		return w
	}
	return 1.0
}

func (c *Config) Validate() error {
	if c.Decay.Cap <= 0 {
		return fmt.Errorf("decay.cap must be positive, got %v", c.Decay.Cap)
	}
	if c.Decay.Lambda < 0 {
		return fmt.Errorf("decay.lambda must be non-negative, got %v", c.Decay.Lambda)
	}
	if len(c.Tickers) == 0 && len(c.Keywords) == 0 {
		return errors.New("scope needs at least one of tickers or keywords")
	}
	switch c.Market.Source {
	case "yahoo", "kite", "mock":
	default:
		return fmt.Errorf("market.source must be 'yahoo', 'kite' or 'mock', got '%s'", c.Market.Source)
	}
	return nil
}

// LoadConfig reads and validates a scope config, applying defaults for
// absent keys.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Decay.Cap == 0 {
		c.Decay.Cap = 10.0
	}
	if c.MinScore == 0 {
		c.MinScore = 5
	}
	if c.Ingest.MaxPostsPerQuery == 0 {
		c.Ingest.MaxPostsPerQuery = 10
	}
	if c.Ingest.TimeFilter == "" {
		c.Ingest.TimeFilter = "week"
	}
	if c.Market.Source == "" {
		c.Market.Source = "yahoo"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
