package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scope.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
name: energy
tickers: [XOM, CVX]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Decay.Cap != 10.0 {
		t.Errorf("Expected default cap 10.0, got %v", cfg.Decay.Cap)
	}
	if cfg.MinScore != 5 {
		t.Errorf("Expected default min_score 5, got %d", cfg.MinScore)
	}
	if cfg.Ingest.MaxPostsPerQuery != 10 {
		t.Errorf("Expected default max_posts_per_query 10, got %d", cfg.Ingest.MaxPostsPerQuery)
	}
	if cfg.Ingest.TimeFilter != "week" {
		t.Errorf("Expected default time_filter week, got %q", cfg.Ingest.TimeFilter)
	}
	if cfg.Market.Source != "yahoo" {
		t.Errorf("Expected default market source yahoo, got %q", cfg.Market.Source)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			"negative lambda",
			"name: x\ntickers: [XOM]\ndecay:\n  lambda: -0.5\n",
			"lambda",
		},
		{
			"negative cap",
			"name: x\ntickers: [XOM]\ndecay:\n  cap: -1\n",
			"cap",
		},
		{
			"no tickers or keywords",
			"name: x\n",
			"tickers or keywords",
		},
		{
			"bad market source",
			"name: x\ntickers: [XOM]\nmarket:\n  source: bloomberg\n",
			"market.source",
		},
	}
	for _, tc := range cases {
		_, err := LoadConfig(writeConfig(t, tc.yaml))
		if err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err.Error(), tc.want)
		}
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := &Config{
		Tickers:          []string{" xom ", "CVX"},
		NameMap:          map[string]string{"Exxon Mobil": "XOM"},
		Keywords:         []string{"Oil", "OPEC"},
		SubredditWeights: map[string]float64{"energy": 1.2},
	}

	set := cfg.TickerSet()
	if !set["XOM"] || !set["CVX"] {
		t.Errorf("Expected trimmed uppercase ticker set, got %v", set)
	}

	nm := cfg.LoweredNameMap()
	if nm["exxon mobil"] != "XOM" {
		t.Errorf("Expected lowercased alias keys, got %v", nm)
	}

	kw := cfg.LoweredKeywords()
	if kw[0] != "oil" || kw[1] != "opec" {
		t.Errorf("Expected lowercased keywords, got %v", kw)
	}

	if w := cfg.SubredditWeight("energy"); w != 1.2 {
		t.Errorf("Expected configured weight 1.2, got %v", w)
	}
	if w := cfg.SubredditWeight("unknown"); w != 1.0 {
		t.Errorf("Expected default weight 1.0, got %v", w)
	}
}
