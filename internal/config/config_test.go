package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("a missing config file should not be an error: %v", err)
	}
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadParsesYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
fuzzy_match_threshold: 80
concurrent_scrapes: 12
minor_league_denylist: ["reserve", "u23"]
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FuzzyMatchThreshold != 80 {
		t.Fatalf("got %v, want 80", cfg.FuzzyMatchThreshold)
	}
	if cfg.ConcurrentScrapes != 12 {
		t.Fatalf("got %v, want 12", cfg.ConcurrentScrapes)
	}
	if len(cfg.MinorLeagueDenylist) != 2 {
		t.Fatalf("got %v", cfg.MinorLeagueDenylist)
	}
	// Fields the fixture omits should still carry their defaults.
	if cfg.ScrapeTimeoutSeconds != 60 {
		t.Fatalf("got %v, want the default of 60", cfg.ScrapeTimeoutSeconds)
	}
}

func TestEnvOverridesWinOverFileAndDefaults(t *testing.T) {
	// concurrent_scrapes comes from the file; redis_url is left at its default.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("concurrent_scrapes: 12\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}
	t.Setenv("PRICEDGE_REDIS_URL", "redis://override:6379")
	t.Setenv("PRICEDGE_CONCURRENT_SCRAPES", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RedisURL != "redis://override:6379" {
		t.Fatalf("got %q", cfg.RedisURL)
	}
	if cfg.ConcurrentScrapes != 20 {
		t.Fatalf("got %v", cfg.ConcurrentScrapes)
	}
}

func TestMatcherConfigBuildsAliasTableAndDenylistFromConfig(t *testing.T) {
	cfg := Default()
	cfg.AliasTable = map[string][]string{"canonical": {"alias-one", "alias-two"}}
	cfg.MinorLeagueDenylist = []string{"reserve"}

	mc := cfg.MatcherConfig()
	if mc.AliasTable == nil {
		t.Fatal("expected a non-nil alias table")
	}
	if !mc.MinorLeagueDenylist["reserve"] {
		t.Fatal("expected the denylist set to contain 'reserve'")
	}
}

func TestPipelineConfigConvertsSecondsToDurations(t *testing.T) {
	cfg := Default()
	pc := cfg.PipelineConfig()
	if pc.ScrapeTimeout.Seconds() != 60 {
		t.Fatalf("got %v, want 60s", pc.ScrapeTimeout)
	}
	if pc.ConcurrentScrapes != cfg.ConcurrentScrapes {
		t.Fatalf("got %v, want %v", pc.ConcurrentScrapes, cfg.ConcurrentScrapes)
	}
}
