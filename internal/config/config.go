// Package config loads the single configuration object named in spec.md §6
// from a YAML file, with environment-variable overrides applied after parse
// — grounded on Vodeneev-vodeneevbet's gopkg.in/yaml.v3 usage, combined with
// the teacher's own getEnv(key, default) pattern from every cmd/*/main.go.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/XavierBriggs/pricedge/internal/matcher"
	"github.com/XavierBriggs/pricedge/internal/pipeline"
	"github.com/XavierBriggs/pricedge/internal/teamname"
)

// Config is the recognized option set from spec.md §6.
type Config struct {
	FuzzyMatchThreshold         float64             `yaml:"fuzzy_match_threshold"`
	MinComponentMatchScore      float64             `yaml:"min_component_match_score"`
	OrientationConfidenceMargin float64             `yaml:"orientation_confidence_margin"`
	TimeWindowSeconds           int64               `yaml:"time_window_seconds"`
	ConcurrentScrapes           int                 `yaml:"concurrent_scrapes"`
	AliasTable                  map[string][]string `yaml:"alias_table"`
	MinorLeagueDenylist         []string            `yaml:"minor_league_denylist"`
	RequestTimeoutSeconds       int                 `yaml:"request_timeout_seconds"`
	SearchTimeoutSeconds        int                 `yaml:"search_timeout_seconds"`
	ScrapeTimeoutSeconds        int                 `yaml:"scrape_timeout_seconds"`

	// Domain-stack sink/surface options (SPEC_FULL §6), absent from
	// spec.md's core list but carried by the ambient config loader.
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"redis_password"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	ListenAddr    string `yaml:"listen_addr"`
}

// Default returns the defaults listed in spec.md §6.
func Default() Config {
	return Config{
		FuzzyMatchThreshold:         65,
		MinComponentMatchScore:      60,
		OrientationConfidenceMargin: 10,
		TimeWindowSeconds:           86400,
		ConcurrentScrapes:           6,
		RequestTimeoutSeconds:       10,
		SearchTimeoutSeconds:        15,
		ScrapeTimeoutSeconds:        60,
		ListenAddr:                  ":8090",
	}
}

// Load reads a YAML config file (if present) and applies environment
// overrides. A missing file is not an error: defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.RedisURL = getEnv("PRICEDGE_REDIS_URL", cfg.RedisURL)
	cfg.RedisPassword = getEnv("PRICEDGE_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.PostgresDSN = getEnv("PRICEDGE_POSTGRES_DSN", cfg.PostgresDSN)
	cfg.ListenAddr = getEnv("PRICEDGE_LISTEN_ADDR", cfg.ListenAddr)

	if v := os.Getenv("PRICEDGE_CONCURRENT_SCRAPES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ConcurrentScrapes = n
		}
	}
	if v := os.Getenv("PRICEDGE_FUZZY_MATCH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FuzzyMatchThreshold = f
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// MatcherConfig projects the shared config into the matcher's own Config
// type, building the alias table and denylist set.
func (c Config) MatcherConfig() matcher.Config {
	aliasTable := teamname.DefaultAliasTable()
	if len(c.AliasTable) > 0 {
		aliasTable = teamname.NewAliasTable(c.AliasTable)
	}

	denylist := make(map[string]bool, len(c.MinorLeagueDenylist))
	for _, tok := range c.MinorLeagueDenylist {
		denylist[tok] = true
	}

	return matcher.Config{
		FuzzyMatchThreshold:         c.FuzzyMatchThreshold,
		MinComponentMatchScore:      c.MinComponentMatchScore,
		OrientationConfidenceMargin: c.OrientationConfidenceMargin,
		TimeWindowSeconds:           c.TimeWindowSeconds,
		AliasTable:                  aliasTable,
		MinorLeagueDenylist:         denylist,
		ManualOverrides:             map[string]string{},
	}
}

// PipelineConfig projects the shared config into the orchestrator's Config.
func (c Config) PipelineConfig() pipeline.Config {
	return pipeline.Config{
		ConcurrentScrapes: c.ConcurrentScrapes,
		RequestTimeout:    time.Duration(c.RequestTimeoutSeconds) * time.Second,
		SearchTimeout:     time.Duration(c.SearchTimeoutSeconds) * time.Second,
		ScrapeTimeout:     time.Duration(c.ScrapeTimeoutSeconds) * time.Second,
		MinRequestSpacing: 150 * time.Millisecond,
	}
}
