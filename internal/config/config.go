package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source types with an adapter.
const (
	TypeGreenhouse = "greenhouse"
	TypeLever      = "lever"
	TypeAshby      = "ashby"
	TypeWorkday    = "workday"
)

// Task isolation modes.
const (
	IsolationProcess   = "process"
	IsolationInProcess = "inprocess"
)

// Config is the root configuration for bankradar.
type Config struct {
	Sources      []SourceConfig
	Keywords     []string // empty means one unfiltered fetch per source
	Hours        int      // freshness window handed to every fetch, 0 disables
	FetchLimit   int
	Workers      int
	TaskTimeout  time.Duration
	Isolation    string
	Interval     time.Duration // daemon mode only
	Retention    time.Duration
	Throttle     ThrottleConfig
	DBPath       string
	Cities       CitiesConfig
	Filters      FilterConfig
	Notification NotificationConfig
	RateLimit    RateLimitConfig
	Retry        RetryConfig
}

// SourceConfig describes a single career site.
type SourceConfig struct {
	Name       string              `yaml:"name"` // short code, e.g. "SG"; prefixes posting IDs
	Type       string              `yaml:"type"`
	Company    string              `yaml:"company"`
	BoardToken string              `yaml:"board_token"` // greenhouse, lever, ashby
	BaseURL    string              `yaml:"base_url"`    // workday
	Tenant     string              `yaml:"tenant"`      // workday
	Site       string              `yaml:"site"`        // workday
	Facets     map[string][]string `yaml:"facets"`      // workday applied facets
	Details    bool                `yaml:"details"`     // workday detail fetch
	Enabled    bool                `yaml:"enabled"`
}

// ThrottleConfig pauses ingestion after every Every new postings.
type ThrottleConfig struct {
	Every int
	Delay time.Duration
}

// CitiesConfig points at the optional city-to-country CSV.
type CitiesConfig struct {
	File          string `yaml:"file"`
	MinPopulation int    `yaml:"min_population"`
}

// FilterConfig holds the posting filters applied before persistence.
type FilterConfig struct {
	TitleKeywords []string `yaml:"title_keywords"`
	Locations     []string `yaml:"locations"`
	ExtraChars    string   `yaml:"extra_title_chars"` // added to the French/English alphabet
	AnyLanguage   bool     `yaml:"any_language"`      // disables the alphabet check
}

// NotificationConfig controls which notifier is used and its settings.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "discord"
	WebhookURL string `yaml:"webhook_url"` // required if type is "discord"
}

// RateLimitConfig controls per-source-type rate limiting.
type RateLimitConfig struct {
	MinDelay  time.Duration            // minimum gap between requests to the same source type
	Overrides map[string]time.Duration // per-type overrides, keyed by source type
}

// MinDelayFor returns the configured delay for the given source type, falling
// back to MinDelay.
func (r RateLimitConfig) MinDelayFor(typ string) time.Duration {
	if d, ok := r.Overrides[typ]; ok {
		return d
	}
	return r.MinDelay
}

// RetryConfig controls the retry decorator around every adapter.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// EnabledSources returns the sources with enabled set.
func (c *Config) EnabledSources() []SourceConfig {
	var out []SourceConfig
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// Defaults for optional settings.
const (
	defaultHours       = 24
	defaultFetchLimit  = 50
	defaultWorkers     = 4
	defaultTaskTimeout = 2 * time.Minute
	defaultInterval    = time.Hour
	defaultRetention   = 30 * 24 * time.Hour
	defaultThrottle    = 2 * time.Second
	defaultThrottleN   = 10
	defaultDBPath      = "bankradar.db"
	defaultMinDelay    = 2 * time.Second
	defaultMaxRetries  = 2
	defaultBaseDelay   = 5 * time.Second
	defaultCityMinPop  = 10000
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Sources      []SourceConfig     `yaml:"sources"`
	Keywords     []string           `yaml:"keywords"`
	Hours        *int               `yaml:"hours"`
	FetchLimit   *int               `yaml:"fetch_limit"`
	Workers      int                `yaml:"workers"`
	TaskTimeout  string             `yaml:"task_timeout"`
	Isolation    string             `yaml:"isolation"`
	Interval     string             `yaml:"interval"`
	Retention    string             `yaml:"retention"`
	Throttle     rawThrottleConfig  `yaml:"throttle"`
	DBPath       string             `yaml:"db_path"`
	Cities       CitiesConfig       `yaml:"cities"`
	Filters      FilterConfig       `yaml:"filters"`
	Notification NotificationConfig `yaml:"notification"`
	RateLimit    rawRateLimitConfig `yaml:"rate_limit"`
	Retry        rawRetryConfig     `yaml:"retry"`
}

type rawThrottleConfig struct {
	Every *int   `yaml:"every"`
	Delay string `yaml:"delay"`
}

type rawRateLimitConfig struct {
	MinDelay  string            `yaml:"min_delay"`
	Overrides map[string]string `yaml:"overrides"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML. Environment variables are expanded first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &Config{
		Sources:      raw.Sources,
		Keywords:     raw.Keywords,
		Hours:        intOr(raw.Hours, defaultHours),
		FetchLimit:   intOr(raw.FetchLimit, defaultFetchLimit),
		Workers:      raw.Workers,
		Isolation:    strings.ToLower(raw.Isolation),
		DBPath:       raw.DBPath,
		Cities:       raw.Cities,
		Filters:      raw.Filters,
		Notification: raw.Notification,
		Throttle:     ThrottleConfig{Every: intOr(raw.Throttle.Every, defaultThrottleN)},
		Retry:        RetryConfig{MaxRetries: intOr(raw.Retry.MaxRetries, defaultMaxRetries)},
		RateLimit:    RateLimitConfig{Overrides: make(map[string]time.Duration)},
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Isolation == "" {
		cfg.Isolation = IsolationProcess
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Cities.File != "" && cfg.Cities.MinPopulation == 0 {
		cfg.Cities.MinPopulation = defaultCityMinPop
	}
	if cfg.Notification.Type == "" {
		cfg.Notification.Type = "log"
	}

	durations := []struct {
		field string
		raw   string
		def   time.Duration
		dst   *time.Duration
	}{
		{"task_timeout", raw.TaskTimeout, defaultTaskTimeout, &cfg.TaskTimeout},
		{"interval", raw.Interval, defaultInterval, &cfg.Interval},
		{"retention", raw.Retention, defaultRetention, &cfg.Retention},
		{"throttle.delay", raw.Throttle.Delay, defaultThrottle, &cfg.Throttle.Delay},
		{"rate_limit.min_delay", raw.RateLimit.MinDelay, defaultMinDelay, &cfg.RateLimit.MinDelay},
		{"retry.base_delay", raw.Retry.BaseDelay, defaultBaseDelay, &cfg.Retry.BaseDelay},
	}
	for _, d := range durations {
		*d.dst = d.def
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", d.field, d.raw, err)
		}
		*d.dst = v
	}

	for typ, raw := range raw.RateLimit.Overrides {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse rate_limit.overrides[%q]: %w", typ, err)
		}
		cfg.RateLimit.Overrides[typ] = d
	}

	for i := range cfg.Sources {
		s := &cfg.Sources[i]
		s.Type = strings.ToLower(s.Type)
		if s.Company == "" {
			s.Company = s.Name
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func validate(cfg *Config) error {
	enabled := 0
	names := make(map[string]bool)
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("sources[%d]: name is required", i)
		}
		if names[s.Name] {
			return fmt.Errorf("sources[%d]: duplicate name %q", i, s.Name)
		}
		names[s.Name] = true
		if err := validateSource(s); err != nil {
			return fmt.Errorf("sources[%d] (%s): %w", i, s.Name, err)
		}
		if s.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one source must be enabled")
	}

	if cfg.Hours < 0 {
		return fmt.Errorf("hours must not be negative, got %d", cfg.Hours)
	}
	if cfg.FetchLimit < 0 {
		return fmt.Errorf("fetch_limit must not be negative, got %d", cfg.FetchLimit)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be positive, got %v", cfg.TaskTimeout)
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", cfg.Interval)
	}
	if cfg.Retention <= 0 {
		return fmt.Errorf("retention must be positive, got %v", cfg.Retention)
	}
	if cfg.Isolation != IsolationProcess && cfg.Isolation != IsolationInProcess {
		return fmt.Errorf("isolation must be %q or %q, got %q", IsolationProcess, IsolationInProcess, cfg.Isolation)
	}
	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative, got %d", cfg.Retry.MaxRetries)
	}

	switch cfg.Notification.Type {
	case "log":
	case "discord":
		u := cfg.Notification.WebhookURL
		if u == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"discord\"")
		}
		if !strings.HasPrefix(u, "https://discord.com/api/webhooks/") &&
			!strings.HasPrefix(u, "https://discordapp.com/api/webhooks/") {
			return fmt.Errorf("notification.webhook_url must be a discord.com webhook URL")
		}
	default:
		return fmt.Errorf("notification.type must be \"log\" or \"discord\", got %q", cfg.Notification.Type)
	}

	return nil
}

func validateSource(s SourceConfig) error {
	switch s.Type {
	case TypeGreenhouse, TypeLever, TypeAshby:
		if s.BoardToken == "" {
			return fmt.Errorf("board_token is required for type %q", s.Type)
		}
	case TypeWorkday:
		if s.BaseURL == "" || s.Tenant == "" || s.Site == "" {
			return fmt.Errorf("base_url, tenant and site are required for type %q", s.Type)
		}
		if !strings.HasPrefix(s.BaseURL, "https://") && !strings.HasPrefix(s.BaseURL, "http://") {
			return fmt.Errorf("base_url must be an http(s) URL, got %q", s.BaseURL)
		}
	default:
		return fmt.Errorf("unknown type %q", s.Type)
	}
	return nil
}
