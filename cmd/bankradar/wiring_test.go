package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amishk599/bankradar/internal/adapter"
	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/config"
	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/orchestrator"
	"github.com/amishk599/bankradar/internal/ratelimit"
)

func discardLogger() *slog.Logger { return newLogger(io.Discard, false) }

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("BANKRADAR_CONFIG", "")
	if got := resolveConfigPath(""); got != "config.yaml" {
		t.Errorf("default = %q, want config.yaml", got)
	}
	t.Setenv("BANKRADAR_CONFIG", "/etc/bankradar.yaml")
	if got := resolveConfigPath(""); got != "/etc/bankradar.yaml" {
		t.Errorf("env = %q, want /etc/bankradar.yaml", got)
	}
	if got := resolveConfigPath("local.yaml"); got != "local.yaml" {
		t.Errorf("flag = %q, want local.yaml", got)
	}
}

func TestCreateFetcher(t *testing.T) {
	client := newHTTPClient()
	tests := []struct {
		src  config.SourceConfig
		want any
	}{
		{config.SourceConfig{Name: "GH", Type: config.TypeGreenhouse, BoardToken: "x"}, &adapter.GreenhouseAdapter{}},
		{config.SourceConfig{Name: "LV", Type: config.TypeLever, BoardToken: "x"}, &adapter.LeverAdapter{}},
		{config.SourceConfig{Name: "AB", Type: config.TypeAshby, BoardToken: "x"}, &adapter.AshbyAdapter{}},
		{config.SourceConfig{Name: "SG", Type: config.TypeWorkday, BaseURL: "https://sg.wd3.myworkdayjobs.com", Tenant: "sg", Site: "jobs"}, &adapter.WorkdayAdapter{}},
	}
	for _, tt := range tests {
		t.Run(tt.src.Type, func(t *testing.T) {
			f, err := createFetcher(tt.src, client)
			if err != nil {
				t.Fatalf("createFetcher: %v", err)
			}
			if got, want := fmt.Sprintf("%T", f), fmt.Sprintf("%T", tt.want); got != want {
				t.Errorf("fetcher type = %s, want %s", got, want)
			}
		})
	}

	if _, err := createFetcher(config.SourceConfig{Name: "X", Type: "taleo"}, client); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestBuildFetchers_OnlyEnabled(t *testing.T) {
	cfg := &config.Config{
		Sources: []config.SourceConfig{
			{Name: "GH", Type: config.TypeGreenhouse, BoardToken: "x", Enabled: true},
			{Name: "LV", Type: config.TypeLever, BoardToken: "y"},
		},
		Retry: config.RetryConfig{MaxRetries: 1, BaseDelay: time.Millisecond},
	}
	limiters := ratelimit.NewLimiters(func(string) time.Duration { return 0 })
	fetchers, err := buildFetchers(cfg, newHTTPClient(), limiters, discardLogger())
	if err != nil {
		t.Fatalf("buildFetchers: %v", err)
	}
	if len(fetchers) != 1 || fetchers["GH"] == nil {
		t.Errorf("fetchers = %v, want only GH", fetchers)
	}
}

func TestBuildRunner_Isolation(t *testing.T) {
	cfg := &config.Config{
		Sources:     []config.SourceConfig{{Name: "GH", Type: config.TypeGreenhouse, BoardToken: "x", Enabled: true}},
		TaskTimeout: time.Minute,
	}
	limiters := ratelimit.NewLimiters(func(string) time.Duration { return 0 })

	cfg.Isolation = config.IsolationInProcess
	r, err := buildRunner(cfg, "config.yaml", limiters, discardLogger())
	if err != nil {
		t.Fatalf("buildRunner inprocess: %v", err)
	}
	if _, ok := r.(*orchestrator.InProcessRunner); !ok {
		t.Errorf("inprocess runner = %T", r)
	}

	cfg.Isolation = config.IsolationProcess
	r, err = buildRunner(cfg, "config.yaml", limiters, discardLogger())
	if err != nil {
		t.Fatalf("buildRunner process: %v", err)
	}
	if _, ok := r.(*ratelimit.RateLimitedRunner); !ok {
		t.Errorf("process runner = %T", r)
	}
}

func TestBuildIngestConfig(t *testing.T) {
	cfg := &config.Config{Throttle: config.ThrottleConfig{Every: 5, Delay: time.Second}}
	ic := buildIngestConfig(cfg)
	if ic.Filter != nil {
		t.Error("no filter lists must mean no posting filter")
	}
	if ic.Language == nil {
		t.Error("language filter must be on by default")
	}
	if ic.ThrottleEvery != 5 || ic.Throttle != time.Second {
		t.Errorf("throttle = %d/%v", ic.ThrottleEvery, ic.Throttle)
	}

	cfg.Filters = config.FilterConfig{Locations: []string{"paris"}, AnyLanguage: true}
	ic = buildIngestConfig(cfg)
	if ic.Language != nil {
		t.Error("any_language must disable the language filter")
	}
	if ic.Filter == nil || ic.Filter.Match(model.RawPosting{Title: "Analyst", Location: "London"}) {
		t.Error("location filter must reject London")
	}
}

func TestLoadCountries_MissingCityFile(t *testing.T) {
	cfg := &config.Config{Cities: config.CitiesConfig{File: filepath.Join(t.TempDir(), "missing.csv")}}
	n := loadCountries(cfg, discardLogger())
	if m := n.Normalize("Paris, France"); m == nil || m.Code != "FR" {
		t.Errorf("Normalize = %+v, want FR from the built-in tables", m)
	}
}

func TestLoadCountries_CityFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.csv")
	if err := os.WriteFile(path, []byte("name,country,population\nEindhoven,NL,230000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{Cities: config.CitiesConfig{File: path, MinPopulation: 1000}}
	n := loadCountries(cfg, discardLogger())
	if m := n.Normalize("Eindhoven"); m == nil || m.Code != "NL" {
		t.Errorf("Normalize(Eindhoven) = %+v, want NL", m)
	}
}

func TestPrintClassification(t *testing.T) {
	c, err := classify.Default()
	if err != nil {
		t.Fatalf("classify.Default: %v", err)
	}
	var buf bytes.Buffer
	printClassification(&buf, c, "Internal Audit Analyst")
	fields := strings.Split(strings.TrimSpace(buf.String()), "\t")
	if len(fields) != 4 {
		t.Fatalf("output %q has %d fields, want 4", buf.String(), len(fields))
	}
	if fields[1] != classify.InternalAudit {
		t.Errorf("category = %q, want %q", fields[1], classify.InternalAudit)
	}
}

func TestParsePositiveDuration(t *testing.T) {
	if d, err := parsePositiveDuration("720h"); err != nil || d != 720*time.Hour {
		t.Errorf("720h = %v, %v", d, err)
	}
	for _, bad := range []string{"", "-1h", "0s", "soon"} {
		if _, err := parsePositiveDuration(bad); err == nil {
			t.Errorf("parsePositiveDuration(%q) accepted", bad)
		}
	}
}
