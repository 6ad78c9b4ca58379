package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/amishk599/bankradar/internal/adapter"
	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/config"
	"github.com/amishk599/bankradar/internal/country"
	"github.com/amishk599/bankradar/internal/filter"
	"github.com/amishk599/bankradar/internal/model"
	"github.com/amishk599/bankradar/internal/orchestrator"
	"github.com/amishk599/bankradar/internal/pipeline"
	"github.com/amishk599/bankradar/internal/ratelimit"
	"github.com/amishk599/bankradar/internal/retry"
)

func createFetcher(src config.SourceConfig, httpClient *http.Client) (model.Fetcher, error) {
	switch src.Type {
	case config.TypeGreenhouse:
		return adapter.NewGreenhouseAdapter(src.Name, src.BoardToken, src.Company, httpClient), nil
	case config.TypeLever:
		return adapter.NewLeverAdapter(src.Name, src.BoardToken, src.Company, httpClient), nil
	case config.TypeAshby:
		return adapter.NewAshbyAdapter(src.Name, src.BoardToken, src.Company, httpClient), nil
	case config.TypeWorkday:
		return adapter.NewWorkdayAdapter(src.Name, src.Company, adapter.WorkdayConfig{
			BaseURL: src.BaseURL,
			Tenant:  src.Tenant,
			Site:    src.Site,
			Facets:  src.Facets,
			Details: src.Details,
		}, httpClient), nil
	default:
		return nil, fmt.Errorf("source %s: unsupported type %q", src.Name, src.Type)
	}
}

// buildFetchers creates one decorated fetcher per enabled source: retry
// outside, rate limiting inside, so every attempt waits for its slot.
func buildFetchers(cfg *config.Config, httpClient *http.Client, limiters *ratelimit.Limiters, logger *slog.Logger) (map[string]model.Fetcher, error) {
	fetchers := make(map[string]model.Fetcher)
	for _, src := range cfg.EnabledSources() {
		f, err := createFetcher(src, httpClient)
		if err != nil {
			return nil, err
		}
		f = ratelimit.NewRateLimitedFetcher(f, limiters.For(src.Type), src.Type)
		f = retry.NewRetryFetcher(f, src.Name, cfg.Retry.MaxRetries, cfg.Retry.BaseDelay, logger)
		fetchers[src.Name] = f
		logger.Debug("registered source", "name", src.Name, "type", src.Type, "company", src.Company)
	}
	return fetchers, nil
}

func newLimiters(cfg *config.Config) *ratelimit.Limiters {
	return ratelimit.NewLimiters(cfg.RateLimit.MinDelayFor)
}

// buildRunner picks the task isolation. Process isolation re-executes this
// binary's worker subcommand per task with the same config.
func buildRunner(cfg *config.Config, configPath string, limiters *ratelimit.Limiters, logger *slog.Logger) (orchestrator.Runner, error) {
	if cfg.Isolation == config.IsolationInProcess {
		fetchers, err := buildFetchers(cfg, newHTTPClient(), limiters, logger)
		if err != nil {
			return nil, err
		}
		return orchestrator.NewInProcessRunner(fetchers, cfg.TaskTimeout), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating executable: %w", err)
	}
	args := []string{"worker", "--config", configPath}
	if debug {
		args = append(args, "--debug")
	}
	keyOf := make(map[string]string)
	for _, src := range cfg.EnabledSources() {
		keyOf[src.Name] = src.Type
	}
	proc := &orchestrator.ProcessRunner{
		Path:    exe,
		Args:    args,
		Timeout: cfg.TaskTimeout,
		Stderr:  os.Stderr,
	}
	return ratelimit.NewRateLimitedRunner(proc, limiters, keyOf), nil
}

// loadCountries builds the country normalizer. A missing city file only
// disables the city lookup.
func loadCountries(cfg *config.Config, logger *slog.Logger) *country.Normalizer {
	if cfg.Cities.File == "" {
		return country.New()
	}
	cities, err := country.LoadCities(cfg.Cities.File, cfg.Cities.MinPopulation)
	if err != nil {
		logger.Warn("city lookup disabled", "file", cfg.Cities.File, "error", err)
		return country.New()
	}
	logger.Info("cities loaded", "file", cfg.Cities.File, "count", cities.Len())
	return country.New(country.WithCities(cities))
}

func buildIngestConfig(cfg *config.Config) pipeline.IngestConfig {
	ic := pipeline.IngestConfig{
		ThrottleEvery: cfg.Throttle.Every,
		Throttle:      cfg.Throttle.Delay,
	}
	if len(cfg.Filters.TitleKeywords) > 0 || len(cfg.Filters.Locations) > 0 {
		ic.Filter = filter.NewTitleAndLocationFilter(cfg.Filters.TitleKeywords, cfg.Filters.Locations)
	}
	if !cfg.Filters.AnyLanguage {
		ic.Language = filter.NewLanguageFilter(cfg.Filters.ExtraChars)
	}
	return ic
}

// buildCycle wires one full fetch, ingest and evict cycle over store.
func buildCycle(cfg *config.Config, configPath string, store model.Store, n model.Notifier, logger *slog.Logger) (*pipeline.Cycle, error) {
	classifier, err := classify.Default()
	if err != nil {
		return nil, fmt.Errorf("building classifier: %w", err)
	}
	logger.Debug("classifier ready", "rules", classifier.Len())
	enricher := pipeline.NewEnricher(classifier, loadCountries(cfg, logger))
	ingester := pipeline.NewIngester(store, n, enricher, buildIngestConfig(cfg), logger)

	runner, err := buildRunner(cfg, configPath, newLimiters(cfg), logger)
	if err != nil {
		return nil, err
	}
	orch := orchestrator.New(runner, cfg.Workers, logger)

	var sources []string
	for _, src := range cfg.EnabledSources() {
		sources = append(sources, src.Name)
	}
	return pipeline.NewCycle(orch, ingester, store, pipeline.CycleConfig{
		Sources:   sources,
		Keywords:  cfg.Keywords,
		Hours:     cfg.Hours,
		Limit:     cfg.FetchLimit,
		Retention: cfg.Retention,
	}, logger), nil
}
