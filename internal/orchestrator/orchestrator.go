// Package orchestrator drives the whole collection run: it walks the city
// catalog, invokes every enabled platform adapter per city with bounded
// retries, funnels results through the shared dedup store, and triggers
// incremental saves so a killed run loses at most the in-flight city.
//
// Everything is sequential on purpose. The scrape targets rate limit
// aggressively, so one city at a time with randomized pauses is the
// throughput ceiling, not a simplification.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/dedupe"
	"github.com/hotelharvest/hotelharvest/internal/export"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
	"github.com/hotelharvest/hotelharvest/internal/logger"
	"github.com/hotelharvest/hotelharvest/internal/platform"
	"github.com/hotelharvest/hotelharvest/internal/progress"
	"github.com/hotelharvest/hotelharvest/internal/retry"
)

// ErrNoAdapters is returned by Initialize when every platform is disabled.
// It is the one fatal configuration error: a run with zero data sources
// cannot do anything useful.
var ErrNoAdapters = errors.New("no platform adapters enabled")

// Config tunes a run. Zero values fall back to defaults via New.
type Config struct {
	// MinHotelsPerCity is the acceptance threshold: a city whose combined
	// adapter output stays below it is recorded as failed.
	MinHotelsPerCity int

	// MaxAttempts bounds retries per adapter per city, first try included.
	MaxAttempts int

	// RetryBaseDelay seeds the exponential backoff between attempts.
	RetryBaseDelay time.Duration

	// PlatformDelayMin/Max bound the randomized pause between platforms
	// within one city.
	PlatformDelayMin time.Duration
	PlatformDelayMax time.Duration

	// CityDelayMin/Max bound the randomized pause between cities.
	CityDelayMin time.Duration
	CityDelayMax time.Duration

	// Resume skips cities already present in persisted output.
	Resume bool
}

func (c Config) withDefaults() Config {
	if c.MinHotelsPerCity <= 0 {
		c.MinHotelsPerCity = 1
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = time.Second
	}
	if c.PlatformDelayMin <= 0 {
		c.PlatformDelayMin = 2 * time.Second
	}
	if c.PlatformDelayMax < c.PlatformDelayMin {
		c.PlatformDelayMax = c.PlatformDelayMin + 2*time.Second
	}
	if c.CityDelayMin <= 0 {
		c.CityDelayMin = 5 * time.Second
	}
	if c.CityDelayMax < c.CityDelayMin {
		c.CityDelayMax = c.CityDelayMin + 5*time.Second
	}
	return c
}

// Summary aggregates one run. It is built in memory, logged at the end and
// never persisted.
type Summary struct {
	TotalByPlatform  map[string]int
	SuccessfulCities []string
	FailedCities     []string
	SkippedCities    []string
	TotalHotels      int
}

// Orchestrator coordinates one collection run. Not safe for concurrent use;
// construct one per run.
type Orchestrator struct {
	cfg      Config
	registry *platform.Registry
	sink     *export.Sink
	store    *dedupe.Store
	tracker  *progress.Tracker
	summary  Summary

	// sleep and between are injection points for tests; defaults wait in
	// real time.
	sleep   func(context.Context, time.Duration) error
	between func(min, max time.Duration) time.Duration
}

// New creates an orchestrator over the given adapters, sink and dedup store.
// The store is shared with the sink so both agree on what is already
// collected.
func New(cfg Config, registry *platform.Registry, sink *export.Sink, store *dedupe.Store) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg.withDefaults(),
		registry: registry,
		sink:     sink,
		store:    store,
		tracker:  progress.NewTracker(sink.Dir()),
		summary:  Summary{TotalByPlatform: make(map[string]int)},
		sleep:    sleepCtx,
		between:  randBetween,
	}
}

// Initialize validates the run and primes the dedup store from disk. It is
// the only place a configuration problem is fatal.
func (o *Orchestrator) Initialize(ctx context.Context) error {
	if o.registry.Len() == 0 {
		return ErrNoAdapters
	}

	primed, err := o.sink.Prime(o.store)
	if err != nil {
		return fmt.Errorf("prime dedup store: %w", err)
	}

	names := make([]string, 0, o.registry.Len())
	for _, a := range o.registry.Adapters() {
		names = append(names, a.Name())
	}
	logger.Info("orchestrator initialized",
		"platforms", names,
		"known_fingerprints", primed,
		"min_hotels_per_city", o.cfg.MinHotelsPerCity,
		"resume", o.cfg.Resume)
	return nil
}

// ScrapeCity runs every adapter against one city and returns the combined,
// deduplicated records. The city is recorded as failed when the combined
// count stays under the acceptance threshold; adapter errors never escape.
func (o *Orchestrator) ScrapeCity(ctx context.Context, city catalog.City) ([]hotel.Listing, error) {
	logger.Info("scraping city", "city", city.Name, "country", city.Country, "region", city.Region)

	var collected []hotel.Listing
	adapters := o.registry.Adapters()

	for i, adapter := range adapters {
		if err := ctx.Err(); err != nil {
			return collected, err
		}

		records, err := o.scrapePlatform(ctx, adapter, city)
		if err != nil {
			if ctx.Err() != nil {
				return collected, ctx.Err()
			}
			logger.Warn("platform failed for city",
				"platform", adapter.Name(),
				"city", city.Name,
				"error", err)
		}

		fresh, dropped := o.store.Filter(records)
		if dropped > 0 {
			logger.Debug("dropped duplicate records",
				"platform", adapter.Name(), "city", city.Name, "count", dropped)
		}
		collected = append(collected, fresh...)
		o.summary.TotalByPlatform[adapter.Name()] += len(fresh)

		if i < len(adapters)-1 {
			if err := o.pause(ctx, o.cfg.PlatformDelayMin, o.cfg.PlatformDelayMax); err != nil {
				return collected, err
			}
		}
	}

	if len(collected) < o.cfg.MinHotelsPerCity {
		o.summary.FailedCities = append(o.summary.FailedCities, city.Key())
		logger.Warn("city below acceptance threshold",
			"city", city.Name,
			"collected", len(collected),
			"threshold", o.cfg.MinHotelsPerCity)
		return collected, nil
	}

	o.summary.SuccessfulCities = append(o.summary.SuccessfulCities, city.Key())
	o.summary.TotalHotels += len(collected)
	logger.Info("city complete", "city", city.Name, "hotels", len(collected))
	return collected, nil
}

// scrapePlatform runs one adapter against one city with the retry budget.
// The adapter is launched and closed here so a crashed browser session
// never leaks past the city. Blocked results are not retried: hammering a
// challenge page only makes the block stickier. When the primary search
// query yields nothing, alternate city names are tried before giving up.
func (o *Orchestrator) scrapePlatform(ctx context.Context, adapter platform.Adapter, city catalog.City) ([]hotel.Listing, error) {
	if err := adapter.Launch(ctx, city.CountryCode()); err != nil {
		return nil, fmt.Errorf("launch %s: %w", adapter.Name(), err)
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			logger.Warn("adapter close failed", "platform", adapter.Name(), "error", err)
		}
	}()

	opts := retry.Options{
		MaxAttempts: o.cfg.MaxAttempts,
		BaseDelay:   o.cfg.RetryBaseDelay,
		Label:       fmt.Sprintf("%s/%s", adapter.Name(), city.Name),
		Sleep:       o.sleep,
	}
	retryable := func(err error) bool { return !errors.Is(err, platform.ErrBlocked) }

	result, err := retry.DoIf(ctx, func() (platform.Result, error) {
		return adapter.ScrapeCity(ctx, city)
	}, opts, retryable)
	if err != nil {
		return nil, err
	}

	if len(result.Hotels) > 0 {
		return result.Hotels, nil
	}

	// Empty but not blocked: the platform may know the city under another
	// name.
	for _, alt := range city.AlternateNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("retrying with alternate name",
			"platform", adapter.Name(), "city", city.Name, "alternate", alt)

		altCity := city
		altCity.Name = alt
		result, err = retry.DoIf(ctx, func() (platform.Result, error) {
			return adapter.ScrapeCity(ctx, altCity)
		}, opts, retryable)
		if err != nil {
			return nil, err
		}
		if len(result.Hotels) > 0 {
			return rehome(result.Hotels, city), nil
		}
	}

	return result.Hotels, nil
}

// rehome rewrites records found under an alternate name back onto the
// canonical city, recomputing fingerprints so dedup stays consistent.
func rehome(records []hotel.Listing, city catalog.City) []hotel.Listing {
	for i := range records {
		records[i].City = city.Name
		records[i].ID = records[i].Fingerprint()
	}
	return records
}

// ScrapeCities processes a city list sequentially: resume skip, scrape,
// incremental save, randomized pause. One city failing never stops the run;
// a canceled context does.
func (o *Orchestrator) ScrapeCities(ctx context.Context, cities []catalog.City) error {
	scraped := map[string]bool{}
	if o.cfg.Resume {
		scraped = o.tracker.ScrapedCities()
	}

	var pending, harvested []hotel.Listing
	touched := map[catalog.Region]bool{}
	for i, city := range cities {
		if scraped[city.Key()] {
			o.summary.SkippedCities = append(o.summary.SkippedCities, city.Key())
			logger.Info("skipping already scraped city", "city", city.Name, "region", city.Region)
			continue
		}

		records, err := o.ScrapeCity(ctx, city)
		if err != nil {
			// Cancellation is the only error ScrapeCity lets through.
			pending = append(pending, records...)
			o.flush(pending, city.Region)
			return err
		}

		harvested = append(harvested, records...)
		touched[city.Region] = true

		// A city whose save failed earlier leaves its records in pending;
		// they ride along with the next save so they are never dropped.
		if len(records) > 0 || len(pending) > 0 {
			batch := append(pending, records...)
			if _, err := o.sink.SaveRegion(city.Region, batch, export.Options{Append: true, Deduplicate: true}); err != nil {
				logger.Error("incremental save failed", "city", city.Name, "error", err)
				pending = batch
			} else {
				pending = nil
			}
		}

		if i < len(cities)-1 {
			if err := o.pause(ctx, o.cfg.CityDelayMin, o.cfg.CityDelayMax); err != nil {
				o.flush(pending, city.Region)
				return err
			}
		}
	}

	o.finalize(harvested, pending, touched)
	o.logSummary()
	return nil
}

// finalize re-saves the run's full aggregate so records whose incremental
// save failed still reach disk, then refreshes the snapshots of any region
// whose records were stranded in pending.
func (o *Orchestrator) finalize(harvested, pending []hotel.Listing, touched map[catalog.Region]bool) {
	if len(harvested) == 0 {
		return
	}
	if _, err := o.sink.Save(harvested, export.Options{Append: true, Deduplicate: true}); err != nil {
		logger.Error("final save failed", "count", len(harvested), "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}
	for region := range touched {
		if _, err := o.sink.SaveRegion(region, nil, export.Options{Append: true, Deduplicate: true}); err != nil {
			logger.Error("region snapshot refresh failed", "region", region, "error", err)
		}
	}
}

// ScrapeRegion processes every catalog city in one region.
func (o *Orchestrator) ScrapeRegion(ctx context.Context, region catalog.Region) error {
	return o.ScrapeCities(ctx, catalog.ByRegion(region))
}

// ScrapeAllCities processes the full catalog in priority order.
func (o *Orchestrator) ScrapeAllCities(ctx context.Context) error {
	return o.ScrapeCities(ctx, catalog.All())
}

// Summary returns the aggregate built so far.
func (o *Orchestrator) Summary() Summary {
	return o.summary
}

// CloseAll releases every adapter. Safe to call multiple times; used by the
// graceful-shutdown path.
func (o *Orchestrator) CloseAll() error {
	var firstErr error
	for _, a := range o.registry.Adapters() {
		if err := a.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %s: %w", a.Name(), err)
		}
	}
	return firstErr
}

// flush is the defensive save on the cancellation path: records collected
// but not yet persisted get one last write attempt.
func (o *Orchestrator) flush(records []hotel.Listing, region catalog.Region) {
	if len(records) == 0 {
		return
	}
	if _, err := o.sink.SaveRegion(region, records, export.Options{Append: true, Deduplicate: true}); err != nil {
		logger.Error("final save failed", "count", len(records), "error", err)
	}
}

func (o *Orchestrator) pause(ctx context.Context, min, max time.Duration) error {
	return o.sleep(ctx, o.between(min, max))
}

func (o *Orchestrator) logSummary() {
	logger.Info("run complete",
		"total_hotels", o.summary.TotalHotels,
		"successful_cities", len(o.summary.SuccessfulCities),
		"failed_cities", len(o.summary.FailedCities),
		"skipped_cities", len(o.summary.SkippedCities),
		"by_platform", o.summary.TotalByPlatform)
}

func randBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
