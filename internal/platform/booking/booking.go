// Package booking scrapes Booking.com search result pages through a
// headless browser session.
package booking

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/fetch"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
	"github.com/hotelharvest/hotelharvest/internal/logger"
	"github.com/hotelharvest/hotelharvest/internal/platform"
)

// Platform is the identifier stored on every listing this adapter produces.
const Platform = "booking"

const baseURL = "https://www.booking.com"

// Adapter scrapes Booking.com. Result lists render client-side, so pages go
// through the dynamic fetcher.
type Adapter struct {
	fetcher fetch.Fetcher
	config  fetch.Config
	wait    time.Duration
}

// New creates a Booking.com adapter. Launch must be called before ScrapeCity.
func New(cfg fetch.Config) *Adapter {
	return &Adapter{
		config: cfg,
		wait:   3 * time.Second,
	}
}

// Name implements platform.Adapter.
func (a *Adapter) Name() string { return Platform }

// Launch starts the backing browser allocator.
func (a *Adapter) Launch(ctx context.Context, countryHint string) error {
	if a.fetcher != nil {
		return nil
	}
	f, err := fetch.NewDynamic(a.config)
	if err != nil {
		return fmt.Errorf("launch booking adapter: %w", err)
	}
	a.fetcher = f
	logger.Debug("booking adapter launched", "country_hint", countryHint)
	return nil
}

// ScrapeCity fetches one search result page for the city and parses every
// property card on it.
func (a *Adapter) ScrapeCity(ctx context.Context, city catalog.City) (platform.Result, error) {
	if a.fetcher == nil {
		return platform.Result{}, fmt.Errorf("booking adapter not launched")
	}

	target := searchURL(city.SearchQuery(), time.Now())
	logger.Debug("booking search", "city", city.Name, "url", target)

	opts := fetch.DefaultOptions()
	opts.UserAgent = a.config.UserAgent
	// Wait on body rather than the card selector: a challenge page has no
	// property cards and would otherwise time out undiagnosed.
	opts.WaitForSelector = "body"
	opts.WaitDuration = a.wait

	content, err := a.fetcher.Fetch(ctx, target, opts)
	if err != nil {
		return platform.Result{}, fmt.Errorf("booking fetch %q: %w", city.Name, err)
	}

	if fetch.Blocked(content) {
		logger.Warn("booking served a challenge page", "city", city.Name)
		return platform.Result{Blocked: true, Hotels: []hotel.Listing{}}, platform.ErrBlocked
	}

	hotels, err := parseListings(content.HTML, city)
	if err != nil {
		return platform.Result{}, fmt.Errorf("booking parse %q: %w", city.Name, err)
	}

	logger.Info("booking city scraped", "city", city.Name, "hotels", len(hotels))
	return platform.Result{Hotels: hotels}, nil
}

// Close shuts down the browser allocator.
func (a *Adapter) Close() error {
	if a.fetcher == nil {
		return nil
	}
	err := a.fetcher.Close()
	a.fetcher = nil
	return err
}

// searchURL builds a search result URL for a stay one month out. Booking
// refuses searches without concrete dates.
func searchURL(query string, now time.Time) string {
	checkin := now.AddDate(0, 0, 30).Format("2006-01-02")
	checkout := now.AddDate(0, 0, 31).Format("2006-01-02")

	v := url.Values{}
	v.Set("ss", query)
	v.Set("checkin", checkin)
	v.Set("checkout", checkout)
	v.Set("group_adults", "2")
	v.Set("no_rooms", "1")
	v.Set("group_children", "0")

	return baseURL + "/searchresults.html?" + v.Encode()
}
