// Package hotelscom scrapes Hotels.com search result pages. The listing
// grid is server-rendered, so this adapter rides the static fetcher rather
// than paying for a browser session.
package hotelscom

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
const Platform = "hotelscom"

const baseURL = "https://www.hotels.com"

// Adapter scrapes Hotels.com.
type Adapter struct {
	fetcher fetch.Fetcher
	config  fetch.Config
}

// New creates a Hotels.com adapter. Launch must be called before ScrapeCity.
func New(cfg fetch.Config) *Adapter {
	return &Adapter{config: cfg}
}

// Name implements platform.Adapter.
func (a *Adapter) Name() string { return Platform }

// Launch prepares the HTTP client.
func (a *Adapter) Launch(ctx context.Context, countryHint string) error {
	if a.fetcher != nil {
		return nil
	}
	a.fetcher = fetch.NewStatic(a.config)
	logger.Debug("hotelscom adapter launched", "country_hint", countryHint)
	return nil
}

// ScrapeCity fetches one search result page for the city.
func (a *Adapter) ScrapeCity(ctx context.Context, city catalog.City) (platform.Result, error) {
	if a.fetcher == nil {
		return platform.Result{}, fmt.Errorf("hotelscom adapter not launched")
	}

	target := searchURL(city.SearchQuery(), time.Now())
	logger.Debug("hotelscom search", "city", city.Name, "url", target)

	opts := fetch.DefaultOptions()
	opts.UserAgent = a.config.UserAgent
	opts.Headers = map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}

	content, err := a.fetcher.Fetch(ctx, target, opts)
	if err != nil {
		return platform.Result{}, fmt.Errorf("hotelscom fetch %q: %w", city.Name, err)
	}

	if fetch.Blocked(content) {
		logger.Warn("hotelscom served a challenge page", "city", city.Name)
		return platform.Result{Blocked: true, Hotels: []hotel.Listing{}}, platform.ErrBlocked
	}

	hotels, err := parseListings(content.HTML, city)
	if err != nil {
		return platform.Result{}, fmt.Errorf("hotelscom parse %q: %w", city.Name, err)
	}

	logger.Info("hotelscom city scraped", "city", city.Name, "hotels", len(hotels))
	return platform.Result{Hotels: hotels}, nil
}

// Close implements platform.Adapter.
func (a *Adapter) Close() error {
	if a.fetcher == nil {
		return nil
	}
	err := a.fetcher.Close()
	a.fetcher = nil
	return err
}

func searchURL(destination string, now time.Time) string {
	v := url.Values{}
	v.Set("destination", destination)
	v.Set("startDate", now.AddDate(0, 0, 30).Format("2006-01-02"))
	v.Set("endDate", now.AddDate(0, 0, 31).Format("2006-01-02"))
	v.Set("rooms", "1")
	v.Set("adults", "2")

	return baseURL + "/Hotel-Search?" + v.Encode()
}
