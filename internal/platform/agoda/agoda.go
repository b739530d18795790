// Package agoda scrapes Agoda.com search result pages through a headless
// browser session.
package agoda

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
const Platform = "agoda"

const baseURL = "https://www.agoda.com"

// Adapter scrapes Agoda.com.
type Adapter struct {
	fetcher fetch.Fetcher
	config  fetch.Config
	wait    time.Duration
}

// New creates an Agoda adapter. Launch must be called before ScrapeCity.
func New(cfg fetch.Config) *Adapter {
	return &Adapter{
		config: cfg,
		wait:   4 * time.Second,
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
		return fmt.Errorf("launch agoda adapter: %w", err)
	}
	a.fetcher = f
	logger.Debug("agoda adapter launched", "country_hint", countryHint)
	return nil
}

// ScrapeCity fetches one search result page for the city.
func (a *Adapter) ScrapeCity(ctx context.Context, city catalog.City) (platform.Result, error) {
	if a.fetcher == nil {
		return platform.Result{}, fmt.Errorf("agoda adapter not launched")
	}

	target := searchURL(city, time.Now())
	logger.Debug("agoda search", "city", city.Name, "url", target)

	opts := fetch.DefaultOptions()
	opts.UserAgent = a.config.UserAgent
	opts.WaitForSelector = "body"
	opts.WaitDuration = a.wait

	content, err := a.fetcher.Fetch(ctx, target, opts)
	if err != nil {
		return platform.Result{}, fmt.Errorf("agoda fetch %q: %w", city.Name, err)
	}

	if fetch.Blocked(content) {
		logger.Warn("agoda served a challenge page", "city", city.Name)
		return platform.Result{Blocked: true, Hotels: []hotel.Listing{}}, platform.ErrBlocked
	}

	hotels, err := parseListings(content.HTML, city)
	if err != nil {
		return platform.Result{}, fmt.Errorf("agoda parse %q: %w", city.Name, err)
	}

	logger.Info("agoda city scraped", "city", city.Name, "hotels", len(hotels))
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

// searchURL builds an Agoda free-text search URL. Agoda resolves the city
// from textToSearch when no numeric city id is supplied.
func searchURL(city catalog.City, now time.Time) string {
	v := url.Values{}
	v.Set("city", "-1")
	v.Set("cid", "-1")
	v.Set("checkIn", now.AddDate(0, 0, 30).Format("2006-01-02"))
	v.Set("checkOut", now.AddDate(0, 0, 31).Format("2006-01-02"))
	v.Set("rooms", "1")
	v.Set("adults", "2")
	v.Set("children", "0")
	v.Set("textToSearch", city.Name+" "+city.Country)

	return baseURL + "/search?" + v.Encode()
}
