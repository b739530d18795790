// Package osm pulls hotel POI data from the OpenStreetMap Overpass API.
// Overpass is a free public service: requests are rate limited client-side
// and failed endpoints rotate to a mirror instead of being retried in place.
package osm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/logger"
	"github.com/hotelharvest/hotelharvest/internal/platform"
)

// Platform is the identifier stored on every listing this adapter produces.
const Platform = "osm"

const userAgent = "hotelharvest/1.0"

// Public Overpass mirrors, tried in rotation when one fails.
var defaultEndpoints = []string{
	"https://overpass-api.de/api/interpreter",
	"https://overpass.private.coffee/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
}

// Adapter queries the Overpass API. Unlike the browser adapters it is never
// blocked by challenges, so it doubles as the baseline source for cities
// where commercial platforms refuse service.
type Adapter struct {
	client    *http.Client
	limiter   *rate.Limiter
	endpoints []string
	current   int
}

// New creates an Overpass adapter.
func New(timeout time.Duration) *Adapter {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Adapter{
		client: &http.Client{Timeout: timeout},
		// One query every two seconds keeps us inside the public mirrors'
		// fair-use expectations.
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		endpoints: defaultEndpoints,
	}
}

// Name implements platform.Adapter.
func (a *Adapter) Name() string { return Platform }

// Launch implements platform.Adapter. The HTTP client needs no setup.
func (a *Adapter) Launch(ctx context.Context, countryHint string) error {
	logger.Debug("osm adapter launched", "country_hint", countryHint)
	return nil
}

// ScrapeCity queries Overpass for tourism=hotel elements within the city
// area. A failing endpoint rotates to the next mirror once per call.
func (a *Adapter) ScrapeCity(ctx context.Context, city catalog.City) (platform.Result, error) {
	query := buildQuery(city.Name, city.Country)

	body, err := a.post(ctx, query)
	if err != nil {
		a.rotate()
		body, err = a.post(ctx, query)
	}
	if err != nil {
		return platform.Result{}, fmt.Errorf("osm query %q: %w", city.Name, err)
	}

	hotels, err := parseResponse(body, city)
	if err != nil {
		return platform.Result{}, fmt.Errorf("osm parse %q: %w", city.Name, err)
	}

	logger.Info("osm city scraped", "city", city.Name, "hotels", len(hotels))
	return platform.Result{Hotels: hotels}, nil
}

// Close implements platform.Adapter.
func (a *Adapter) Close() error { return nil }

func (a *Adapter) endpoint() string {
	return a.endpoints[a.current]
}

func (a *Adapter) rotate() {
	a.current = (a.current + 1) % len(a.endpoints)
	logger.Info("switched overpass endpoint", "endpoint", a.endpoint())
}

func (a *Adapter) post(ctx context.Context, query string) ([]byte, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(), strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// buildQuery produces an Overpass QL query scoped to the named city area.
// The place and admin_level filters disambiguate cities that share a name.
func buildQuery(cityName, countryName string) string {
	area := fmt.Sprintf(`area["name"=%q]->.searchArea;`, cityName)
	if countryName != "" {
		area = fmt.Sprintf(`area["name"=%q]["place"~"city|town"]["admin_level"~"[6-8]"]->.searchArea;`, cityName)
	}

	return fmt.Sprintf(`[out:json][timeout:25];
%s
(
  node["tourism"="hotel"](area.searchArea);
  way["tourism"="hotel"](area.searchArea);
  relation["tourism"="hotel"](area.searchArea);
);
out center tags;`, area)
}
