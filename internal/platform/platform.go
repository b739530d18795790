// Package platform defines the capability contract every hotel data source
// satisfies, whether it wraps a rendered scrape target or a plain JSON API.
package platform

import (
	"context"
	"errors"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

// ErrBlocked signals that a data source served an anti-automation challenge
// instead of real content. It is not a transient error: the caller should
// move on rather than hammer the same endpoint.
var ErrBlocked = errors.New("platform served a challenge page")

// Result is the outcome of scraping one city on one platform.
type Result struct {
	Hotels  []hotel.Listing
	Blocked bool
}

// Adapter is a pluggable data source. Adapters are stateful resources:
// Launch acquires whatever the source needs (a browser session, an HTTP
// client), ScrapeCity may be called while launched, and Close must be
// called on every exit path, including when ScrapeCity returns an error.
//
// ScrapeCity must never return a nil Hotels slice to mean "no results";
// an empty slice with Blocked=false means the destination genuinely has
// no listings.
type Adapter interface {
	// Name identifies the platform ("booking", "agoda", "hotelscom", "osm").
	Name() string

	// Launch acquires the adapter's backing resource. The country hint
	// lets browser-backed adapters localize their session.
	Launch(ctx context.Context, countryHint string) error

	// ScrapeCity fetches listings for one city.
	ScrapeCity(ctx context.Context, city catalog.City) (Result, error)

	// Close releases the adapter's backing resource.
	Close() error
}

// Registry holds enabled adapters in registration order. Iteration order is
// the order platforms are tried for each city; no reordering happens based
// on historical success.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an adapter. Registration order is preserved.
func (r *Registry) Register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// Adapters returns the registered adapters in order.
func (r *Registry) Adapters() []Adapter {
	return r.adapters
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return len(r.adapters)
}
