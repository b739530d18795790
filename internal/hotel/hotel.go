// Package hotel defines the canonical listing record every platform adapter
// converges on, plus the normalization and validation applied before a
// record may be persisted.
package hotel

import (
	"strings"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
)

// Listing is the canonical hotel entity. Optional fields are pointers:
// absence is a valid, expected state: a free data source may lack prices,
// a paid API may lack OSM-style tags.
type Listing struct {
	ID               string         `json:"id"`
	Name             string         `json:"hotel_name" validate:"required,min=3,max=200"`
	Platform         string         `json:"platform"`
	City             string         `json:"city" validate:"required"`
	Country          string         `json:"country" validate:"required"`
	Region           catalog.Region `json:"region,omitempty"`
	Address          string         `json:"address,omitempty"`
	Latitude         *float64       `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64       `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	StarRating       *int           `json:"star_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewScore      *float64       `json:"review_score,omitempty" validate:"omitempty,gte=0,lte=10"`
	ReviewCount      *int           `json:"review_count,omitempty" validate:"omitempty,gte=0"`
	PricePerNight    *float64       `json:"price_per_night,omitempty" validate:"omitempty,gte=0"`
	Currency         string         `json:"currency,omitempty"`
	PropertyType     string         `json:"property_type,omitempty"`
	Amenities        []string       `json:"amenities,omitempty"`
	ImageURL         string         `json:"image_url,omitempty"`
	SourceURL        string         `json:"source_url,omitempty"`
	FreeCancellation *bool          `json:"free_cancellation,omitempty"`
	ScrapedAt        time.Time      `json:"scraped_at"`
}

// Fingerprint returns the dedup key for this listing.
func (l *Listing) Fingerprint() string {
	return Fingerprint(l.Name, l.City)
}

// Fingerprint derives the content fingerprint of a hotel from its name and
// city. Two records with an equal fingerprint are treated as the same
// physical hotel regardless of which platform produced them. The function
// is case- and whitespace-insensitive.
func Fingerprint(name, city string) string {
	normalized := strings.ToLower(NormalizeText(name) + "_" + NormalizeText(city))
	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Float returns a pointer to v, for optional numeric fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
