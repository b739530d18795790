package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
)

func mustTime(t *testing.T, day string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("time.Parse() error = %v", err)
	}
	return ts
}

const resultsPage = `<!DOCTYPE html>
<html><head><title>Paris: 1,204 properties found</title></head><body>
<div data-testid="property-card">
  <a data-testid="title-link" href="/hotel/fr/le-grand.html"><div data-testid="title">Le Grand Hotel</div></a>
  <div data-testid="address">12 Rue de Rivoli, 1st arr., Paris</div>
  <div data-testid="review-score"><div>8.7</div><div>2,431 reviews</div></div>
  <span data-testid="price-and-discounted-price">€ 245</span>
  <img data-testid="image" src="https://cf.bstatic.com/images/grand.jpg"/>
  <span data-testid="property-type-badge">Hotel</span>
</div>
<div data-testid="property-card">
  <a data-testid="title-link" href="/hotel/fr/petite-auberge.html"><div data-testid="title">Petite Auberge</div></a>
  <div data-testid="address">3 Rue Cler, Paris</div>
  <span data-testid="price-and-discounted-price">€ 99</span>
</div>
<div data-testid="property-card">
  <div data-testid="address">orphan card without a name</div>
</div>
</body></html>`

var paris = catalog.City{Name: "Paris", Country: "France", Region: catalog.RegionEurope, Priority: 1}

// --- Parser Tests ---

func TestParseListings(t *testing.T) {
	hotels, err := parseListings(resultsPage, paris)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("parseListings() returned %d hotels, want 2", len(hotels))
	}

	first := hotels[0]
	if first.Name != "Le Grand Hotel" {
		t.Errorf("Name = %q, want %q", first.Name, "Le Grand Hotel")
	}
	if first.Platform != Platform {
		t.Errorf("Platform = %q, want %q", first.Platform, Platform)
	}
	if first.City != "Paris" || first.Country != "France" {
		t.Errorf("location = %q/%q, want Paris/France", first.City, first.Country)
	}
	if first.PricePerNight == nil || *first.PricePerNight != 245 {
		t.Errorf("PricePerNight = %v, want 245", first.PricePerNight)
	}
	if first.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", first.Currency)
	}
	if first.ReviewScore == nil || *first.ReviewScore != 8.7 {
		t.Errorf("ReviewScore = %v, want 8.7", first.ReviewScore)
	}
	if first.ReviewCount == nil || *first.ReviewCount != 2431 {
		t.Errorf("ReviewCount = %v, want 2431", first.ReviewCount)
	}
	if first.SourceURL != "https://www.booking.com/hotel/fr/le-grand.html" {
		t.Errorf("SourceURL = %q, not absolutized", first.SourceURL)
	}
	if first.ImageURL != "https://cf.bstatic.com/images/grand.jpg" {
		t.Errorf("ImageURL = %q", first.ImageURL)
	}
	if first.ID == "" || first.ID != first.Fingerprint() {
		t.Errorf("ID = %q, want fingerprint %q", first.ID, first.Fingerprint())
	}
	if first.ScrapedAt.IsZero() {
		t.Error("ScrapedAt is zero")
	}
}

func TestParseListings_OptionalFieldsAbsent(t *testing.T) {
	hotels, err := parseListings(resultsPage, paris)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}

	second := hotels[1]
	if second.Name != "Petite Auberge" {
		t.Fatalf("Name = %q, want %q", second.Name, "Petite Auberge")
	}
	if second.ReviewScore != nil {
		t.Errorf("ReviewScore = %v, want nil", second.ReviewScore)
	}
	if second.ReviewCount != nil {
		t.Errorf("ReviewCount = %v, want nil", second.ReviewCount)
	}
	if second.PropertyType != "hotel" {
		t.Errorf("PropertyType = %q, want default hotel", second.PropertyType)
	}
}

func TestParseListings_SkipsNamelessCards(t *testing.T) {
	hotels, err := parseListings(resultsPage, paris)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	for _, h := range hotels {
		if h.Name == "" {
			t.Fatal("a nameless card survived parsing")
		}
	}
}

func TestParseListings_LegacyMarkup(t *testing.T) {
	page := `<html><body>
	<div class="sr_property_block">
	  <a class="hotel_name_link" href="/hotel/gb/old-style.html"><span class="sr-hotel__name">Old Style Inn</span></a>
	  <div class="sr_card_address_line">Baker Street, London</div>
	  <div class="bui-review-score__badge">7.2</div>
	  <div class="bui-price-display__value">£ 120</div>
	</div>
	</body></html>`

	city := catalog.City{Name: "London", Country: "United Kingdom", Region: catalog.RegionEurope, Priority: 1}
	hotels, err := parseListings(page, city)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("parseListings() returned %d hotels, want 1", len(hotels))
	}
	if hotels[0].Name != "Old Style Inn" {
		t.Errorf("Name = %q", hotels[0].Name)
	}
	if hotels[0].Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", hotels[0].Currency)
	}
}

func TestParseListings_EmptyPage(t *testing.T) {
	hotels, err := parseListings("<html><body><p>No properties found.</p></body></html>", paris)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	if len(hotels) != 0 {
		t.Fatalf("parseListings() returned %d hotels, want 0", len(hotels))
	}
}

// --- URL Tests ---

func TestSearchURL(t *testing.T) {
	u := searchURL("Paris, France", mustTime(t, "2026-01-01"))
	for _, want := range []string{
		"https://www.booking.com/searchresults.html?",
		"ss=Paris%2C+France",
		"checkin=2026-01-31",
		"checkout=2026-02-01",
		"group_adults=2",
		"no_rooms=1",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("searchURL() = %q, missing %q", u, want)
		}
	}
}
