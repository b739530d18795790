package agoda

import (
	"strings"
	"testing"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
)

var bangkok = catalog.City{Name: "Bangkok", Country: "Thailand", Region: catalog.RegionAsia, Priority: 1}

const resultsPage = `<html><body>
<div data-selenium="hotel-item">
  <a href="/hotel/th/riverside-palace.html">
    <span data-selenium="hotel-name">Riverside Palace</span>
  </a>
  <span data-selenium="area-city-text">Riverside, Bangkok</span>
  <span data-selenium="review-score">8.9</span>
  <span data-selenium="review-count">1,520 reviews</span>
  <span data-selenium="display-price">฿ 2,400</span>
  <img data-selenium="hotel-img" data-src="https://pix.agoda.net/riverside.jpg"/>
</div>
<div data-selenium="hotel-item">
  <a href="/hotel/th/sukhumvit-stay.html">
    <span data-selenium="hotel-name">Sukhumvit Stay</span>
  </a>
</div>
</body></html>`

// --- Parser Tests ---

func TestParseListings(t *testing.T) {
	hotels, err := parseListings(resultsPage, bangkok)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	if len(hotels) != 2 {
		t.Fatalf("parseListings() returned %d hotels, want 2", len(hotels))
	}

	first := hotels[0]
	if first.Name != "Riverside Palace" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Platform != Platform {
		t.Errorf("Platform = %q, want %q", first.Platform, Platform)
	}
	if first.PricePerNight == nil || *first.PricePerNight != 2400 {
		t.Errorf("PricePerNight = %v, want 2400", first.PricePerNight)
	}
	if first.Currency != "THB" {
		t.Errorf("Currency = %q, want THB", first.Currency)
	}
	if first.ReviewScore == nil || *first.ReviewScore != 8.9 {
		t.Errorf("ReviewScore = %v, want 8.9", first.ReviewScore)
	}
	if first.ReviewCount == nil || *first.ReviewCount != 1520 {
		t.Errorf("ReviewCount = %v, want 1520", first.ReviewCount)
	}
	if first.ImageURL != "https://pix.agoda.net/riverside.jpg" {
		t.Errorf("ImageURL = %q, lazy-load attribute not picked up", first.ImageURL)
	}
	if first.SourceURL != "https://www.agoda.com/hotel/th/riverside-palace.html" {
		t.Errorf("SourceURL = %q, not absolutized", first.SourceURL)
	}
}

func TestParseListings_ClassNameMarkup(t *testing.T) {
	page := `<html><body>
	<div class="PropertyCard">
	  <a href="/hotel/jp/shinjuku-tower.html"><span class="PropertyCard__HotelName">Shinjuku Tower Hotel</span></a>
	  <span class="PropertyCard__Address">Shinjuku, Tokyo</span>
	  <span class="PropertyCardPrice__Value">¥ 15,800</span>
	</div>
	</body></html>`

	tokyo := catalog.City{Name: "Tokyo", Country: "Japan", Region: catalog.RegionAsia, Priority: 1}
	hotels, err := parseListings(page, tokyo)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("parseListings() returned %d hotels, want 1", len(hotels))
	}
	if hotels[0].Name != "Shinjuku Tower Hotel" {
		t.Errorf("Name = %q", hotels[0].Name)
	}
	if hotels[0].Currency != "JPY" {
		t.Errorf("Currency = %q, want JPY", hotels[0].Currency)
	}
	if hotels[0].PricePerNight == nil || *hotels[0].PricePerNight != 15800 {
		t.Errorf("PricePerNight = %v, want 15800", hotels[0].PricePerNight)
	}
}

func TestParseListings_NoCards(t *testing.T) {
	hotels, err := parseListings("<html><body><p>nothing here</p></body></html>", bangkok)
	if err != nil {
		t.Fatalf("parseListings() error = %v", err)
	}
	if hotels == nil {
		t.Fatal("parseListings() returned nil, want empty slice")
	}
	if len(hotels) != 0 {
		t.Fatalf("parseListings() returned %d hotels, want 0", len(hotels))
	}
}

// --- URL Tests ---

func TestSearchURL(t *testing.T) {
	now, err := time.Parse("2006-01-02", "2026-03-01")
	if err != nil {
		t.Fatalf("time.Parse() error = %v", err)
	}
	u := searchURL(bangkok, now)
	for _, want := range []string{
		"https://www.agoda.com/search?",
		"textToSearch=Bangkok+Thailand",
		"checkIn=2026-03-31",
		"checkOut=2026-04-01",
		"adults=2",
		"rooms=1",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("searchURL() = %q, missing %q", u, want)
		}
	}
}
