package hotel

import (
	"strings"
	"testing"
	"time"
)

func validListing() *Listing {
	return &Listing{
		Name:      "Grand Plaza Hotel",
		Platform:  "booking",
		City:      "Paris",
		Country:   "France",
		ScrapedAt: time.Now(),
	}
}

// --- Fingerprint Tests ---

func TestFingerprint_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := Fingerprint("Hotel   Plaza", "Paris")
	b := Fingerprint("hotel plaza", "  Paris  ")
	if a != b {
		t.Errorf("fingerprints should match: %q vs %q", a, b)
	}
}

func TestFingerprint_DistinctHotels(t *testing.T) {
	a := Fingerprint("Hotel Plaza", "Paris")
	b := Fingerprint("Hotel Plaza", "London")
	if a == b {
		t.Error("same name in different cities should fingerprint differently")
	}
}

func TestFingerprint_FoldsPunctuation(t *testing.T) {
	got := Fingerprint("Hôtel de l'Europe", "Paris")
	for _, r := range got {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_' {
			t.Fatalf("fingerprint contains unexpected rune %q in %q", r, got)
		}
	}
}

// --- Validate Tests ---

func TestValidate_AcceptsCompleteListing(t *testing.T) {
	if err := Validate(validListing()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Listing)
	}{
		{"empty name", func(l *Listing) { l.Name = "" }},
		{"one char name", func(l *Listing) { l.Name = "A" }},
		{"two char name", func(l *Listing) { l.Name = "Ab" }},
		{"name over 200 chars", func(l *Listing) { l.Name = strings.Repeat("x", 201) }},
		{"empty city", func(l *Listing) { l.City = "" }},
		{"empty country", func(l *Listing) { l.Country = "" }},
		{"review score above 10", func(l *Listing) { l.ReviewScore = Float(10.5) }},
		{"negative review score", func(l *Listing) { l.ReviewScore = Float(-1) }},
		{"star rating above 5", func(l *Listing) { l.StarRating = Int(6) }},
		{"latitude out of range", func(l *Listing) { l.Latitude = Float(94.2) }},
		{"negative price", func(l *Listing) { l.PricePerNight = Float(-10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(l)
			if Valid(l) {
				t.Errorf("listing with %s should be rejected", tt.name)
			}
		})
	}
}

func TestValidate_BoundaryNames(t *testing.T) {
	for _, n := range []string{"Inn", strings.Repeat("x", 200)} {
		l := validListing()
		l.Name = n
		if !Valid(l) {
			t.Errorf("name of length %d should be accepted", len(n))
		}
	}
}

func TestValidate_OptionalFieldsMayBeAbsent(t *testing.T) {
	l := validListing()
	l.Latitude = nil
	l.PricePerNight = nil
	l.ReviewScore = nil
	if !Valid(l) {
		t.Error("absent optional fields are a valid state")
	}
}
