package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

func writeSnapshot(t *testing.T, dir, name string, records []hotel.Listing) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func record(name, city string, region catalog.Region) hotel.Listing {
	l := hotel.Listing{
		Name:      name,
		Platform:  "osm",
		City:      city,
		Country:   "Testland",
		Region:    region,
		ScrapedAt: time.Now().UTC(),
	}
	l.ID = l.Fingerprint()
	return l
}

// --- Tracker Tests ---

func TestTracker_ScrapedCities(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "europe-hotels.json", []hotel.Listing{
		record("Euro Inn", "Lisbon", catalog.RegionEurope),
		record("Euro Lodge", "Lisbon", catalog.RegionEurope),
		record("London Arms", "London", catalog.RegionEurope),
	})
	writeSnapshot(t, dir, "north-america-hotels.json", []hotel.Listing{
		record("Maple Stay", "London", catalog.RegionNorthAmerica),
	})

	scraped := NewTracker(dir).ScrapedCities()
	if len(scraped) != 3 {
		t.Fatalf("ScrapedCities() has %d entries, want 3", len(scraped))
	}

	lisbon := catalog.City{Name: "Lisbon", Region: catalog.RegionEurope}
	if !scraped[lisbon.Key()] {
		t.Error("Lisbon missing from scraped set")
	}

	ukLondon := catalog.City{Name: "London", Region: catalog.RegionEurope}
	caLondon := catalog.City{Name: "London", Region: catalog.RegionNorthAmerica}
	if !scraped[ukLondon.Key()] || !scraped[caLondon.Key()] {
		t.Error("same-named cities in different regions must track independently")
	}
}

func TestTracker_Counts(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "asia-hotels.json", []hotel.Listing{
		record("A", "Bangkok", catalog.RegionAsia),
		record("B", "Bangkok", catalog.RegionAsia),
		record("C", "Tokyo", catalog.RegionAsia),
	})

	tr := NewTracker(dir)
	if got := tr.TotalHotels(); got != 3 {
		t.Fatalf("TotalHotels() = %d, want 3", got)
	}

	counts := tr.CityCounts()
	bangkok := catalog.City{Name: "Bangkok", Region: catalog.RegionAsia}
	if counts[bangkok.Key()] != 2 {
		t.Errorf("CityCounts()[bangkok] = %d, want 2", counts[bangkok.Key()])
	}

	regions := tr.RegionCounts()
	if regions[catalog.RegionAsia] != 3 {
		t.Errorf("RegionCounts()[asia] = %d, want 3", regions[catalog.RegionAsia])
	}
}

func TestTracker_CountryCounts(t *testing.T) {
	dir := t.TempDir()
	a := record("A", "Bangkok", catalog.RegionAsia)
	b := record("B", "Bangkok", catalog.RegionAsia)
	c := record("C", "Tokyo", catalog.RegionAsia)
	a.Country, b.Country, c.Country = "Thailand", "Thailand", "Japan"
	writeSnapshot(t, dir, "asia-hotels.json", []hotel.Listing{a, b, c})

	counts := NewTracker(dir).CountryCounts()
	if counts["Thailand"] != 2 {
		t.Errorf("CountryCounts()[Thailand] = %d, want 2", counts["Thailand"])
	}
	if counts["Japan"] != 1 {
		t.Errorf("CountryCounts()[Japan] = %d, want 1", counts["Japan"])
	}
}

func TestTracker_Remaining(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "europe-hotels.json", []hotel.Listing{
		record("Euro Inn", "Lisbon", catalog.RegionEurope),
	})

	cities := []catalog.City{
		{Name: "Lisbon", Country: "Portugal", Region: catalog.RegionEurope, Priority: 1},
		{Name: "Porto", Country: "Portugal", Region: catalog.RegionEurope, Priority: 2},
	}

	remaining := NewTracker(dir).Remaining(cities)
	if len(remaining) != 1 {
		t.Fatalf("Remaining() has %d cities, want 1", len(remaining))
	}
	if remaining[0].Name != "Porto" {
		t.Errorf("Remaining()[0] = %q, want Porto", remaining[0].Name)
	}
}

func TestTracker_SkipsMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "asia-hotels.json", []hotel.Listing{
		record("A", "Bangkok", catalog.RegionAsia),
	})
	if err := os.WriteFile(filepath.Join(dir, "europe-hotels.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if got := NewTracker(dir).TotalHotels(); got != 1 {
		t.Fatalf("TotalHotels() = %d, want 1 (malformed file skipped)", got)
	}
}

func TestTracker_EmptyDir(t *testing.T) {
	tr := NewTracker(t.TempDir())
	if got := tr.TotalHotels(); got != 0 {
		t.Fatalf("TotalHotels() = %d, want 0", got)
	}
	if scraped := tr.ScrapedCities(); len(scraped) != 0 {
		t.Fatalf("ScrapedCities() has %d entries, want 0", len(scraped))
	}
}

func TestTracker_IgnoresCombinedFile(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "hotels.json", []hotel.Listing{
		record("Combined Only", "Lisbon", catalog.RegionEurope),
	})

	if got := NewTracker(dir).TotalHotels(); got != 0 {
		t.Fatalf("TotalHotels() = %d, want 0 (hotels.json is not a region snapshot)", got)
	}
}
