package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/dedupe"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

func listing(name, city string, region catalog.Region) hotel.Listing {
	l := hotel.Listing{
		Name:      name,
		Platform:  "booking",
		City:      city,
		Country:   "Testland",
		Region:    region,
		ScrapedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	l.ID = l.Fingerprint()
	return l
}

func readJSON(t *testing.T, path string) []hotel.Listing {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var records []hotel.Listing
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return records
}

// --- Save Tests ---

func TestSink_Save(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	records := []hotel.Listing{
		listing("Hotel Alpha", "Lisbon", catalog.RegionEurope),
		listing("Hotel Beta", "Lisbon", catalog.RegionEurope),
	}

	n, err := sink.Save(records, Options{})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("Save() = %d, want 2", n)
	}

	got := readJSON(t, filepath.Join(dir, "hotels.json"))
	if len(got) != 2 {
		t.Fatalf("hotels.json has %d records, want 2", len(got))
	}
	if got[0].Name != "Hotel Alpha" {
		t.Errorf("first record = %q", got[0].Name)
	}

	if _, err := os.Stat(filepath.Join(dir, "hotels.csv")); err != nil {
		t.Fatalf("hotels.csv missing: %v", err)
	}
}

func TestSink_SaveAppend(t *testing.T) {
	sink, err := NewSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	if _, err := sink.Save([]hotel.Listing{listing("Hotel Alpha", "Lisbon", catalog.RegionEurope)}, Options{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	n, err := sink.Save([]hotel.Listing{listing("Hotel Beta", "Porto", catalog.RegionEurope)}, Options{Append: true})
	if err != nil {
		t.Fatalf("Save(append) error = %v", err)
	}
	if n != 2 {
		t.Fatalf("Save(append) = %d, want 2", n)
	}
}

func TestSink_SaveDeduplicates(t *testing.T) {
	sink, err := NewSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	if _, err := sink.Save([]hotel.Listing{listing("Hotel Alpha", "Lisbon", catalog.RegionEurope)}, Options{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	dup := listing("hotel  ALPHA", "Lisbon", catalog.RegionEurope)
	dup.Platform = "agoda"

	n, err := sink.Save([]hotel.Listing{dup}, Options{Append: true, Deduplicate: true})
	if err != nil {
		t.Fatalf("Save(dedupe) error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Save(dedupe) = %d, want 1 (case-variant duplicate dropped)", n)
	}

	got, err := sink.LoadExisting()
	if err != nil {
		t.Fatalf("LoadExisting() error = %v", err)
	}
	if got[0].Platform != "booking" {
		t.Errorf("surviving record platform = %q, want the first-seen booking record", got[0].Platform)
	}
}

func TestSink_SaveReplaceWithoutAppend(t *testing.T) {
	sink, err := NewSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	if _, err := sink.Save([]hotel.Listing{listing("Hotel Alpha", "Lisbon", catalog.RegionEurope)}, Options{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	n, err := sink.Save([]hotel.Listing{listing("Hotel Beta", "Porto", catalog.RegionEurope)}, Options{})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Save() without append = %d records, want 1", n)
	}
}

// --- Region Snapshot Tests ---

func TestSink_SaveRegion(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	if _, err := sink.Save([]hotel.Listing{listing("Asia House", "Bangkok", catalog.RegionAsia)}, Options{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	_, err = sink.SaveRegion(catalog.RegionEurope,
		[]hotel.Listing{listing("Euro Inn", "Lisbon", catalog.RegionEurope)},
		Options{Append: true, Deduplicate: true})
	if err != nil {
		t.Fatalf("SaveRegion() error = %v", err)
	}

	regional := readJSON(t, filepath.Join(dir, "europe-hotels.json"))
	if len(regional) != 1 {
		t.Fatalf("europe-hotels.json has %d records, want 1", len(regional))
	}
	if regional[0].Name != "Euro Inn" {
		t.Errorf("regional record = %q", regional[0].Name)
	}

	combined := readJSON(t, filepath.Join(dir, "hotels.json"))
	if len(combined) != 2 {
		t.Fatalf("hotels.json has %d records, want 2", len(combined))
	}
}

// --- CSV Mirror Tests ---

func TestSink_CSVMirror(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir)
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	l := listing("Hotel Gamma", "Madrid", catalog.RegionEurope)
	l.PricePerNight = hotel.Float(120.5)
	l.Currency = "EUR"
	l.StarRating = hotel.Int(4)
	l.Amenities = []string{"Free WiFi", "Parking"}

	if _, err := sink.Save([]hotel.Listing{l}, Options{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "hotels.csv"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("csv has %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "id" || rows[0][1] != "hotel_name" {
		t.Errorf("header = %v", rows[0])
	}

	row := rows[1]
	if row[1] != "Hotel Gamma" {
		t.Errorf("hotel_name = %q", row[1])
	}
	if row[12] != "120.5" {
		t.Errorf("price_per_night = %q, want 120.5", row[12])
	}
	if row[9] != "4" {
		t.Errorf("star_rating = %q, want 4", row[9])
	}
	if row[15] != "Free WiFi; Parking" {
		t.Errorf("amenities = %q", row[15])
	}
	if row[7] != "" || row[8] != "" {
		t.Errorf("absent coordinates should be empty cells, got %q/%q", row[7], row[8])
	}
	if !strings.HasPrefix(row[18], "2026-08-01T12:00:00") {
		t.Errorf("scraped_at = %q", row[18])
	}
}

// --- Load & Prime Tests ---

func TestSink_LoadExisting_Missing(t *testing.T) {
	sink, err := NewSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}
	records, err := sink.LoadExisting()
	if err != nil {
		t.Fatalf("LoadExisting() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("LoadExisting() = %d records, want 0", len(records))
	}
}

func TestSink_Prime(t *testing.T) {
	sink, err := NewSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	if _, err := sink.Save([]hotel.Listing{listing("Hotel Alpha", "Lisbon", catalog.RegionEurope)}, Options{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	store := dedupe.NewStore()
	n, err := sink.Prime(store)
	if err != nil {
		t.Fatalf("Prime() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Prime() = %d, want 1", n)
	}
	if !store.Seen(hotel.Fingerprint("Hotel Alpha", "Lisbon")) {
		t.Error("primed store does not know an on-disk fingerprint")
	}
}
