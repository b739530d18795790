// Package progress derives resume state from the output directory. There is
// no separate checkpoint file: a city counts as scraped when it appears in
// any of the per-region snapshot files, so deleting an output file naturally
// re-queues its cities.
package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
	"github.com/hotelharvest/hotelharvest/internal/logger"
)

// Tracker reads completion state from per-region snapshot files.
type Tracker struct {
	dir string
}

// NewTracker creates a tracker over the output directory.
func NewTracker(dir string) *Tracker {
	return &Tracker{dir: dir}
}

// ScrapedCities returns the set of city keys that already have records on
// disk. Unreadable snapshot files are skipped with a warning rather than
// failing the whole resume.
func (t *Tracker) ScrapedCities() map[string]bool {
	scraped := make(map[string]bool)
	for _, l := range t.load() {
		city := catalog.City{Name: l.City, Region: l.Region}
		scraped[city.Key()] = true
	}
	return scraped
}

// CityCounts returns the number of records per city key.
func (t *Tracker) CityCounts() map[string]int {
	counts := make(map[string]int)
	for _, l := range t.load() {
		city := catalog.City{Name: l.City, Region: l.Region}
		counts[city.Key()]++
	}
	return counts
}

// RegionCounts returns the number of records per region.
func (t *Tracker) RegionCounts() map[catalog.Region]int {
	counts := make(map[catalog.Region]int)
	for _, l := range t.load() {
		counts[l.Region]++
	}
	return counts
}

// CountryCounts returns the number of records per country.
func (t *Tracker) CountryCounts() map[string]int {
	counts := make(map[string]int)
	for _, l := range t.load() {
		counts[l.Country]++
	}
	return counts
}

// TotalHotels returns the total number of records across all snapshots.
func (t *Tracker) TotalHotels() int {
	return len(t.load())
}

// Remaining filters cities down to those without records on disk,
// preserving order.
func (t *Tracker) Remaining(cities []catalog.City) []catalog.City {
	scraped := t.ScrapedCities()
	var out []catalog.City
	for _, c := range cities {
		if !scraped[c.Key()] {
			out = append(out, c)
		}
	}
	return out
}

func (t *Tracker) load() []hotel.Listing {
	paths, err := filepath.Glob(filepath.Join(t.dir, "*-hotels.json"))
	if err != nil {
		return nil
	}
	sort.Strings(paths)

	var all []hotel.Listing
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable snapshot", "file", path, "error", err)
			continue
		}
		var records []hotel.Listing
		if err := json.Unmarshal(data, &records); err != nil {
			logger.Warn("skipping malformed snapshot", "file", path, "error", err)
			continue
		}
		all = append(all, records...)
	}
	return all
}
