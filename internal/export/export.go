// Package export persists scraped listings to the output directory. Every
// save rewrites the combined hotels.json file, its hotels.csv mirror, and
// the per-region snapshot the run is scoped to. The sink assumes a single
// writer; the orchestrator is sequential by design.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/dedupe"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
	"github.com/hotelharvest/hotelharvest/internal/logger"
)

const (
	combinedJSON = "hotels.json"
	combinedCSV  = "hotels.csv"
)

// csvHeader is the fixed column set of the CSV mirror. Optional fields
// render as empty cells; amenities are joined with "; ".
var csvHeader = []string{
	"id", "hotel_name", "platform", "city", "country", "region",
	"address", "latitude", "longitude", "star_rating", "review_score",
	"review_count", "price_per_night", "currency", "property_type",
	"amenities", "image_url", "source_url", "scraped_at",
}

// Options controls a Save call.
type Options struct {
	// Append merges the new records into the records already on disk
	// instead of replacing them.
	Append bool

	// Deduplicate drops records whose fingerprint already exists in the
	// merged set.
	Deduplicate bool
}

// Sink writes listings under a single output directory.
type Sink struct {
	dir string
}

// NewSink creates a sink rooted at dir, creating it if needed.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Sink{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Sink) Dir() string { return s.dir }

// Save persists records to the combined hotels.json and hotels.csv files.
// With Append it merges into the existing file contents first; with
// Deduplicate the merged set is fingerprint-deduplicated, earlier records
// winning. Returns the number of records on disk after the save.
func (s *Sink) Save(records []hotel.Listing, opts Options) (int, error) {
	merged := records
	if opts.Append {
		existing, err := s.LoadExisting()
		if err != nil {
			return 0, err
		}
		merged = append(existing, records...)
	}

	if opts.Deduplicate {
		store := dedupe.NewStore()
		merged, _ = store.Filter(merged)
	}

	if err := s.writeMirrors(filepath.Join(s.dir, combinedJSON), filepath.Join(s.dir, combinedCSV), merged); err != nil {
		return 0, err
	}

	logger.Info("saved listings", "count", len(merged), "dir", s.dir)
	return len(merged), nil
}

// SaveRegion persists the per-region snapshot <region>-hotels.json in
// addition to updating the combined files. The region file only carries
// that region's records.
func (s *Sink) SaveRegion(region catalog.Region, records []hotel.Listing, opts Options) (int, error) {
	total, err := s.Save(records, opts)
	if err != nil {
		return 0, err
	}

	all, err := s.LoadExisting()
	if err != nil {
		return 0, err
	}

	var regional []hotel.Listing
	for _, r := range all {
		if r.Region == region {
			regional = append(regional, r)
		}
	}

	path := filepath.Join(s.dir, string(region)+"-hotels.json")
	if err := writeJSON(path, regional); err != nil {
		return 0, err
	}

	logger.Info("saved region snapshot", "region", region, "count", len(regional))
	return total, nil
}

// LoadExisting reads the combined hotels.json. A missing file is an empty
// dataset, not an error.
func (s *Sink) LoadExisting() ([]hotel.Listing, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, combinedJSON))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read existing listings: %w", err)
	}

	var records []hotel.Listing
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode existing listings: %w", err)
	}
	return records, nil
}

// Prime marks every fingerprint already on disk in the store, so a resumed
// run will not re-emit hotels from earlier runs.
func (s *Sink) Prime(store *dedupe.Store) (int, error) {
	existing, err := s.LoadExisting()
	if err != nil {
		return 0, err
	}
	for i := range existing {
		store.Mark(existing[i].Fingerprint())
	}
	return len(existing), nil
}

// writeMirrors writes the JSON file and its CSV mirror concurrently. The
// two files carry identical record sets.
func (s *Sink) writeMirrors(jsonPath, csvPath string, records []hotel.Listing) error {
	var g errgroup.Group
	g.Go(func() error { return writeJSON(jsonPath, records) })
	g.Go(func() error { return writeCSV(csvPath, records) })
	return g.Wait()
}

func writeJSON(path string, records []hotel.Listing) error {
	if records == nil {
		records = []hotel.Listing{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeCSV(path string, records []hotel.Listing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for i := range records {
		if err := w.Write(csvRow(&records[i])); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func csvRow(l *hotel.Listing) []string {
	return []string{
		l.ID,
		l.Name,
		l.Platform,
		l.City,
		l.Country,
		string(l.Region),
		l.Address,
		floatCell(l.Latitude),
		floatCell(l.Longitude),
		intCell(l.StarRating),
		floatCell(l.ReviewScore),
		intCell(l.ReviewCount),
		floatCell(l.PricePerNight),
		l.Currency,
		l.PropertyType,
		strings.Join(l.Amenities, "; "),
		l.ImageURL,
		l.SourceURL,
		l.ScrapedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
