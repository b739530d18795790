// Package catalog holds the static city catalog that drives collection runs.
package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Region identifies a geographic region used to group cities and name
// per-region output files.
type Region string

const (
	RegionEurope         Region = "europe"
	RegionNorthAmerica   Region = "north-america"
	RegionCentralAmerica Region = "central-america"
	RegionSouthAmerica   Region = "south-america"
	RegionAsia           Region = "asia"
	RegionOceania        Region = "oceania"
	RegionAfrica         Region = "africa"
	RegionCaribbean      Region = "caribbean"
)

// Regions lists all known regions in catalog order.
func Regions() []Region {
	return []Region{
		RegionEurope,
		RegionNorthAmerica,
		RegionCentralAmerica,
		RegionAsia,
		RegionOceania,
		RegionSouthAmerica,
		RegionAfrica,
		RegionCaribbean,
	}
}

// ParseRegion validates a region string.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Regions(), r) {
		return r, nil
	}
	return "", fmt.Errorf("unknown region: %q", s)
}

// City is one catalog entry. Entries are immutable after load.
//
// (Name, Country) is not globally unique: the same city name can appear in
// two regions (London, UK vs London, Canada). Identity for scraping purposes
// is (Name, Region).
type City struct {
	Name           string   `json:"name" yaml:"name"`
	Country        string   `json:"country" yaml:"country"`
	Region         Region   `json:"region" yaml:"region"`
	Priority       int      `json:"priority" yaml:"priority"`
	AlternateNames []string `json:"alternate_names,omitempty" yaml:"alternate_names,omitempty"`
}

// Key returns the (name, region) identity of the city.
func (c City) Key() string {
	return strings.ToLower(c.Name) + "|" + string(c.Region)
}

// SearchQuery returns the query string handed to platform adapters.
func (c City) SearchQuery() string {
	return c.Name + ", " + c.Country
}

// CountryCode returns the ISO code for the city's country, or "" if unknown.
func (c City) CountryCode() string {
	return CodeFor(c.Country)
}

// All returns every catalog city, priority-grouped: tier-1 cities first,
// then tier-2 and tier-3, preserving region order within each tier.
func All() []City {
	cities := slices.Clone(worldwideCities)
	slices.SortStableFunc(cities, func(a, b City) int {
		return a.Priority - b.Priority
	})
	return cities
}

// ByRegion returns the cities of one region, priority-grouped.
func ByRegion(region Region) []City {
	var cities []City
	for _, c := range worldwideCities {
		if c.Region == region {
			cities = append(cities, c)
		}
	}
	slices.SortStableFunc(cities, func(a, b City) int {
		return a.Priority - b.Priority
	})
	return cities
}

// ByPriority returns all cities of one priority tier.
func ByPriority(priority int) []City {
	var cities []City
	for _, c := range worldwideCities {
		if c.Priority == priority {
			cities = append(cities, c)
		}
	}
	return cities
}

// HighPriority returns the tier-1 cities.
func HighPriority() []City {
	return ByPriority(1)
}

// ByNames filters the catalog to the named cities (case-insensitive).
// Unknown names are ignored.
func ByNames(names []string) []City {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(strings.TrimSpace(n))] = true
	}
	var cities []City
	for _, c := range All() {
		if want[strings.ToLower(c.Name)] {
			cities = append(cities, c)
		}
	}
	return cities
}

// CountByRegion returns the number of catalog cities per region.
func CountByRegion() map[Region]int {
	counts := make(map[Region]int)
	for _, c := range worldwideCities {
		counts[c.Region]++
	}
	return counts
}

// LoadFile reads a city catalog from a YAML or JSON file, replacing the
// built-in table for the calling run. Each entry must carry name, country,
// region and priority.
func LoadFile(path string) ([]City, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- catalog path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cities []City
	if err := yaml.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	for i, c := range cities {
		if c.Name == "" || c.Country == "" {
			return nil, fmt.Errorf("catalog entry %d: name and country are required", i)
		}
		if _, err := ParseRegion(string(c.Region)); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, c.Name, err)
		}
		if c.Priority < 1 || c.Priority > 3 {
			return nil, fmt.Errorf("catalog entry %d (%s): priority must be 1-3, got %d", i, c.Name, c.Priority)
		}
	}

	slices.SortStableFunc(cities, func(a, b City) int {
		return a.Priority - b.Priority
	})
	return cities, nil
}
