package osm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

var starsRe = regexp.MustCompile(`\d+`)

// amenityTags maps boolean-ish OSM tags to display amenity names.
var amenityTags = []struct {
	tag  string
	name string
}{
	{"parking", "Parking"},
	{"swimming_pool", "Swimming Pool"},
	{"restaurant", "Restaurant"},
	{"bar", "Bar"},
	{"fitness_centre", "Fitness Center"},
	{"spa", "Spa"},
	{"sauna", "Sauna"},
	{"breakfast", "Breakfast"},
	{"air_conditioning", "Air Conditioning"},
	{"wheelchair", "Wheelchair Accessible"},
}

func parseResponse(body []byte, city catalog.City) ([]hotel.Listing, error) {
	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	listings := make([]hotel.Listing, 0, len(resp.Elements))
	now := time.Now().UTC()

	for _, el := range resp.Elements {
		name := hotel.NormalizeText(el.Tags["name"])
		if name == "" {
			continue
		}

		lat, lon := el.Lat, el.Lon
		if lat == nil && el.Center != nil {
			lat = hotel.Float(el.Center.Lat)
			lon = hotel.Float(el.Center.Lon)
		}

		l := hotel.Listing{
			Name:         name,
			Platform:     Platform,
			City:         city.Name,
			Country:      city.Country,
			Region:       city.Region,
			Address:      buildAddress(el.Tags),
			Latitude:     lat,
			Longitude:    lon,
			StarRating:   parseStars(el.Tags["stars"]),
			PropertyType: propertyType(el.Tags),
			Amenities:    extractAmenities(el.Tags),
			SourceURL:    fmt.Sprintf("https://www.openstreetmap.org/%s/%d", el.Type, el.ID),
			ScrapedAt:    now,
		}
		l.ID = l.Fingerprint()

		if hotel.Valid(&l) {
			listings = append(listings, l)
		}
	}

	return listings, nil
}

// parseStars reads the OSM stars tag, which is a bare digit ("4") rather
// than prose.
func parseStars(stars string) *int {
	m := starsRe.FindString(stars)
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil || v < 0 || v > 5 {
		return nil
	}
	return &v
}

func buildAddress(tags map[string]string) string {
	var parts []string
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city", "addr:postcode"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

func propertyType(tags map[string]string) string {
	switch tags["tourism"] {
	case "hotel":
		return "hotel"
	case "motel":
		return "motel"
	case "hostel":
		return "hostel"
	case "guest_house":
		return "guest house"
	}
	if tags["building"] == "hotel" {
		return "hotel"
	}
	return "accommodation"
}

func extractAmenities(tags map[string]string) []string {
	var out []string
	if tags["wifi"] == "yes" || tags["internet_access"] == "wlan" {
		out = append(out, "Free WiFi")
	}
	for _, at := range amenityTags {
		if tags[at.tag] == "yes" {
			out = append(out, at.name)
		}
	}
	return out
}
