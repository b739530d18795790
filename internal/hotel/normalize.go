package hotel

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxAmenityLength drops garbage entries scraped from markup.
const maxAmenityLength = 100

var (
	numericRe     = regexp.MustCompile(`[\d,]+\.?\d*`)
	ratingRe      = regexp.MustCompile(`[\d.]+`)
	starRe        = regexp.MustCompile(`(?i)(\d+)[\s-]*star`)
	kiloReviewsRe = regexp.MustCompile(`([\d.]+)k`)
	countRe       = regexp.MustCompile(`[\d,]+`)
	coordPairRe   = regexp.MustCompile(`([-\d.]+)[,\s]+([-\d.]+)`)
	amenitySplit  = regexp.MustCompile(`[,;•·]`)
)

// Currency symbols checked longest-first so "R$" wins over "$".
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"R$", "BRL"},
	{"US$", "USD"},
	{"USD", "USD"},
	{"EUR", "EUR"},
	{"GBP", "GBP"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"₹", "INR"},
	{"₩", "KRW"},
	{"฿", "THB"},
	{"₺", "TRY"},
}

// NormalizeText trims and collapses whitespace. Returns "" for blank input.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizePrice parses raw price text into an amount and a currency code.
// The currency is resolved from the symbol when one is present, otherwise
// from fallbackCurrency (the country's currency), otherwise USD. Blank or
// non-numeric input yields (nil, "").
func NormalizePrice(priceText, fallbackCurrency string) (*float64, string) {
	cleaned := strings.Join(strings.Fields(priceText), "")
	if cleaned == "" {
		return nil, ""
	}

	currency := ""
	for _, cs := range currencySymbols {
		if strings.Contains(cleaned, cs.symbol) {
			currency = cs.code
			break
		}
	}

	numeric := numericRe.FindString(cleaned)
	if numeric == "" {
		return nil, ""
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(numeric, ",", ""), 64)
	if err != nil {
		return nil, ""
	}

	if currency == "" {
		currency = fallbackCurrency
	}
	if currency == "" {
		currency = "USD"
	}

	return &amount, currency
}

// NormalizeRating parses a review score and rejects values outside 0-10.
// Out-of-range values return nil rather than being clamped.
func NormalizeRating(ratingText string) *float64 {
	match := ratingRe.FindString(ratingText)
	if match == "" {
		return nil
	}

	rating, err := strconv.ParseFloat(match, 64)
	if err != nil || rating < 0 || rating > 10 {
		return nil
	}

	rounded := math.Round(rating*10) / 10
	return &rounded
}

// NormalizeReviewCount parses counts like "1,234 reviews" or "1.2K reviews".
func NormalizeReviewCount(reviewText string) *int {
	text := strings.ToLower(reviewText)

	if m := kiloReviewsRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		count := int(math.Round(v * 1000))
		return &count
	}

	match := countRe.FindString(text)
	if match == "" {
		return nil
	}

	count, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return nil
	}
	return &count
}

// NormalizeStarRating extracts a 0-5 star class from text like "4-star hotel".
func NormalizeStarRating(starText string) *int {
	m := starRe.FindStringSubmatch(starText)
	if m == nil {
		return nil
	}

	stars, err := strconv.Atoi(m[1])
	if err != nil || stars < 0 || stars > 5 {
		return nil
	}
	return &stars
}

// NormalizeAmenities splits a raw amenity string on common delimiters and
// drops blank or implausibly long entries.
func NormalizeAmenities(raw string) []string {
	return CleanAmenities(amenitySplit.Split(raw, -1))
}

// CleanAmenities normalizes an amenity list in place of NormalizeAmenities
// when the source already provides individual entries.
func CleanAmenities(items []string) []string {
	var out []string
	for _, a := range items {
		a = NormalizeText(a)
		if a == "" || len(a) >= maxAmenityLength {
			continue
		}
		out = append(out, a)
	}
	return out
}

// NormalizeBoolean interprets common truthy strings.
func NormalizeBoolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "available":
		return true
	}
	return false
}

// NormalizeURL absolutizes a scraped URL against a platform base URL.
func NormalizeURL(raw, base string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return strings.TrimSuffix(base, "/") + raw
	}
	return raw
}

// NormalizeCoordinate parses and rounds a coordinate to 6 decimal places.
func NormalizeCoordinate(coord string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(coord), 64)
	if err != nil {
		return nil
	}
	rounded := math.Round(v*1e6) / 1e6
	return &rounded
}

// ExtractCoordinates pulls a "lat, lng" pair out of free text.
func ExtractCoordinates(text string) (lat, lng *float64) {
	m := coordPairRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	return NormalizeCoordinate(m[1]), NormalizeCoordinate(m[2])
}
