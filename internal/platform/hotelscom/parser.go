package hotelscom

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

// Hotels.com ships uitk-prefixed design-system classes alongside data-stid
// hooks. The data-stid attributes are the stable ones.
var selectors = struct {
	card    []string
	name    []string
	price   []string
	rating  []string
	reviews []string
	address []string
	image   []string
}{
	card: []string{
		`[data-stid="property-listing-results"] > div`,
		`[data-stid="property-card"]`,
		`.uitk-card`,
	},
	name: []string{
		`h3`,
		`.uitk-heading`,
	},
	price: []string{
		`[data-stid="price-summary"] .uitk-text`,
		`.uitk-type-500`,
	},
	rating: []string{
		`[data-stid="property-guest-rating"]`,
		`.uitk-badge-base-text`,
	},
	reviews: []string{
		`[data-stid="property-reviews"]`,
	},
	address: []string{
		`[data-stid="property-neighborhood"]`,
		`.uitk-text-emphasis`,
	},
	image: []string{
		`.uitk-image img`,
		`img[data-stid="property-image"]`,
	},
}

func parseListings(html string, city catalog.City) ([]hotel.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var cards *goquery.Selection
	for _, sel := range selectors.card {
		if s := doc.Find(sel); s.Length() > 0 {
			cards = s
			break
		}
	}
	if cards == nil {
		return []hotel.Listing{}, nil
	}

	listings := make([]hotel.Listing, 0, cards.Length())
	now := time.Now().UTC()
	fallbackCurrency := catalog.CurrencyFor(city.Country)

	cards.Each(func(_ int, card *goquery.Selection) {
		name := hotel.NormalizeText(textFirst(card, selectors.name))
		if name == "" {
			return
		}

		amount, currency := hotel.NormalizePrice(textFirst(card, selectors.price), fallbackCurrency)

		l := hotel.Listing{
			Name:          name,
			Platform:      Platform,
			City:          city.Name,
			Country:       city.Country,
			Region:        city.Region,
			Address:       hotel.NormalizeText(textFirst(card, selectors.address)),
			ReviewScore:   hotel.NormalizeRating(textFirst(card, selectors.rating)),
			ReviewCount:   hotel.NormalizeReviewCount(textFirst(card, selectors.reviews)),
			PricePerNight: amount,
			Currency:      currency,
			PropertyType:  "hotel",
			ImageURL:      hotel.NormalizeURL(attrFirst(card, selectors.image, "src"), baseURL),
			SourceURL:     hotel.NormalizeURL(firstLink(card), baseURL),
			ScrapedAt:     now,
		}
		l.ID = l.Fingerprint()

		if hotel.Valid(&l) {
			listings = append(listings, l)
		}
	})

	return listings, nil
}

func firstLink(card *goquery.Selection) string {
	if m := card.Find("a"); m.Length() > 0 {
		if v, ok := m.First().Attr("href"); ok {
			return v
		}
	}
	return ""
}

func textFirst(s *goquery.Selection, sels []string) string {
	for _, sel := range sels {
		if m := s.Find(sel); m.Length() > 0 {
			return m.First().Text()
		}
	}
	return ""
}

func attrFirst(s *goquery.Selection, sels []string, attr string) string {
	for _, sel := range sels {
		if m := s.Find(sel); m.Length() > 0 {
			if v, ok := m.First().Attr(attr); ok {
				return v
			}
		}
	}
	return ""
}
