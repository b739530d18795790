package booking

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

// parseListings extracts hotel records from a rendered search result page.
// Invalid cards are skipped; the caller never sees a record that fails
// validation.
func parseListings(html string, city catalog.City) ([]hotel.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	cards := findFirst(doc, selectors.card)

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
			ReviewCount:   hotel.NormalizeReviewCount(textFirst(card, selectors.reviewCount)),
			PricePerNight: amount,
			Currency:      currency,
			PropertyType:  propertyType(card),
			ImageURL:      hotel.NormalizeURL(attrFirst(card, selectors.image, "src"), baseURL),
			SourceURL:     hotel.NormalizeURL(attrFirst(card, selectors.link, "href"), baseURL),
			ScrapedAt:     now,
		}
		l.ID = l.Fingerprint()

		if hotel.Valid(&l) {
			listings = append(listings, l)
		}
	})

	return listings, nil
}

func propertyType(card *goquery.Selection) string {
	if t := hotel.NormalizeText(textFirst(card, selectors.propertyTyp)); t != "" {
		return t
	}
	return "hotel"
}

// findFirst returns the matches of the first selector that yields any.
func findFirst(doc *goquery.Document, sels []string) *goquery.Selection {
	for _, sel := range sels {
		if s := doc.Find(sel); s.Length() > 0 {
			return s
		}
	}
	return doc.Find(sels[0])
}

// textFirst returns the text of the first selector that matches within the
// selection.
func textFirst(s *goquery.Selection, sels []string) string {
	for _, sel := range sels {
		if m := s.Find(sel); m.Length() > 0 {
			return m.First().Text()
		}
	}
	return ""
}

// attrFirst returns an attribute of the first selector that matches.
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
