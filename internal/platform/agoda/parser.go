package agoda

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hotelharvest/hotelharvest/internal/catalog"
	"github.com/hotelharvest/hotelharvest/internal/hotel"
)

// Agoda rotates between data-selenium attributes and generated class names.
var selectors = struct {
	card        []string
	name        []string
	price       []string
	rating      []string
	reviewCount []string
	address     []string
	image       []string
}{
	card: []string{
		`[data-selenium="hotel-item"]`,
		`.PropertyCard`,
		`[data-element-name="property-card"]`,
	},
	name: []string{
		`[data-selenium="hotel-name"]`,
		`.PropertyCard__HotelName`,
		`.hotel-name`,
	},
	price: []string{
		`[data-selenium="display-price"]`,
		`.PropertyCardPrice__Value`,
		`.price-text`,
	},
	rating: []string{
		`[data-selenium="review-score"]`,
		`.PropertyCard__ReviewScore`,
		`.review-score`,
	},
	reviewCount: []string{
		`[data-selenium="review-count"]`,
	},
	address: []string{
		`[data-selenium="area-city-text"]`,
		`.PropertyCard__Address`,
	},
	image: []string{
		`[data-selenium="hotel-img"]`,
		`.PropertyCard__Image img`,
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
			ReviewCount:   hotel.NormalizeReviewCount(textFirst(card, selectors.reviewCount)),
			PricePerNight: amount,
			Currency:      currency,
			PropertyType:  "hotel",
			ImageURL:      hotel.NormalizeURL(imageURL(card), baseURL),
			SourceURL:     hotel.NormalizeURL(hotelLink(card), baseURL),
			ScrapedAt:     now,
		}
		l.ID = l.Fingerprint()

		if hotel.Valid(&l) {
			listings = append(listings, l)
		}
	})

	return listings, nil
}

// imageURL prefers src and falls back to lazy-load data-src.
func imageURL(card *goquery.Selection) string {
	for _, sel := range selectors.image {
		m := card.Find(sel)
		if m.Length() == 0 {
			continue
		}
		if v, ok := m.First().Attr("src"); ok && v != "" {
			return v
		}
		if v, ok := m.First().Attr("data-src"); ok {
			return v
		}
	}
	return ""
}

// hotelLink prefers a property-detail anchor over the card's first anchor.
func hotelLink(card *goquery.Selection) string {
	if m := card.Find(`a[href*="/hotel/"]`); m.Length() > 0 {
		if v, ok := m.First().Attr("href"); ok {
			return v
		}
	}
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
