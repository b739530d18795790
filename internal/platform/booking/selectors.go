package booking

// Selectors for Booking.com search result markup. The site rotates its
// generated class names, so each field carries alternates tried in order.
var selectors = struct {
	card        []string
	name        []string
	price       []string
	rating      []string
	reviewCount []string
	address     []string
	image       []string
	link        []string
	propertyTyp []string
}{
	card: []string{
		`[data-testid="property-card"]`,
		`.sr_property_block`,
		`[data-testid="property-card-container"]`,
	},
	name: []string{
		`[data-testid="title"]`,
		`.sr-hotel__name`,
		`a[data-testid="title-link"]`,
	},
	price: []string{
		`[data-testid="price-and-discounted-price"]`,
		`[data-testid="price-for-x-nights"]`,
		`.bui-price-display__value`,
	},
	rating: []string{
		`[data-testid="review-score"] div:first-child`,
		`.bui-review-score__badge`,
	},
	reviewCount: []string{
		`[data-testid="review-score"] div:last-child`,
		`.bui-review-score__text`,
	},
	address: []string{
		`[data-testid="address"]`,
		`.sr_card_address_line`,
	},
	image: []string{
		`[data-testid="image"]`,
		`img.hotel_image`,
	},
	link: []string{
		`a[data-testid="title-link"]`,
		`a.hotel_name_link`,
	},
	propertyTyp: []string{
		`[data-testid="property-type-badge"]`,
	},
}
