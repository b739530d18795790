package catalog

// Country holds per-country metadata used for currency fallback and
// adapter country hints.
type Country struct {
	Code     string
	Currency string
}

var countries = map[string]Country{
	// Europe
	"France":         {Code: "FR", Currency: "EUR"},
	"United Kingdom": {Code: "GB", Currency: "GBP"},
	"Germany":        {Code: "DE", Currency: "EUR"},
	"Italy":          {Code: "IT", Currency: "EUR"},
	"Spain":          {Code: "ES", Currency: "EUR"},
	"Portugal":       {Code: "PT", Currency: "EUR"},
	"Netherlands":    {Code: "NL", Currency: "EUR"},
	"Belgium":        {Code: "BE", Currency: "EUR"},
	"Austria":        {Code: "AT", Currency: "EUR"},
	"Switzerland":    {Code: "CH", Currency: "CHF"},
	"Czech Republic": {Code: "CZ", Currency: "CZK"},
	"Poland":         {Code: "PL", Currency: "PLN"},
	"Hungary":        {Code: "HU", Currency: "HUF"},
	"Greece":         {Code: "GR", Currency: "EUR"},
	"Turkey":         {Code: "TR", Currency: "TRY"},
	"Russia":         {Code: "RU", Currency: "RUB"},
	"Romania":        {Code: "RO", Currency: "RON"},
	"Bulgaria":       {Code: "BG", Currency: "BGN"},
	"Croatia":        {Code: "HR", Currency: "EUR"},
	"Serbia":         {Code: "RS", Currency: "RSD"},
	"Slovakia":       {Code: "SK", Currency: "EUR"},
	"Slovenia":       {Code: "SI", Currency: "EUR"},
	"Estonia":        {Code: "EE", Currency: "EUR"},
	"Latvia":         {Code: "LV", Currency: "EUR"},
	"Lithuania":      {Code: "LT", Currency: "EUR"},
	"Sweden":         {Code: "SE", Currency: "SEK"},
	"Denmark":        {Code: "DK", Currency: "DKK"},
	"Norway":         {Code: "NO", Currency: "NOK"},
	"Finland":        {Code: "FI", Currency: "EUR"},
	"Ireland":        {Code: "IE", Currency: "EUR"},
	"Iceland":        {Code: "IS", Currency: "ISK"},

	// Americas
	"United States": {Code: "US", Currency: "USD"},
	"Canada":        {Code: "CA", Currency: "CAD"},
	"Mexico":        {Code: "MX", Currency: "MXN"},
	"Guatemala":     {Code: "GT", Currency: "GTQ"},
	"Costa Rica":    {Code: "CR", Currency: "CRC"},
	"Panama":        {Code: "PA", Currency: "PAB"},
	"Brazil":        {Code: "BR", Currency: "BRL"},
	"Argentina":     {Code: "AR", Currency: "ARS"},
	"Chile":         {Code: "CL", Currency: "CLP"},
	"Peru":          {Code: "PE", Currency: "PEN"},
	"Colombia":      {Code: "CO", Currency: "COP"},
	"Ecuador":       {Code: "EC", Currency: "USD"},
	"Uruguay":       {Code: "UY", Currency: "UYU"},
	"Bolivia":       {Code: "BO", Currency: "BOB"},

	// Asia
	"Japan":                {Code: "JP", Currency: "JPY"},
	"China":                {Code: "CN", Currency: "CNY"},
	"South Korea":          {Code: "KR", Currency: "KRW"},
	"Thailand":             {Code: "TH", Currency: "THB"},
	"Vietnam":              {Code: "VN", Currency: "VND"},
	"Singapore":            {Code: "SG", Currency: "SGD"},
	"Malaysia":             {Code: "MY", Currency: "MYR"},
	"Indonesia":            {Code: "ID", Currency: "IDR"},
	"Philippines":          {Code: "PH", Currency: "PHP"},
	"India":                {Code: "IN", Currency: "INR"},
	"Nepal":                {Code: "NP", Currency: "NPR"},
	"Sri Lanka":            {Code: "LK", Currency: "LKR"},
	"Cambodia":             {Code: "KH", Currency: "KHR"},
	"Laos":                 {Code: "LA", Currency: "LAK"},
	"Taiwan":               {Code: "TW", Currency: "TWD"},
	"Hong Kong":            {Code: "HK", Currency: "HKD"},
	"United Arab Emirates": {Code: "AE", Currency: "AED"},
	"Qatar":                {Code: "QA", Currency: "QAR"},
	"Saudi Arabia":         {Code: "SA", Currency: "SAR"},
	"Israel":               {Code: "IL", Currency: "ILS"},
	"Jordan":               {Code: "JO", Currency: "JOD"},

	// Oceania
	"Australia":        {Code: "AU", Currency: "AUD"},
	"New Zealand":      {Code: "NZ", Currency: "NZD"},
	"Fiji":             {Code: "FJ", Currency: "FJD"},
	"French Polynesia": {Code: "PF", Currency: "XPF"},

	// Africa
	"South Africa": {Code: "ZA", Currency: "ZAR"},
	"Egypt":        {Code: "EG", Currency: "EGP"},
	"Morocco":      {Code: "MA", Currency: "MAD"},
	"Kenya":        {Code: "KE", Currency: "KES"},
	"Tanzania":     {Code: "TZ", Currency: "TZS"},
	"Mauritius":    {Code: "MU", Currency: "MUR"},
	"Seychelles":   {Code: "SC", Currency: "SCR"},
	"Tunisia":      {Code: "TN", Currency: "TND"},

	// Caribbean
	"Dominican Republic": {Code: "DO", Currency: "DOP"},
	"Jamaica":            {Code: "JM", Currency: "JMD"},
	"Bahamas":            {Code: "BS", Currency: "BSD"},
	"Barbados":           {Code: "BB", Currency: "BBD"},
	"Cuba":               {Code: "CU", Currency: "CUP"},
	"Puerto Rico":        {Code: "PR", Currency: "USD"},
	"Aruba":              {Code: "AW", Currency: "AWG"},
}

// CodeFor returns the ISO country code, or "" when the country is unknown.
func CodeFor(country string) string {
	return countries[country].Code
}

// CurrencyFor returns the national currency code, or "" when unknown.
// Used as the fallback when a scraped price carries no recognizable symbol.
func CurrencyFor(country string) string {
	return countries[country].Currency
}
