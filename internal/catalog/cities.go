package catalog

// worldwideCities is the built-in catalog, grouped by region. Operators can
// replace it per run with LoadFile.
var worldwideCities = []City{
	// Europe
	{Name: "Paris", Country: "France", Region: RegionEurope, Priority: 1},
	{Name: "London", Country: "United Kingdom", Region: RegionEurope, Priority: 1},
	{Name: "Amsterdam", Country: "Netherlands", Region: RegionEurope, Priority: 1},
	{Name: "Berlin", Country: "Germany", Region: RegionEurope, Priority: 1},
	{Name: "Munich", Country: "Germany", Region: RegionEurope, Priority: 2},
	{Name: "Frankfurt", Country: "Germany", Region: RegionEurope, Priority: 2},
	{Name: "Rome", Country: "Italy", Region: RegionEurope, Priority: 1},
	{Name: "Milan", Country: "Italy", Region: RegionEurope, Priority: 2},
	{Name: "Venice", Country: "Italy", Region: RegionEurope, Priority: 2},
	{Name: "Florence", Country: "Italy", Region: RegionEurope, Priority: 2},
	{Name: "Madrid", Country: "Spain", Region: RegionEurope, Priority: 1},
	{Name: "Barcelona", Country: "Spain", Region: RegionEurope, Priority: 1},
	{Name: "Seville", Country: "Spain", Region: RegionEurope, Priority: 3},
	{Name: "Lisbon", Country: "Portugal", Region: RegionEurope, Priority: 1},
	{Name: "Porto", Country: "Portugal", Region: RegionEurope, Priority: 3},
	{Name: "Vienna", Country: "Austria", Region: RegionEurope, Priority: 1},
	{Name: "Salzburg", Country: "Austria", Region: RegionEurope, Priority: 3},
	{Name: "Prague", Country: "Czech Republic", Region: RegionEurope, Priority: 1},
	{Name: "Brussels", Country: "Belgium", Region: RegionEurope, Priority: 2},
	{Name: "Zurich", Country: "Switzerland", Region: RegionEurope, Priority: 2},
	{Name: "Geneva", Country: "Switzerland", Region: RegionEurope, Priority: 2},
	{Name: "Stockholm", Country: "Sweden", Region: RegionEurope, Priority: 2},
	{Name: "Copenhagen", Country: "Denmark", Region: RegionEurope, Priority: 2},
	{Name: "Oslo", Country: "Norway", Region: RegionEurope, Priority: 2},
	{Name: "Helsinki", Country: "Finland", Region: RegionEurope, Priority: 2},
	{Name: "Dublin", Country: "Ireland", Region: RegionEurope, Priority: 2},
	{Name: "Edinburgh", Country: "United Kingdom", Region: RegionEurope, Priority: 2},
	{Name: "Manchester", Country: "United Kingdom", Region: RegionEurope, Priority: 2},
	{Name: "Warsaw", Country: "Poland", Region: RegionEurope, Priority: 2},
	{Name: "Krakow", Country: "Poland", Region: RegionEurope, Priority: 2, AlternateNames: []string{"Cracow"}},
	{Name: "Budapest", Country: "Hungary", Region: RegionEurope, Priority: 1},
	{Name: "Athens", Country: "Greece", Region: RegionEurope, Priority: 1},
	{Name: "Santorini", Country: "Greece", Region: RegionEurope, Priority: 2, AlternateNames: []string{"Thira"}},
	{Name: "Istanbul", Country: "Turkey", Region: RegionEurope, Priority: 1},
	{Name: "Moscow", Country: "Russia", Region: RegionEurope, Priority: 2},
	{Name: "St Petersburg", Country: "Russia", Region: RegionEurope, Priority: 2, AlternateNames: []string{"Saint Petersburg"}},
	{Name: "Bucharest", Country: "Romania", Region: RegionEurope, Priority: 2},
	{Name: "Sofia", Country: "Bulgaria", Region: RegionEurope, Priority: 3},
	{Name: "Zagreb", Country: "Croatia", Region: RegionEurope, Priority: 2},
	{Name: "Dubrovnik", Country: "Croatia", Region: RegionEurope, Priority: 3},
	{Name: "Belgrade", Country: "Serbia", Region: RegionEurope, Priority: 3},
	{Name: "Bratislava", Country: "Slovakia", Region: RegionEurope, Priority: 3},
	{Name: "Ljubljana", Country: "Slovenia", Region: RegionEurope, Priority: 3},
	{Name: "Tallinn", Country: "Estonia", Region: RegionEurope, Priority: 3},
	{Name: "Riga", Country: "Latvia", Region: RegionEurope, Priority: 3},
	{Name: "Vilnius", Country: "Lithuania", Region: RegionEurope, Priority: 3},
	{Name: "Reykjavik", Country: "Iceland", Region: RegionEurope, Priority: 2},

	// North America
	{Name: "New York", Country: "United States", Region: RegionNorthAmerica, Priority: 1, AlternateNames: []string{"New York City"}},
	{Name: "Los Angeles", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Chicago", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Houston", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "San Francisco", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Seattle", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Denver", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Washington DC", Country: "United States", Region: RegionNorthAmerica, Priority: 1, AlternateNames: []string{"Washington"}},
	{Name: "Boston", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Las Vegas", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Miami", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "New Orleans", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Honolulu", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Orlando", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Atlanta", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "San Diego", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Dallas", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Austin", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Philadelphia", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Phoenix", Country: "United States", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Nashville", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Portland", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Minneapolis", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Tampa", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Anaheim", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Charlotte", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "San Antonio", Country: "United States", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Pittsburgh", Country: "United States", Region: RegionNorthAmerica, Priority: 3},
	{Name: "St. Louis", Country: "United States", Region: RegionNorthAmerica, Priority: 3},
	{Name: "Cleveland", Country: "United States", Region: RegionNorthAmerica, Priority: 3},
	{Name: "Anchorage", Country: "United States", Region: RegionNorthAmerica, Priority: 3},
	{Name: "Toronto", Country: "Canada", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Vancouver", Country: "Canada", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Montreal", Country: "Canada", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Calgary", Country: "Canada", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Ottawa", Country: "Canada", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Quebec City", Country: "Canada", Region: RegionNorthAmerica, Priority: 2},
	{Name: "London", Country: "Canada", Region: RegionNorthAmerica, Priority: 3},
	{Name: "Mexico City", Country: "Mexico", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Cancun", Country: "Mexico", Region: RegionNorthAmerica, Priority: 1},
	{Name: "Guadalajara", Country: "Mexico", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Playa del Carmen", Country: "Mexico", Region: RegionNorthAmerica, Priority: 2},
	{Name: "Tulum", Country: "Mexico", Region: RegionNorthAmerica, Priority: 2},

	// Central America
	{Name: "Guatemala City", Country: "Guatemala", Region: RegionCentralAmerica, Priority: 3},
	{Name: "San Jose", Country: "Costa Rica", Region: RegionCentralAmerica, Priority: 2},
	{Name: "La Fortuna", Country: "Costa Rica", Region: RegionCentralAmerica, Priority: 3},
	{Name: "Panama City", Country: "Panama", Region: RegionCentralAmerica, Priority: 2},

	// Asia
	{Name: "Tokyo", Country: "Japan", Region: RegionAsia, Priority: 1},
	{Name: "Osaka", Country: "Japan", Region: RegionAsia, Priority: 1},
	{Name: "Kyoto", Country: "Japan", Region: RegionAsia, Priority: 1},
	{Name: "Sapporo", Country: "Japan", Region: RegionAsia, Priority: 3},
	{Name: "Beijing", Country: "China", Region: RegionAsia, Priority: 1},
	{Name: "Shanghai", Country: "China", Region: RegionAsia, Priority: 1},
	{Name: "Hong Kong", Country: "Hong Kong", Region: RegionAsia, Priority: 1},
	{Name: "Seoul", Country: "South Korea", Region: RegionAsia, Priority: 1},
	{Name: "Busan", Country: "South Korea", Region: RegionAsia, Priority: 2},
	{Name: "Bangkok", Country: "Thailand", Region: RegionAsia, Priority: 1},
	{Name: "Phuket", Country: "Thailand", Region: RegionAsia, Priority: 1},
	{Name: "Chiang Mai", Country: "Thailand", Region: RegionAsia, Priority: 2},
	{Name: "Hanoi", Country: "Vietnam", Region: RegionAsia, Priority: 2},
	{Name: "Ho Chi Minh City", Country: "Vietnam", Region: RegionAsia, Priority: 2, AlternateNames: []string{"Saigon"}},
	{Name: "Da Nang", Country: "Vietnam", Region: RegionAsia, Priority: 3},
	{Name: "Singapore", Country: "Singapore", Region: RegionAsia, Priority: 1},
	{Name: "Kuala Lumpur", Country: "Malaysia", Region: RegionAsia, Priority: 1},
	{Name: "Penang", Country: "Malaysia", Region: RegionAsia, Priority: 3, AlternateNames: []string{"George Town"}},
	{Name: "Bali", Country: "Indonesia", Region: RegionAsia, Priority: 1, AlternateNames: []string{"Denpasar"}},
	{Name: "Jakarta", Country: "Indonesia", Region: RegionAsia, Priority: 2},
	{Name: "Manila", Country: "Philippines", Region: RegionAsia, Priority: 2},
	{Name: "Cebu", Country: "Philippines", Region: RegionAsia, Priority: 3},
	{Name: "Mumbai", Country: "India", Region: RegionAsia, Priority: 1},
	{Name: "Delhi", Country: "India", Region: RegionAsia, Priority: 1, AlternateNames: []string{"New Delhi"}},
	{Name: "Goa", Country: "India", Region: RegionAsia, Priority: 2},
	{Name: "Jaipur", Country: "India", Region: RegionAsia, Priority: 3},
	{Name: "Kathmandu", Country: "Nepal", Region: RegionAsia, Priority: 3},
	{Name: "Colombo", Country: "Sri Lanka", Region: RegionAsia, Priority: 3},
	{Name: "Siem Reap", Country: "Cambodia", Region: RegionAsia, Priority: 2},
	{Name: "Phnom Penh", Country: "Cambodia", Region: RegionAsia, Priority: 3},
	{Name: "Luang Prabang", Country: "Laos", Region: RegionAsia, Priority: 3},
	{Name: "Taipei", Country: "Taiwan", Region: RegionAsia, Priority: 2},
	{Name: "Dubai", Country: "United Arab Emirates", Region: RegionAsia, Priority: 1},
	{Name: "Abu Dhabi", Country: "United Arab Emirates", Region: RegionAsia, Priority: 2},
	{Name: "Doha", Country: "Qatar", Region: RegionAsia, Priority: 2},
	{Name: "Riyadh", Country: "Saudi Arabia", Region: RegionAsia, Priority: 2},
	{Name: "Tel Aviv", Country: "Israel", Region: RegionAsia, Priority: 2},
	{Name: "Jerusalem", Country: "Israel", Region: RegionAsia, Priority: 2},
	{Name: "Amman", Country: "Jordan", Region: RegionAsia, Priority: 3},

	// Oceania
	{Name: "Sydney", Country: "Australia", Region: RegionOceania, Priority: 1},
	{Name: "Melbourne", Country: "Australia", Region: RegionOceania, Priority: 1},
	{Name: "Brisbane", Country: "Australia", Region: RegionOceania, Priority: 2},
	{Name: "Perth", Country: "Australia", Region: RegionOceania, Priority: 2},
	{Name: "Gold Coast", Country: "Australia", Region: RegionOceania, Priority: 2},
	{Name: "Cairns", Country: "Australia", Region: RegionOceania, Priority: 3},
	{Name: "Auckland", Country: "New Zealand", Region: RegionOceania, Priority: 1},
	{Name: "Queenstown", Country: "New Zealand", Region: RegionOceania, Priority: 2},
	{Name: "Wellington", Country: "New Zealand", Region: RegionOceania, Priority: 3},
	{Name: "Nadi", Country: "Fiji", Region: RegionOceania, Priority: 3},
	{Name: "Bora Bora", Country: "French Polynesia", Region: RegionOceania, Priority: 2},

	// South America
	{Name: "Rio de Janeiro", Country: "Brazil", Region: RegionSouthAmerica, Priority: 1},
	{Name: "Sao Paulo", Country: "Brazil", Region: RegionSouthAmerica, Priority: 1, AlternateNames: []string{"São Paulo"}},
	{Name: "Buenos Aires", Country: "Argentina", Region: RegionSouthAmerica, Priority: 1},
	{Name: "Santiago", Country: "Chile", Region: RegionSouthAmerica, Priority: 2},
	{Name: "Lima", Country: "Peru", Region: RegionSouthAmerica, Priority: 2},
	{Name: "Cusco", Country: "Peru", Region: RegionSouthAmerica, Priority: 2, AlternateNames: []string{"Cuzco"}},
	{Name: "Bogota", Country: "Colombia", Region: RegionSouthAmerica, Priority: 2, AlternateNames: []string{"Bogotá"}},
	{Name: "Cartagena", Country: "Colombia", Region: RegionSouthAmerica, Priority: 2},
	{Name: "Medellin", Country: "Colombia", Region: RegionSouthAmerica, Priority: 3},
	{Name: "Quito", Country: "Ecuador", Region: RegionSouthAmerica, Priority: 3},
	{Name: "Montevideo", Country: "Uruguay", Region: RegionSouthAmerica, Priority: 3},
	{Name: "La Paz", Country: "Bolivia", Region: RegionSouthAmerica, Priority: 3},

	// Africa
	{Name: "Cape Town", Country: "South Africa", Region: RegionAfrica, Priority: 1},
	{Name: "Johannesburg", Country: "South Africa", Region: RegionAfrica, Priority: 2},
	{Name: "Cairo", Country: "Egypt", Region: RegionAfrica, Priority: 1},
	{Name: "Luxor", Country: "Egypt", Region: RegionAfrica, Priority: 3},
	{Name: "Marrakech", Country: "Morocco", Region: RegionAfrica, Priority: 1, AlternateNames: []string{"Marrakesh"}},
	{Name: "Casablanca", Country: "Morocco", Region: RegionAfrica, Priority: 3},
	{Name: "Fes", Country: "Morocco", Region: RegionAfrica, Priority: 3, AlternateNames: []string{"Fez"}},
	{Name: "Nairobi", Country: "Kenya", Region: RegionAfrica, Priority: 2},
	{Name: "Zanzibar", Country: "Tanzania", Region: RegionAfrica, Priority: 2},
	{Name: "Port Louis", Country: "Mauritius", Region: RegionAfrica, Priority: 3},
	{Name: "Victoria", Country: "Seychelles", Region: RegionAfrica, Priority: 3},
	{Name: "Tunis", Country: "Tunisia", Region: RegionAfrica, Priority: 3},

	// Caribbean
	{Name: "Punta Cana", Country: "Dominican Republic", Region: RegionCaribbean, Priority: 1},
	{Name: "Santo Domingo", Country: "Dominican Republic", Region: RegionCaribbean, Priority: 3},
	{Name: "Montego Bay", Country: "Jamaica", Region: RegionCaribbean, Priority: 2},
	{Name: "Nassau", Country: "Bahamas", Region: RegionCaribbean, Priority: 2},
	{Name: "Bridgetown", Country: "Barbados", Region: RegionCaribbean, Priority: 3},
	{Name: "Havana", Country: "Cuba", Region: RegionCaribbean, Priority: 2},
	{Name: "San Juan", Country: "Puerto Rico", Region: RegionCaribbean, Priority: 2},
	{Name: "Oranjestad", Country: "Aruba", Region: RegionCaribbean, Priority: 3},
}
