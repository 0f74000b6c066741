package restaurant

// Restaurant is the catalog entry for a single restaurant. It is reference
// data: nothing in the API mutates it. JSON tags match the public contract
// consumed by the web and mobile clients.
type Restaurant struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  float64 `json:"deliveryFee"`
	Image        string  `json:"image"`
	Offer        string  `json:"offer"`
}

// MenuItem belongs to exactly one restaurant's menu. IDs are unique within
// a menu (the seed data keeps them globally unique as well).
type MenuItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Offer is the `/api/offers` projection of a restaurant's promotional text.
type Offer struct {
	RestaurantID   int    `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	Text           string `json:"text"`
}

// Seed returns the canonical catalog used when no database is configured.
func Seed() []Restaurant {
	return []Restaurant{
		{
			ID:           1,
			Name:         "Pizza Place",
			Category:     "Pizza",
			Rating:       4.6,
			DeliveryTime: "20-30 min",
			DeliveryFee:  2.5,
			Image:        "🍕",
			Offer:        "Entrega gratis na primeira compra!",
		},
		{
			ID:           2,
			Name:         "Burger House",
			Category:     "Burgers",
			Rating:       4.4,
			DeliveryTime: "25-35 min",
			DeliveryFee:  1.99,
			Image:        "🍔",
			Offer:        "Combo duplo com 20% OFF",
		},
		{
			ID:           3,
			Name:         "Sushi Prime",
			Category:     "Sushi",
			Rating:       4.8,
			DeliveryTime: "30-45 min",
			DeliveryFee:  3.5,
			Image:        "🍣",
			Offer:        "Temaki grátis acima de R$ 60",
		},
		{
			ID:           4,
			Name:         "Pasta Bella",
			Category:     "Massas",
			Rating:       4.5,
			DeliveryTime: "25-40 min",
			DeliveryFee:  2.75,
			Image:        "🍝",
			Offer:        "2 massas pelo preço de 1 às quartas",
		},
	}
}

// SeedMenus returns the menu for each seeded restaurant, keyed by restaurant id.
func SeedMenus() map[int][]MenuItem {
	return map[int][]MenuItem{
		1: {
			{ID: 101, Name: "Margherita", Price: 29.9},
			{ID: 102, Name: "Calabresa", Price: 34.9},
			{ID: 103, Name: "Quatro Queijos", Price: 36.9},
		},
		2: {
			{ID: 201, Name: "Cheeseburger", Price: 19.9},
			{ID: 202, Name: "Bacon Burger", Price: 24.9},
			{ID: 203, Name: "Batata Frita", Price: 12.9},
		},
		3: {
			{ID: 301, Name: "Combo Sushi 20 peças", Price: 54.9},
			{ID: 302, Name: "Hot Roll", Price: 29.9},
			{ID: 303, Name: "Temaki Salmão", Price: 21.9},
		},
		4: {
			{ID: 401, Name: "Spaghetti Bolonhesa", Price: 32.9},
			{ID: 402, Name: "Fettuccine Alfredo", Price: 35.9},
			{ID: 403, Name: "Lasanha", Price: 33.9},
		},
	}
}
