package restaurant

// Service exposes catalog queries to the handlers.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog filtered and ordered by the given terms.
func (s *Service) List(searchTerm, categoryTerm, sortKey string) []Restaurant {
	return FilterAndSort(s.repo.List(), searchTerm, categoryTerm, sortKey)
}

func (s *Service) GetByID(id int) (Restaurant, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Menu(restaurantID int) ([]MenuItem, error) {
	return s.repo.Menu(restaurantID)
}

// Offers projects every restaurant's promotional text, in catalog order.
func (s *Service) Offers() []Offer {
	restaurants := s.repo.List()
	offers := make([]Offer, 0, len(restaurants))
	for _, r := range restaurants {
		offers = append(offers, Offer{
			RestaurantID:   r.ID,
			RestaurantName: r.Name,
			Text:           r.Offer,
		})
	}
	return offers
}
