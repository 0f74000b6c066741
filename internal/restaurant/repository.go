package restaurant

import (
	"errors"
	"sync"
)

var (
	ErrNotFound     = errors.New("restaurant not found")
	ErrMenuNotFound = errors.New("menu not found")
)

// Repository provides read access to the catalog. The catalog is immutable
// for the lifetime of the process, so there are no write methods.
type Repository interface {
	List() []Restaurant
	GetByID(id int) (Restaurant, error)
	Menu(restaurantID int) ([]MenuItem, error)
}

// InMemoryRepository serves the catalog from fixed slices. It is the default
// backing source and is also used by tests.
type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
	menus       map[int][]MenuItem
}

func NewInMemoryRepository(restaurants []Restaurant, menus map[int][]MenuItem) *InMemoryRepository {
	r := &InMemoryRepository{
		restaurants: make([]Restaurant, 0, len(restaurants)),
		menus:       make(map[int][]MenuItem, len(menus)),
	}
	r.restaurants = append(r.restaurants, restaurants...)
	for id, items := range menus {
		r.menus[id] = append([]MenuItem(nil), items...)
	}
	return r
}

func (r *InMemoryRepository) List() []Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rest := range r.restaurants {
		if rest.ID == id {
			return rest, nil
		}
	}
	return Restaurant{}, ErrNotFound
}

func (r *InMemoryRepository) Menu(restaurantID int) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	menu, ok := r.menus[restaurantID]
	if !ok {
		return nil, ErrMenuNotFound
	}
	out := make([]MenuItem, len(menu))
	copy(out, menu)
	return out, nil
}
