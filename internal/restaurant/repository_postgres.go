package restaurant

import (
	"database/sql"
)

// PostgresRepository is the alternative catalog source, selected when
// DATABASE_URL is set. It implements the same Repository interface as the
// in-memory store so nothing downstream depends on the backing source.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listRestaurantsQuery = `
		SELECT id, name, category, rating, delivery_time, delivery_fee, image, offer
		FROM restaurants
		ORDER BY id
	`
	getRestaurantByIDQuery = `
		SELECT id, name, category, rating, delivery_time, delivery_fee, image, offer
		FROM restaurants
		WHERE id = $1
	`
	listMenuItemsQuery = `
		SELECT id, name, price
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Restaurant {
	rows, err := r.db.Query(listRestaurantsQuery)
	if err != nil {
		return []Restaurant{}
	}
	defer rows.Close()

	out := make([]Restaurant, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			continue
		}
		out = append(out, rest)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Restaurant, error) {
	row := r.db.QueryRow(getRestaurantByIDQuery, id)
	rest, err := scanRestaurant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Restaurant{}, ErrNotFound
		}
		return Restaurant{}, err
	}
	return rest, nil
}

func (r *PostgresRepository) Menu(restaurantID int) ([]MenuItem, error) {
	rows, err := r.db.Query(listMenuItemsQuery, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MenuItem, 0)
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			continue
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil, ErrMenuNotFound
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (Restaurant, error) {
	var (
		rest  Restaurant
		image sql.NullString
		offer sql.NullString
	)
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Category, &rest.Rating, &rest.DeliveryTime, &rest.DeliveryFee, &image, &offer); err != nil {
		return Restaurant{}, err
	}
	if image.Valid {
		rest.Image = image.String
	}
	if offer.Valid {
		rest.Offer = offer.String
	}
	return rest, nil
}
