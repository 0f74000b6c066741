package cart

import "errors"

// ErrRestaurantConflict is reported when an item from a different restaurant
// is added to a non-empty cart. The cart is left unchanged.
var ErrRestaurantConflict = errors.New("cart accepts items from a single restaurant at a time")

// LineItem is one menu item plus quantity inside a cart. Price and Quantity
// decode permissively (see Number) so a malformed payload degrades to zero
// values instead of an error.
type LineItem struct {
	MenuItemID   int    `json:"id"`
	Name         string `json:"name"`
	Price        Number `json:"price"`
	Quantity     Number `json:"quantity"`
	RestaurantID int    `json:"restaurantId"`
}

// Cart holds one session's line items. All items belong to the same
// restaurant; Add enforces that. A Cart belongs to exactly one logical
// session, so it carries no locking.
type Cart struct {
	items []LineItem
}

// Add puts an item in the cart. Adding a menu item already present
// increments its quantity. Adding an item from a different restaurant than
// the current contents returns ErrRestaurantConflict and changes nothing.
func (c *Cart) Add(item LineItem) error {
	if len(c.items) > 0 && c.items[0].RestaurantID != item.RestaurantID {
		return ErrRestaurantConflict
	}

	for i := range c.items {
		if c.items[i].MenuItemID == item.MenuItemID {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// Remove drops the line item with the given menu item id, if present.
func (c *Cart) Remove(menuItemID int) {
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// RestaurantID returns the owning restaurant of the cart contents, or 0 for
// an empty cart.
func (c *Cart) RestaurantID() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.items[0].RestaurantID
}

func (c *Cart) Clear() {
	c.items = nil
}

// Quote prices the current contents. ok is false for an empty cart.
func (c *Cart) Quote() (Quote, bool) {
	return ComputeQuote(c.items)
}
