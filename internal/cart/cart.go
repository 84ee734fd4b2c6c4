// Package cart implements the live shopping cart state manager. The cart is
// memory-only: it is created empty on startup, mutated by the presentation
// layer and cleared when an order is placed. It is deliberately a pure state
// container — policy such as clamping a quantity to available inventory lives
// with the caller.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/models"
)

// Cart owns the set of line items the shopper intends to purchase. Lines keep
// insertion order for display; mutation is keyed by product id. At most one
// line exists per product id.
type Cart struct {
	mu          sync.Mutex
	items       []models.CartItem
	index       map[string]int // product id -> position in items
	subscribers map[int]func()
	nextSubID   int
}

// New creates an empty cart
func New() *Cart {
	return &Cart{
		index:       make(map[string]int),
		subscribers: make(map[int]func()),
	}
}

// AddItem adds quantity units of product to the cart. If a line for the
// product already exists its quantity is incremented, otherwise a new line is
// appended. Quantity must be at least 1.
func (c *Cart) AddItem(product models.Product, quantity int) error {
	if quantity < 1 {
		return errs.Validation("quantity must be at least 1, got %d", quantity)
	}

	c.mu.Lock()
	if i, ok := c.index[product.ID]; ok {
		c.items[i].Quantity += quantity
	} else {
		c.index[product.ID] = len(c.items)
		c.items = append(c.items, models.CartItem{Product: product, Quantity: quantity})
	}
	c.mu.Unlock()

	c.notify()
	return nil
}

// UpdateQuantity sets the quantity of the line for productID. A quantity of
// zero or less removes the line, same as RemoveItem. The quantity is set
// unconditionally: the cart does not clamp to available inventory. Unknown
// product ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	i, ok := c.index[productID]
	if ok {
		c.items[i].Quantity = quantity
	}
	c.mu.Unlock()

	if ok {
		c.notify()
	}
}

// RemoveItem deletes the line for productID. Removing an absent line is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	i, ok := c.index[productID]
	if ok {
		c.items = append(c.items[:i], c.items[i+1:]...)
		delete(c.index, productID)
		for j := i; j < len(c.items); j++ {
			c.index[c.items[j].Product.ID] = j
		}
	}
	c.mu.Unlock()

	if ok {
		c.notify()
	}
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.index = make(map[string]int)
	c.mu.Unlock()

	c.notify()
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines in the cart
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total returns the sum over all lines of unit price times quantity.
// Computed on read, never cached.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ItemCount returns the sum of quantities across all lines, used for the
// cart badge. Note this is not the line count.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subscribe registers fn to run after every successful mutation. The returned
// function removes the subscription. Callbacks run synchronously on the
// mutating goroutine, after the cart has settled.
func (c *Cart) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Cart) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
