// Package catalog provides the static in-memory product catalog. The catalog
// is read-only: every accessor returns copies, so callers can never mutate
// the underlying records.
package catalog

import (
	"strings"

	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/models"
)

// Catalog holds the product list in display order plus an id index.
type Catalog struct {
	products []models.Product
	byID     map[string]int
}

// New creates a catalog over the given products. Later duplicates of a
// product id shadow earlier ones in the index.
func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// NewDemo creates a catalog seeded with the demo product set
func NewDemo() *Catalog {
	return New(demoProducts())
}

// Products returns all products in display order
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a single product by id
func (c *Catalog) ByID(id string) (*models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, errs.NotFound("product %q not found", id)
	}
	p := c.products[i]
	return &p, nil
}

// ByCategory returns all products with the given category label
func (c *Catalog) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name or description contains the query,
// case-insensitively.
func (c *Catalog) Search(query string) []models.Product {
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
