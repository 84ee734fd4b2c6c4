package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for purchase
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Inventory   int             `json:"inventory"`
}

// CartItem pairs a product with the quantity the shopper wants
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns unit price times quantity for this line
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Product categories
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryKitchen     = "kitchen"
	CategoryFurniture   = "furniture"
	CategoryAccessories = "accessories"
)
