package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/matthieukhl/storefront/internal/models"
)

// demoProducts returns the demo catalog used when no external product source
// is wired in.
func demoProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Wireless Bluetooth Headphones",
			Description: "Premium noise-cancelling wireless headphones with 20 hours of battery life.",
			Price:       decimal.RequireFromString("199.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryElectronics,
			Inventory:   50,
		},
		{
			ID:          "2",
			Name:        "Smart Fitness Watch",
			Description: "Track your fitness goals with this waterproof smartwatch featuring heart rate monitoring.",
			Price:       decimal.RequireFromString("149.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryElectronics,
			Inventory:   35,
		},
		{
			ID:          "3",
			Name:        "Organic Cotton T-shirt",
			Description: "Comfortable and sustainable cotton t-shirt, perfect for everyday wear.",
			Price:       decimal.RequireFromString("24.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryClothing,
			Inventory:   100,
		},
		{
			ID:          "4",
			Name:        "Professional Chef's Knife",
			Description: "High-carbon stainless steel chef's knife for precise cutting and chopping.",
			Price:       decimal.RequireFromString("79.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryKitchen,
			Inventory:   20,
		},
		{
			ID:          "5",
			Name:        "Ergonomic Office Chair",
			Description: "Adjustable office chair with lumbar support for comfortable all-day sitting.",
			Price:       decimal.RequireFromString("249.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryFurniture,
			Inventory:   15,
		},
		{
			ID:          "6",
			Name:        "Portable Bluetooth Speaker",
			Description: "Waterproof speaker with 360° sound and 12-hour battery life.",
			Price:       decimal.RequireFromString("89.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryElectronics,
			Inventory:   40,
		},
		{
			ID:          "7",
			Name:        "Digital Drawing Tablet",
			Description: "Pressure-sensitive drawing tablet for digital artists and designers.",
			Price:       decimal.RequireFromString("199.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryElectronics,
			Inventory:   25,
		},
		{
			ID:          "8",
			Name:        "Stainless Steel Water Bottle",
			Description: "Double-walled insulated bottle keeps drinks cold for 24 hours or hot for 12 hours.",
			Price:       decimal.RequireFromString("34.99"),
			ImageURL:    "/placeholder.svg",
			Category:    models.CategoryAccessories,
			Inventory:   75,
		},
	}
}
