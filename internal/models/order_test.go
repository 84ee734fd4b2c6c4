package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/matthieukhl/storefront/internal/models"
)

func TestDisplayStatus(t *testing.T) {
	assert.Equal(t, models.OrderStatusProcessing, models.Order{}.DisplayStatus())
	assert.Equal(t, models.OrderStatusShipped, models.Order{Status: models.OrderStatusShipped}.DisplayStatus())
}

func TestLineTotal(t *testing.T) {
	item := models.CartItem{
		Product:  models.Product{ID: "1", Price: decimal.RequireFromString("24.99")},
		Quantity: 3,
	}
	assert.Equal(t, "74.97", item.LineTotal().StringFixed(2))
}
