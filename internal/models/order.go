package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart at the moment it was placed
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Items           []CartItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status,omitempty"`
	ShippingAddress Address         `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// DisplayStatus returns the status to show for this order. Orders written
// before status tracking existed have no status and read as processing.
func (o Order) DisplayStatus() string {
	if o.Status == "" {
		return OrderStatusProcessing
	}
	return o.Status
}

// Payment method labels offered at checkout
const (
	PaymentMethodCreditCard = "credit-card"
	PaymentMethodPayPal     = "paypal"
)
