// Package checkout materializes orders. Placing an order snapshots the live
// cart into an immutable record, appends it to the persisted history and
// clears the cart. Reads of the history recover from corrupt stored data by
// logging and returning an empty list.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/matthieukhl/storefront/internal/auth"
	"github.com/matthieukhl/storefront/internal/cart"
	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/latency"
	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/pricing"
	"github.com/matthieukhl/storefront/internal/store"
)

// Materializer builds orders from the live cart and owns the order history.
type Materializer struct {
	cart    *cart.Cart
	session *auth.Session
	rule    pricing.Rule
	kv      store.KV
	delay   time.Duration
	logger  *zap.Logger
	now     func() time.Time
	randID  func() string
}

// NewMaterializer creates an order materializer
func NewMaterializer(c *cart.Cart, session *auth.Session, rule pricing.Rule, kv store.KV, delay time.Duration, logger *zap.Logger) *Materializer {
	return &Materializer{
		cart:    c,
		session: session,
		rule:    rule,
		kv:      kv,
		delay:   delay,
		logger:  logger,
		now:     time.Now,
		randID:  GenerateOrderID,
	}
}

// GenerateOrderID returns an order id in the ORD-NNNNNN format. Ids are
// random six-digit numbers; uniqueness is not checked.
func GenerateOrderID() string {
	return fmt.Sprintf("ORD-%06d", 100000+rand.Intn(900000))
}

// PlaceOrder validates, prices and persists a new order, then clears the
// cart. On any failure nothing is mutated: the cart keeps its lines and the
// persisted history is untouched. The call simulates processing latency and
// aborts early when ctx is cancelled.
func (m *Materializer) PlaceOrder(ctx context.Context, address models.Address, paymentMethod string) (*models.Order, error) {
	items := m.cart.Items()
	if len(items) == 0 {
		return nil, errs.Validation("cart is empty")
	}
	if err := validateAddress(&address); err != nil {
		return nil, err
	}
	user, ok := m.session.Current()
	if !ok {
		// The presentation layer redirects to login before reaching
		// checkout; this is the server-side backstop.
		return nil, errs.Authentication("sign in to place an order")
	}
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCreditCard
	}

	if err := latency.Simulate(ctx, m.delay); err != nil {
		return nil, err
	}

	// Price the snapshot, not the live cart: lines added during the
	// simulated latency belong to the next order, and the persisted
	// totals must agree with the persisted items.
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	quote := m.rule.Quote(subtotal)

	order := models.Order{
		ID:              m.randID(),
		UserID:          user.ID,
		Items:           items,
		Subtotal:        quote.Subtotal,
		Shipping:        quote.Shipping,
		Total:           quote.Total,
		Status:          models.OrderStatusPending,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		CreatedAt:       m.now(),
	}

	orders := m.loadOrders()
	orders = append(orders, order)
	if err := m.saveOrders(orders); err != nil {
		return nil, err
	}

	m.cart.Clear()
	m.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", order.UserID),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return &order, nil
}

// Orders returns the order history for the current user, newest last.
// Anonymous sessions see nothing.
func (m *Materializer) Orders() []models.Order {
	user, ok := m.session.Current()
	if !ok {
		return nil
	}

	var out []models.Order
	for _, o := range m.loadOrders() {
		if o.UserID == user.ID {
			out = append(out, o)
		}
	}
	return out
}

// OrderByID returns one of the current user's orders by id
func (m *Materializer) OrderByID(id string) (*models.Order, error) {
	for _, o := range m.Orders() {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, errs.NotFound("order %q not found", id)
}

// loadOrders reads the full persisted history. An absent key is an empty
// list; a corrupt value is logged and also read as empty.
func (m *Materializer) loadOrders() []models.Order {
	raw, ok, err := m.kv.Get(store.KeyOrders)
	if err != nil {
		m.logger.Warn("failed to read persisted orders", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		perr := errs.StorageParse("failed to parse persisted orders", err)
		m.logger.Warn("ignoring corrupt order history", zap.Error(perr))
		return nil
	}
	return orders
}

// saveOrders writes the full history back. Read-modify-write of the whole
// list is fine here: the store has a single writer.
func (m *Materializer) saveOrders(orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return m.kv.Set(store.KeyOrders, string(raw))
}

func validateAddress(addr *models.Address) error {
	switch {
	case addr.Street == "":
		return errs.Validation("street address is required")
	case addr.City == "":
		return errs.Validation("city is required")
	case addr.State == "":
		return errs.Validation("state is required")
	case addr.PostalCode == "":
		return errs.Validation("postal code is required")
	}
	if addr.Country == "" {
		addr.Country = models.DefaultCountry
	}
	return nil
}
