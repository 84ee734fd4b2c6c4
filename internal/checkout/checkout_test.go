package checkout_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matthieukhl/storefront/internal/auth"
	"github.com/matthieukhl/storefront/internal/cart"
	"github.com/matthieukhl/storefront/internal/checkout"
	"github.com/matthieukhl/storefront/internal/config"
	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/models"
	"github.com/matthieukhl/storefront/internal/pricing"
	"github.com/matthieukhl/storefront/internal/store"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(key string) error {
	delete(f.data, key)
	return nil
}

func product(id, name, price string) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Inventory: 50,
	}
}

func validAddress() models.Address {
	return models.Address{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
	}
}

// setup builds a materializer over a fake store with a signed-in demo user.
func setup(t *testing.T) (*checkout.Materializer, *cart.Cart, *fakeKV) {
	t.Helper()

	kv := newFakeKV()
	session := auth.NewSession(kv, &config.AuthConfig{}, 0, zap.NewNop())
	_, err := session.Login(context.Background(), "demo@example.com", "password123")
	require.NoError(t, err)

	c := cart.New()
	m := checkout.NewMaterializer(c, session, pricing.DefaultRule(), kv, 0, zap.NewNop())
	return m, c, kv
}

func storedOrders(t *testing.T, kv *fakeKV) []models.Order {
	t.Helper()

	raw, ok, err := kv.Get(store.KeyOrders)
	require.NoError(t, err)
	if !ok {
		return nil
	}
	var orders []models.Order
	require.NoError(t, json.Unmarshal([]byte(raw), &orders))
	return orders
}

func TestPlaceOrder(t *testing.T) {
	t.Run("success snapshots the cart and clears it", func(t *testing.T) {
		m, c, kv := setup(t)
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))
		require.NoError(t, c.AddItem(product("3", "T-shirt", "24.99"), 2))

		order, err := m.PlaceOrder(context.Background(), validAddress(), models.PaymentMethodPayPal)
		require.NoError(t, err)

		// Above the free-shipping threshold: grand total equals the subtotal.
		assert.Equal(t, "249.97", order.Subtotal.StringFixed(2))
		assert.Equal(t, "0.00", order.Shipping.StringFixed(2))
		assert.Equal(t, "249.97", order.Total.StringFixed(2))
		assert.Equal(t, models.PaymentMethodPayPal, order.PaymentMethod)
		assert.Equal(t, models.DefaultCountry, order.ShippingAddress.Country)
		assert.Len(t, order.Items, 2)

		assert.Equal(t, 0, c.Len())

		orders := storedOrders(t, kv)
		require.Len(t, orders, 1)
		assert.Equal(t, order.ID, orders[0].ID)
		assert.Equal(t, "249.97", orders[0].Total.StringFixed(2))
	})

	t.Run("small order pays the flat shipping fee", func(t *testing.T) {
		m, c, _ := setup(t)
		require.NoError(t, c.AddItem(product("3", "T-shirt", "24.99"), 1))

		order, err := m.PlaceOrder(context.Background(), validAddress(), "")
		require.NoError(t, err)

		assert.Equal(t, "24.99", order.Subtotal.StringFixed(2))
		assert.Equal(t, "10.00", order.Shipping.StringFixed(2))
		assert.Equal(t, "34.99", order.Total.StringFixed(2))
		assert.Equal(t, models.PaymentMethodCreditCard, order.PaymentMethod)
	})

	t.Run("order id format", func(t *testing.T) {
		m, c, _ := setup(t)
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))

		order, err := m.PlaceOrder(context.Background(), validAddress(), "")
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^ORD-\d{6}$`), order.ID)
	})

	t.Run("empty cart is a validation error", func(t *testing.T) {
		m, _, kv := setup(t)

		_, err := m.PlaceOrder(context.Background(), validAddress(), "")
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Empty(t, storedOrders(t, kv))
	})

	t.Run("incomplete address mutates nothing", func(t *testing.T) {
		m, c, kv := setup(t)
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))

		for _, addr := range []models.Address{
			{City: "Springfield", State: "IL", PostalCode: "62701"},
			{Street: "1 Main St", State: "IL", PostalCode: "62701"},
			{Street: "1 Main St", City: "Springfield", PostalCode: "62701"},
			{Street: "1 Main St", City: "Springfield", State: "IL"},
		} {
			_, err := m.PlaceOrder(context.Background(), addr, "")
			assert.ErrorIs(t, err, errs.ErrValidation)
		}

		assert.Equal(t, 1, c.Len())
		assert.Empty(t, storedOrders(t, kv))
	})

	t.Run("anonymous session is refused", func(t *testing.T) {
		kv := newFakeKV()
		session := auth.NewSession(kv, &config.AuthConfig{}, 0, zap.NewNop())
		c := cart.New()
		m := checkout.NewMaterializer(c, session, pricing.DefaultRule(), kv, 0, zap.NewNop())
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))

		_, err := m.PlaceOrder(context.Background(), validAddress(), "")
		assert.ErrorIs(t, err, errs.ErrAuthentication)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("cancelled context mutates nothing", func(t *testing.T) {
		kv := newFakeKV()
		session := auth.NewSession(kv, &config.AuthConfig{}, 0, zap.NewNop())
		_, err := session.Login(context.Background(), "demo@example.com", "password123")
		require.NoError(t, err)

		c := cart.New()
		m := checkout.NewMaterializer(c, session, pricing.DefaultRule(), kv, 50*time.Millisecond, zap.NewNop())
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = m.PlaceOrder(ctx, validAddress(), "")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, c.Len())
		assert.Empty(t, storedOrders(t, kv))
	})

	t.Run("totals agree with the snapshot when the cart changes mid-flight", func(t *testing.T) {
		kv := newFakeKV()
		session := auth.NewSession(kv, &config.AuthConfig{}, 0, zap.NewNop())
		_, err := session.Login(context.Background(), "demo@example.com", "password123")
		require.NoError(t, err)

		c := cart.New()
		m := checkout.NewMaterializer(c, session, pricing.DefaultRule(), kv, 100*time.Millisecond, zap.NewNop())
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))

		// Another request lands mid-way through the simulated round-trip.
		added := make(chan struct{})
		go func() {
			defer close(added)
			time.Sleep(30 * time.Millisecond)
			_ = c.AddItem(product("3", "T-shirt", "24.99"), 2)
		}()

		order, err := m.PlaceOrder(context.Background(), validAddress(), "")
		<-added
		require.NoError(t, err)

		// Whatever lines made it into the snapshot, the persisted totals
		// must be computed from exactly those lines.
		sum := decimal.Zero
		for _, item := range order.Items {
			sum = sum.Add(item.LineTotal())
		}
		assert.True(t, order.Subtotal.Equal(sum),
			"subtotal %s does not match sum of items %s", order.Subtotal, sum)
		assert.True(t, order.Total.Equal(order.Subtotal.Add(order.Shipping)))

		orders := storedOrders(t, kv)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].Subtotal.Equal(sum))
	})

	t.Run("history accumulates across orders", func(t *testing.T) {
		m, c, kv := setup(t)

		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))
		first, err := m.PlaceOrder(context.Background(), validAddress(), "")
		require.NoError(t, err)

		require.NoError(t, c.AddItem(product("3", "T-shirt", "24.99"), 1))
		second, err := m.PlaceOrder(context.Background(), validAddress(), "")
		require.NoError(t, err)

		orders := storedOrders(t, kv)
		require.Len(t, orders, 2)
		assert.Equal(t, first.ID, orders[0].ID)
		assert.Equal(t, second.ID, orders[1].ID)
	})
}

func TestOrders(t *testing.T) {
	t.Run("scoped to the current user", func(t *testing.T) {
		m, c, kv := setup(t)
		require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))
		_, err := m.PlaceOrder(context.Background(), validAddress(), "")
		require.NoError(t, err)

		// An order placed by someone else is invisible here.
		others := append(storedOrders(t, kv), models.Order{ID: "ORD-000001", UserID: "someone-else"})
		raw, err := json.Marshal(others)
		require.NoError(t, err)
		require.NoError(t, kv.Set(store.KeyOrders, string(raw)))

		orders := m.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, "user1", orders[0].UserID)
	})

	t.Run("corrupt history reads as empty", func(t *testing.T) {
		m, _, kv := setup(t)
		require.NoError(t, kv.Set(store.KeyOrders, "[[[nope"))
		assert.Empty(t, m.Orders())
	})
}

func TestOrderByID(t *testing.T) {
	m, c, _ := setup(t)
	require.NoError(t, c.AddItem(product("1", "Headphones", "199.99"), 1))
	placed, err := m.PlaceOrder(context.Background(), validAddress(), "")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		order, err := m.OrderByID(placed.ID)
		require.NoError(t, err)
		assert.Equal(t, placed.Total.StringFixed(2), order.Total.StringFixed(2))
	})

	t.Run("unknown id", func(t *testing.T) {
		// Generated ids never start below 100000, so this cannot collide.
		_, err := m.OrderByID("ORD-000000")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestGenerateOrderID(t *testing.T) {
	// Collisions are possible and not checked; only the format is guaranteed.
	pattern := regexp.MustCompile(`^ORD-\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, checkout.GenerateOrderID())
	}
}
