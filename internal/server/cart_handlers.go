package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/storefront/internal/errs"
)

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// getCart returns the cart lines plus the priced quote and badge count
func (s *Server) getCart(c *gin.Context) {
	quote := s.rule.Quote(s.cart.Total())
	c.JSON(http.StatusOK, gin.H{
		"items":      s.cart.Items(),
		"item_count": s.cart.ItemCount(),
		"subtotal":   quote.Subtotal,
		"shipping":   quote.Shipping,
		"total":      quote.Total,
	})
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errs.Validation("invalid request body"))
		return
	}

	product, err := s.catalog.ByID(req.ProductID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	// The cart itself does not clamp to inventory; reject obviously bad
	// requests at the edge instead.
	if req.Quantity > product.Inventory {
		s.writeError(c, errs.Validation("only %d of %q in stock", product.Inventory, product.Name))
		return
	}

	if err := s.cart.AddItem(*product, req.Quantity); err != nil {
		s.writeError(c, err)
		return
	}
	s.getCart(c)
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errs.Validation("invalid request body"))
		return
	}

	s.cart.UpdateQuantity(c.Param("id"), req.Quantity)
	s.getCart(c)
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.cart.RemoveItem(c.Param("id"))
	s.getCart(c)
}

func (s *Server) clearCart(c *gin.Context) {
	s.cart.Clear()
	s.getCart(c)
}
