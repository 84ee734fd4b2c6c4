package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/models"
)

type checkoutRequest struct {
	Address       models.Address `json:"address"`
	PaymentMethod string         `json:"payment_method"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errs.Validation("invalid request body"))
		return
	}

	order, err := s.materializer.PlaceOrder(c.Request.Context(), req.Address, req.PaymentMethod)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	if _, ok := s.session.Current(); !ok {
		s.writeError(c, errs.Authentication("not signed in"))
		return
	}
	orders := s.materializer.Orders()
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) getOrder(c *gin.Context) {
	if _, ok := s.session.Current(); !ok {
		s.writeError(c, errs.Authentication("not signed in"))
		return
	}
	order, err := s.materializer.OrderByID(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":  order,
		"status": order.DisplayStatus(),
	})
}
