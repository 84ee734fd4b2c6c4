package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matthieukhl/storefront/internal/auth"
	"github.com/matthieukhl/storefront/internal/cart"
	"github.com/matthieukhl/storefront/internal/catalog"
	"github.com/matthieukhl/storefront/internal/checkout"
	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/pricing"
)

// HealthChecker reports whether the persistent store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

type Server struct {
	router       *gin.Engine
	catalog      *catalog.Catalog
	cart         *cart.Cart
	session      *auth.Session
	materializer *checkout.Materializer
	rule         pricing.Rule
	health       HealthChecker
	logger       *zap.Logger
}

// NewServer creates a new server instance
func NewServer(cat *catalog.Catalog, c *cart.Cart, session *auth.Session, mat *checkout.Materializer, rule pricing.Rule, health HealthChecker, logger *zap.Logger) *Server {
	router := gin.Default()

	server := &Server{
		router:       router,
		catalog:      cat,
		cart:         c,
		session:      session,
		materializer: mat,
		rule:         rule,
		health:       health,
		logger:       logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/categories", s.listCategories)

		api.GET("/cart", s.getCart)
		api.POST("/cart/items", s.addCartItem)
		api.PUT("/cart/items/:id", s.updateCartItem)
		api.DELETE("/cart/items/:id", s.removeCartItem)
		api.DELETE("/cart", s.clearCart)

		api.POST("/auth/login", s.login)
		api.POST("/auth/register", s.register)
		api.POST("/auth/logout", s.logout)
		api.GET("/profile", s.getProfile)
		api.PUT("/profile/address", s.updateAddress)

		api.POST("/checkout", s.placeOrder)
		api.GET("/orders", s.listOrders)
		api.GET("/orders/:id", s.getOrder)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check store health
	if err := s.health.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "store connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "storefront",
		"version": "0.1.0",
	})
}

// writeError maps the error taxonomy onto HTTP status codes
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errs.CodeOf(err) {
	case errs.CodeValidation:
		status = http.StatusBadRequest
	case errs.CodeAuthentication:
		status = http.StatusUnauthorized
	case errs.CodeNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// ServeHTTP implements http.Handler by delegating to the router
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
