package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listProducts returns the catalog, optionally filtered by ?category= or
// searched with ?q=. Search wins when both are present.
func (s *Server) listProducts(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, gin.H{"products": s.catalog.Search(q)})
		return
	}
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"products": s.catalog.ByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": s.catalog.Products()})
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.ByID(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.Categories()})
}
