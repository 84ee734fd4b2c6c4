package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/storefront/internal/errs"
	"github.com/matthieukhl/storefront/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errs.Validation("invalid request body"))
		return
	}

	user, err := s.session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errs.Validation("invalid request body"))
		return
	}

	user, err := s.session.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) logout(c *gin.Context) {
	if err := s.session.Logout(); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (s *Server) getProfile(c *gin.Context) {
	user, ok := s.session.Current()
	if !ok {
		s.writeError(c, errs.Authentication("not signed in"))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		s.writeError(c, errs.Validation("invalid request body"))
		return
	}

	if err := s.session.UpdateAddress(addr); err != nil {
		s.writeError(c, err)
		return
	}
	user, _ := s.session.Current()
	c.JSON(http.StatusOK, user)
}
