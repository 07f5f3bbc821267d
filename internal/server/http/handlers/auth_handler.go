package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/server/http/dto"
	"github.com/ndavydov/storefront/internal/session"
)

// AuthHandler processes login, registration and logout.
type AuthHandler struct {
	facade AuthFacade
	store  *session.Store
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, store *session.Store) *AuthHandler {
	return &AuthHandler{facade: facade, store: store}
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	s, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.store.Save(c, s)
	c.JSON(http.StatusOK, gin.H{"roles": s.Roles})
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	if err := h.facade.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Logout handles POST /api/user/logout. Purely local: the stored token is
// dropped, the backend is not called.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c)
	c.Status(http.StatusOK)
}
