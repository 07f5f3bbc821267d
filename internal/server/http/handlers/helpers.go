package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/adapter/backend"
	"github.com/ndavydov/storefront/internal/adapter/oss"
	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
	"github.com/ndavydov/storefront/internal/server/http/middleware"
)

// currentToken returns the bearer token of the session loaded by middleware.
func currentToken(c *gin.Context) string {
	return middleware.CurrentSession(c).Token
}

// respondError converts an error into the user-facing JSON notification at
// the action boundary. Nothing propagates past here; clients decide whether
// to retry by repeating the action.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, domainErrors.ErrRegistrationRejected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "registration rejected"})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domainErrors.ErrPaymentTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "order payment is already settled"})
	case errors.Is(err, domainErrors.ErrPolicyRequest):
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not obtain upload permission"})
	case errors.Is(err, domainErrors.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	default:
		var uploadErr *oss.UploadError
		var statusErr *backend.StatusError
		var netErr *backend.NetworkError
		switch {
		case errors.As(err, &uploadErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "file upload failed"})
		case errors.As(err, &statusErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "backend rejected the request"})
		case errors.As(err, &netErr):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend unreachable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
	}
}
