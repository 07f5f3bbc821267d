package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/session"
)

const (
	// SessionContextKey is the gin context key holding the loaded session.
	SessionContextKey = "storefrontSession"

	loginPath = "/login"
)

// WithSession loads the cookie session into the request context so that
// handlers receive it as an explicit value instead of re-reading cookies.
func WithSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionContextKey, store.Load(c))
		c.Next()
	}
}

// CurrentSession extracts a session placed by WithSession. Zero session when
// missing.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(SessionContextKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{}
}

// AuthRequired guards protected routes. The check runs on every request,
// never cached. Unauthenticated browser navigation is redirected to the login
// view with the attempted location preserved in the "from" parameter so a
// successful login can return there; explicit JSON clients get a 401 carrying
// the same information.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s.Authenticated() {
			c.Next()
			return
		}

		from := c.Request.URL.RequestURI()
		if wantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"from":  from,
			})
			return
		}
		c.Redirect(http.StatusFound, loginPath+"?from="+url.QueryEscape(from))
		c.Abort()
	}
}

// RoleRequired hides privileged actions from sessions lacking the role.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
