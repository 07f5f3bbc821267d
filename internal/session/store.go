package session

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	cookiePrefix = "storefront_"

	// TokenCookie stores the opaque bearer token.
	TokenCookie = cookiePrefix + "token"
	// RolesCookie stores the comma-joined role list.
	RolesCookie = cookiePrefix + "roles"
)

// Store reads and writes the Session through browser cookies. Cookies are the
// client-local storage of this system: they survive page reloads and are the
// only state the gateway keeps about a visitor. No expiry is set; the backend
// decides when a token stops being valid.
type Store struct {
	secure bool
}

// NewStore creates a cookie-backed session store.
func NewStore(secure bool) *Store {
	return &Store{secure: secure}
}

// Load reconstructs the Session from request cookies. Absent or malformed
// cookies yield a zero Session.
func (st *Store) Load(c *gin.Context) Session {
	var s Session
	if token, err := c.Cookie(TokenCookie); err == nil {
		s.Token = token
	}
	if raw, err := c.Cookie(RolesCookie); err == nil && raw != "" {
		for _, role := range strings.Split(raw, ",") {
			if role = strings.TrimSpace(role); role != "" {
				s.Roles = append(s.Roles, role)
			}
		}
	}
	return s
}

// Save writes the Session to response cookies, replacing previous values.
func (st *Store) Save(c *gin.Context, s Session) {
	c.SetCookie(TokenCookie, s.Token, 0, "/", "", st.secure, true)
	c.SetCookie(RolesCookie, strings.Join(s.Roles, ","), 0, "/", "", st.secure, true)
}

// Clear drops both cookies. Logout is purely local; the backend keeps no
// session to invalidate.
func (st *Store) Clear(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", st.secure, true)
	c.SetCookie(RolesCookie, "", -1, "/", "", st.secure, true)
}
