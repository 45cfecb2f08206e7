package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Resolve extracts a bearer token when one is present and stores the
// resolved identity on the context. It never aborts: public routes run
// with no identity, and routes that need one gate with RequireAuth.
func Resolve(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if ident, err := m.ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(identityKey, ident)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when no identity was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if FromContext(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireVenueOwner aborts with 403 unless the caller is the venue named
// in the route or an admin.
func RequireVenueOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := FromContext(c)
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if ident.Role != RoleAdmin && ident.ID != c.Param("venueId") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			return
		}
		c.Next()
	}
}

// FromContext returns the resolved identity or nil.
func FromContext(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return ident
}
