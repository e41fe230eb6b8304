package middleware

import (
	"net/http"
	"strconv"

	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal resolves the trusted user-id header against the directory and
// optionally enforces allowed roles. Authentication happens upstream; this
// only answers who the caller is and what they may do.
func Principal(directory repository.DirectoryRepository, allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("user-id")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user-id header required"})
			return
		}

		id, err := strconv.ParseUint(header, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user-id header"})
			return
		}

		principal, err := directory.FindPrincipal(uint(id))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown principal"})
			return
		}

		if len(allowedRoles) > 0 {
			roleAllowed := false
			for _, role := range allowedRoles {
				if role == principal.Role {
					roleAllowed = true
					break
				}
			}
			if !roleAllowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal set by the middleware.
func GetPrincipal(c *gin.Context) *models.Principal {
	return c.MustGet(principalKey).(*models.Principal)
}
