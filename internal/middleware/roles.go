package middleware

import (
	"net/http"

	"internhub/internal/domain"

	"github.com/gin-gonic/gin"
)

func contextRole(c *gin.Context) string {
	v, _ := c.Get("role")
	r, _ := v.(string)
	return r
}

func contextStatus(c *gin.Context) string {
	v, _ := c.Get("status")
	s, _ := v.(string)
	return s
}

// StudentRequired passes students and admins.
func StudentRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch contextRole(c) {
		case domain.RoleStudent, domain.RoleAdmin:
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "student access required"})
		}
	}
}

// OrganisationRequired passes verified organisations and admins. Unverified
// organisations are rejected until an admin approves the account.
func OrganisationRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := contextRole(c)
		if role == domain.RoleAdmin {
			c.Next()
			return
		}
		if role == domain.RoleOrganisation && contextStatus(c) == domain.UserStatusVerified {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "verified organisation access required"})
	}
}

// AdminRequired passes admins only.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if contextRole(c) != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
