package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk/backend/internal/models"
)

// RequireStaff gates a route to worker and admin profiles.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := CurrentProfile(c)
		if !ok || !profile.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Staff access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route to admin profiles.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := CurrentProfile(c)
		if !ok || profile.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
