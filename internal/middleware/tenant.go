package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobsight/backend/internal/models"
	"gorm.io/gorm"
)

// TenantMiddleware resolves the authenticated user's business membership and
// stores the tenant scope in the gin context. Requests from users without a
// membership never reach a handler, so handlers can assume "business_id" is
// always set.
func TenantMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		var member models.BusinessMember
		if err := db.Where("user_id = ?", userID).First(&member).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "No business associated with this account",
			})
			c.Abort()
			return
		}

		c.Set("business_id", member.BusinessID)
		c.Set("member_role", string(member.Role))

		c.Next()
	}
}

// BusinessID returns the tenant scope set by TenantMiddleware.
func BusinessID(c *gin.Context) uint {
	if v, exists := c.Get("business_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
