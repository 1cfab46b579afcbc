package middleware

import (
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/gin-gonic/gin"
)

// ContextKeyUnreadCount is where the badge count is stored for renders.
const ContextKeyUnreadCount = "unread_notification_count"

// InjectUnreadCount computes the session user's unread notification count so
// every rendered page can show the badge. Runs after RequireAuth.
func InjectUnreadCount(notifications *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, exists := GetUserID(c); exists {
			if count, err := notifications.UnreadCount(userID); err == nil {
				c.Set(ContextKeyUnreadCount, count)
			}
		}
		c.Next()
	}
}

// GetUnreadCount retrieves the badge count for the current request.
func GetUnreadCount(c *gin.Context) int64 {
	if value, exists := c.Get(ContextKeyUnreadCount); exists {
		if count, ok := value.(int64); ok {
			return count
		}
	}
	return 0
}
