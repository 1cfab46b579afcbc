package handlers

import (
	"errors"
	"net/http"

	"github.com/ayatori/clientdesk/internal/middleware"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/gin-gonic/gin"

	apierrors "github.com/ayatori/clientdesk/internal/errors"
)

// NotificationHandler serves the notifications page, the mark-read action,
// and the badge-count polling endpoint.
type NotificationHandler struct {
	notifications *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
	}
}

// Notifications lists the current user's unread notifications, newest first.
func (h *NotificationHandler) Notifications(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	notifications, err := h.notifications.ListUnread(userID)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load notifications"})
		return
	}

	render(c, http.StatusOK, "notifications.html", gin.H{"Notifications": notifications})
}

// MarkNotificationAsRead sets read=true for one notification and returns to
// the notifications page. There is deliberately no ownership check.
func (h *NotificationHandler) MarkNotificationAsRead(c *gin.Context) {
	notificationID, ok := paramID(c, "notification_id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(notificationID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Notification not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to mark notification as read"})
		return
	}

	c.Redirect(http.StatusFound, "/notifications")
}

// UnreadCount is the JSON endpoint the badge poller hits.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	count, err := h.notifications.UnreadCount(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to count notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
