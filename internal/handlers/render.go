package handlers

import (
	"net/http"
	"strconv"

	"github.com/ayatori/clientdesk/internal/middleware"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render merges the ambient page data (current user, unread badge, flash
// messages) into every HTML response.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, exists := middleware.GetCurrentUser(c); exists {
		data["User"] = user
	}
	data["UnreadCount"] = middleware.GetUnreadCount(c)
	if _, ok := data["Flashes"]; !ok {
		data["Flashes"] = takeFlashes(c)
	}
	c.HTML(status, name, data)
}

// setFlash queues a one-shot message for the next rendered page.
func setFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// takeFlashes pops all queued flash messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save()

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// clientProfilePath builds the redirect target for a client's detail page.
func clientProfilePath(clientID uint64) string {
	return "/client/" + strconv.FormatUint(clientID, 10)
}

// paramID parses a numeric path parameter. A malformed value behaves like a
// missing record.
func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Not found"})
		return 0, false
	}
	return id, true
}
