package handlers

import (
	"net/http"

	"github.com/ayatori/clientdesk/internal/middleware"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the index redirect and the two dashboards.
type DashboardHandler struct {
	dashboards *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboards *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
	}
}

// Index routes managers to their dashboard and workers to theirs.
func (h *DashboardHandler) Index(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	if user.IsManager {
		c.Redirect(http.StatusFound, "/manager_dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/worker_dashboard")
}

// ManagerDashboard shows the global client and task counts. Recomputed every
// request.
func (h *DashboardHandler) ManagerDashboard(c *gin.Context) {
	overview, err := h.dashboards.ManagerOverview()
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load dashboard"})
		return
	}

	render(c, http.StatusOK, "manager_dashboard.html", gin.H{
		"ActiveClients":   overview.ActiveClients,
		"AssignedTasks":   overview.AssignedTasks,
		"InProgressTasks": overview.InProgressTasks,
		"CompletedTasks":  overview.CompletedTasks,
	})
}

// WorkerDashboard shows the current worker's counts and completion average.
func (h *DashboardHandler) WorkerDashboard(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	overview, err := h.dashboards.WorkerOverview(userID)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load dashboard"})
		return
	}

	render(c, http.StatusOK, "worker_dashboard.html", gin.H{
		"PendingTasks":          overview.PendingTasks,
		"InProgressTasks":       overview.InProgressTasks,
		"CompletedTasks":        overview.CompletedTasks,
		"AverageCompletionTime": overview.AverageCompletionTime,
	})
}
