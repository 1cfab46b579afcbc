package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ayatori/clientdesk/internal/export"
	"github.com/ayatori/clientdesk/internal/repository"
	"github.com/gin-gonic/gin"
)

// ExportHandler serves the CSV download endpoints. Each export materializes
// the full result set before responding.
type ExportHandler struct {
	clientRepo repository.ClientRepository
	taskRepo   repository.TaskRepository
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(clientRepo repository.ClientRepository, taskRepo repository.TaskRepository) *ExportHandler {
	return &ExportHandler{
		clientRepo: clientRepo,
		taskRepo:   taskRepo,
	}
}

// sendCSV writes the buffered CSV as a downloadable attachment.
func sendCSV(c *gin.Context, filename string, body *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", body.Bytes())
}

// DownloadClients exports every client.
func (h *ExportHandler) DownloadClients(c *gin.Context) {
	clients, err := h.clientRepo.ListAll()
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export clients"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteClients(&buf, clients); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export clients"})
		return
	}
	sendCSV(c, export.ClientsFilename, &buf)
}

// DownloadTasks exports every task.
func (h *ExportHandler) DownloadTasks(c *gin.Context) {
	tasks, err := h.taskRepo.List(repository.TaskFilter{})
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export tasks"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTasks(&buf, tasks); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export tasks"})
		return
	}
	sendCSV(c, export.TasksFilename, &buf)
}

// DownloadOnboardingTasks exports one client's onboarding tasks.
func (h *ExportHandler) DownloadOnboardingTasks(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	tasks, err := h.clientRepo.ListOnboardingTasks(clientID)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export onboarding tasks"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteOnboardingTasks(&buf, tasks); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export onboarding tasks"})
		return
	}
	sendCSV(c, export.OnboardingTasksFilename, &buf)
}

// DownloadContentIdeas exports one client's content ideas.
func (h *ExportHandler) DownloadContentIdeas(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	ideas, err := h.clientRepo.ListContentIdeas(clientID)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export content ideas"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteContentIdeas(&buf, ideas); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export content ideas"})
		return
	}
	sendCSV(c, export.ContentIdeasFilename, &buf)
}

// DownloadMetrics exports one client's metrics.
func (h *ExportHandler) DownloadMetrics(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	metrics, err := h.clientRepo.ListMetrics(clientID)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export metrics"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMetrics(&buf, metrics); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to export metrics"})
		return
	}
	sendCSV(c, export.MetricsFilename, &buf)
}
