package handlers

import (
	"errors"
	"net/http"

	"github.com/ayatori/clientdesk/internal/middleware"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client pages and the add-record forms.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// ListClients shows every client to managers and owned clients to workers.
func (h *ClientHandler) ListClients(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	clients, err := h.clientService.ListClients(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load clients"})
		return
	}

	render(c, http.StatusOK, "clients.html", gin.H{"Clients": clients})
}

// ClientProfile shows one client with its attached records.
func (h *ClientHandler) ClientProfile(c *gin.Context) {
	clientID, ok := paramID(c, "id")
	if !ok {
		return
	}

	profile, err := h.clientService.GetClientProfile(clientID)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Client not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load client"})
		return
	}

	render(c, http.StatusOK, "client_profile.html", gin.H{
		"Client":          profile.Client,
		"Tasks":           profile.Tasks,
		"OnboardingTasks": profile.OnboardingTasks,
		"ContentIdeas":    profile.ContentIdeas,
		"Metrics":         profile.Metrics,
	})
}

// AddClientPage renders the new-client form.
func (h *ClientHandler) AddClientPage(c *gin.Context) {
	render(c, http.StatusOK, "add_client.html", nil)
}

// AddClient persists a client and fans a notification out to every manager.
func (h *ClientHandler) AddClient(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	type ClientForm struct {
		Name               string `form:"name" binding:"required"`
		ContactNumber      string `form:"contact_number" binding:"required"`
		BusinessCategory   string `form:"business_category" binding:"required"`
		SocialMediaHandles string `form:"social_media_handles" binding:"required"`
		Goals              string `form:"goals" binding:"required"`
		SpecificRequests   string `form:"specific_requests" binding:"required"`
	}

	var form ClientForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "add_client.html", gin.H{
			"Error": "All fields are required",
			"Form":  form,
		})
		return
	}

	_, err := h.clientService.CreateClient(services.CreateClientInput{
		OwnerID:            user.ID,
		Name:               form.Name,
		ContactNumber:      form.ContactNumber,
		BusinessCategory:   form.BusinessCategory,
		SocialMediaHandles: form.SocialMediaHandles,
		Goals:              form.Goals,
		SpecificRequests:   form.SpecificRequests,
	}, user.Name)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to add client"})
		return
	}

	setFlash(c, "Client added successfully!")
	c.Redirect(http.StatusFound, "/clients")
}

// AddOnboardingTaskPage renders the onboarding-task form for a client.
func (h *ClientHandler) AddOnboardingTaskPage(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	render(c, http.StatusOK, "add_onboarding_task.html", gin.H{"ClientID": clientID})
}

// AddOnboardingTask attaches an onboarding task to a client.
func (h *ClientHandler) AddOnboardingTask(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	type OnboardingTaskForm struct {
		TaskName    string `form:"task_name" binding:"required"`
		Responsible string `form:"responsible" binding:"required"`
		Deadline    string `form:"deadline" binding:"required"`
	}

	var form OnboardingTaskForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "add_onboarding_task.html", gin.H{
			"Error":    "All fields are required",
			"ClientID": clientID,
		})
		return
	}

	_, err := h.clientService.AddOnboardingTask(clientID, services.AddOnboardingTaskInput{
		TaskName:    form.TaskName,
		Responsible: form.Responsible,
		Deadline:    form.Deadline,
	})
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Client not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to add onboarding task"})
		return
	}

	setFlash(c, "Onboarding task added successfully!")
	c.Redirect(http.StatusFound, clientProfilePath(clientID))
}

// AddContentIdeaPage renders the content-idea form for a client.
func (h *ClientHandler) AddContentIdeaPage(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	render(c, http.StatusOK, "add_content_idea.html", gin.H{"ClientID": clientID})
}

// AddContentIdea attaches a content idea to a client.
func (h *ClientHandler) AddContentIdea(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	type ContentIdeaForm struct {
		IdeaSource  string `form:"idea_source" binding:"required"`
		Description string `form:"description" binding:"required"`
		Link        string `form:"link" binding:"required"`
		Sound       string `form:"sound" binding:"required"`
		Status      string `form:"status" binding:"required"`
	}

	var form ContentIdeaForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "add_content_idea.html", gin.H{
			"Error":    "All fields are required",
			"ClientID": clientID,
		})
		return
	}

	_, err := h.clientService.AddContentIdea(clientID, services.AddContentIdeaInput{
		IdeaSource:  form.IdeaSource,
		Description: form.Description,
		Link:        form.Link,
		Sound:       form.Sound,
		Status:      form.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Client not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to add content idea"})
		return
	}

	setFlash(c, "Content idea added successfully!")
	c.Redirect(http.StatusFound, clientProfilePath(clientID))
}

// AddMetricPage renders the metric form for a client.
func (h *ClientHandler) AddMetricPage(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	render(c, http.StatusOK, "add_metric.html", gin.H{"ClientID": clientID})
}

// AddMetric attaches a performance metric to a client.
func (h *ClientHandler) AddMetric(c *gin.Context) {
	clientID, ok := paramID(c, "client_id")
	if !ok {
		return
	}

	// Counts may legitimately be zero, so only the text fields are required.
	type MetricForm struct {
		Platform string `form:"platform" binding:"required"`
		PostDate string `form:"post_date" binding:"required"`
		Views    int    `form:"views"`
		Likes    int    `form:"likes"`
		Comments int    `form:"comments"`
		Shares   int    `form:"shares"`
	}

	var form MetricForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "add_metric.html", gin.H{
			"Error":    "All fields are required and counts must be numbers",
			"ClientID": clientID,
		})
		return
	}

	_, err := h.clientService.AddMetric(clientID, services.AddMetricInput{
		Platform: form.Platform,
		PostDate: form.PostDate,
		Views:    form.Views,
		Likes:    form.Likes,
		Comments: form.Comments,
		Shares:   form.Shares,
	})
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Client not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to add metric"})
		return
	}

	setFlash(c, "Metric added successfully!")
	c.Redirect(http.StatusFound, clientProfilePath(clientID))
}

// FormsPage renders the index of add-record forms.
func (h *ClientHandler) FormsPage(c *gin.Context) {
	render(c, http.StatusOK, "forms.html", nil)
}
