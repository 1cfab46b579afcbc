package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ayatori/clientdesk/internal/middleware"
	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/gin-gonic/gin"

	apierrors "github.com/ayatori/clientdesk/internal/errors"
)

// TaskHandler serves the task pages, the assignment and submission forms, and
// the JSON status endpoint the kanban board drives.
type TaskHandler struct {
	taskService   *services.TaskService
	clientService *services.ClientService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, clientService *services.ClientService) *TaskHandler {
	return &TaskHandler{
		taskService:   taskService,
		clientService: clientService,
	}
}

// assignFormChoices loads the worker and client dropdowns at request time.
func (h *TaskHandler) assignFormChoices(user *models.User) ([]models.User, []models.Client, error) {
	workers, err := h.taskService.ListWorkers()
	if err != nil {
		return nil, nil, err
	}
	clients, err := h.clientService.ListClients(user)
	if err != nil {
		return nil, nil, err
	}
	return workers, clients, nil
}

// AssignTaskPage renders the assignment form with its dropdowns.
func (h *TaskHandler) AssignTaskPage(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	workers, clients, err := h.assignFormChoices(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load form choices"})
		return
	}

	render(c, http.StatusOK, "assign_task.html", gin.H{
		"Workers": workers,
		"Clients": clients,
	})
}

// AssignTask creates a task for the selected worker.
func (h *TaskHandler) AssignTask(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	type AssignTaskForm struct {
		WorkerEmail     string `form:"worker_email" binding:"required,email"`
		ClientID        uint64 `form:"client_id" binding:"required"`
		TaskDescription string `form:"task_description" binding:"required"`
		Deadline        string `form:"deadline" binding:"required"`
	}

	rerender := func(status int, errMsg string) {
		workers, clients, err := h.assignFormChoices(user)
		if err != nil {
			render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load form choices"})
			return
		}
		render(c, status, "assign_task.html", gin.H{
			"Error":   errMsg,
			"Workers": workers,
			"Clients": clients,
		})
	}

	var form AssignTaskForm
	if err := c.ShouldBind(&form); err != nil {
		rerender(http.StatusBadRequest, "All fields are required")
		return
	}

	deadline, err := time.Parse("2006-01-02", form.Deadline)
	if err != nil {
		rerender(http.StatusBadRequest, "Deadline must be a date (YYYY-MM-DD)")
		return
	}

	_, err = h.taskService.AssignTask(services.AssignTaskInput{
		ManagerID:       user.ID,
		WorkerEmail:     form.WorkerEmail,
		ClientID:        form.ClientID,
		TaskDescription: form.TaskDescription,
		Deadline:        deadline,
	})
	if err != nil {
		if errors.Is(err, services.ErrWorkerNotFound) {
			rerender(http.StatusBadRequest, "Worker not found.")
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to assign task"})
		return
	}

	setFlash(c, "Task assigned successfully!")
	c.Redirect(http.StatusFound, "/kanban_board")
}

// SubmitTaskPage renders the completion form for one task.
func (h *TaskHandler) SubmitTaskPage(c *gin.Context) {
	taskID, ok := paramID(c, "task_id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Task not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load task"})
		return
	}

	render(c, http.StatusOK, "submit_task.html", gin.H{"Task": task})
}

// SubmitTask records completion data, forces the task to Completed, and
// notifies the task's manager.
func (h *TaskHandler) SubmitTask(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	taskID, ok := paramID(c, "task_id")
	if !ok {
		return
	}

	type TaskSubmissionForm struct {
		CompletionDescription string `form:"completion_description" binding:"required"`
		CompletionLink        string `form:"completion_link" binding:"required"`
	}

	var form TaskSubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		task, taskErr := h.taskService.GetTask(taskID)
		if taskErr != nil {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Task not found"})
			return
		}
		render(c, http.StatusBadRequest, "submit_task.html", gin.H{
			"Error": "Completion description and link are required",
			"Task":  task,
		})
		return
	}

	_, err := h.taskService.SubmitTask(taskID, user, services.SubmitTaskInput{
		CompletionDescription: form.CompletionDescription,
		CompletionLink:        form.CompletionLink,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Task not found"})
			return
		}
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to submit task"})
		return
	}

	setFlash(c, "Task submitted successfully!")
	c.Redirect(http.StatusFound, "/kanban_board")
}

// TaskList shows the role-scoped task list; a POST completes the selected
// task in place.
func (h *TaskHandler) TaskList(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	if c.Request.Method == http.MethodPost {
		type InlineSubmissionForm struct {
			TaskID                uint64 `form:"task_id" binding:"required"`
			CompletionDescription string `form:"completion_description" binding:"required"`
			CompletionLink        string `form:"completion_link" binding:"required"`
		}

		var form InlineSubmissionForm
		if err := c.ShouldBind(&form); err == nil {
			if _, err := h.taskService.SubmitTask(form.TaskID, user, services.SubmitTaskInput{
				CompletionDescription: form.CompletionDescription,
				CompletionLink:        form.CompletionLink,
			}); err == nil {
				setFlash(c, "Task submitted successfully!")
				c.Redirect(http.StatusFound, "/tasks")
				return
			}
		}
	}

	tasks, err := h.taskService.ListTasks(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load tasks"})
		return
	}

	render(c, http.StatusOK, "task_list.html", gin.H{
		"Tasks":    tasks,
		"IsWorker": !user.IsManager,
	})
}

// KanbanBoard groups the role-scoped tasks under the three canonical columns.
func (h *TaskHandler) KanbanBoard(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	tasks, err := h.taskService.ListTasks(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load tasks"})
		return
	}

	columns := map[models.TaskStatus][]models.Task{}
	for _, task := range tasks {
		columns[task.Status] = append(columns[task.Status], task)
	}

	render(c, http.StatusOK, "kanban_board.html", gin.H{
		"Assigned":   columns[models.TaskStatusAssigned],
		"InProgress": columns[models.TaskStatusInProgress],
		"Completed":  columns[models.TaskStatusCompleted],
	})
}

// SubmittedTasks lists completed tasks, role-scoped.
func (h *TaskHandler) SubmittedTasks(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	tasks, err := h.taskService.ListCompletedTasks(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load tasks"})
		return
	}

	render(c, http.StatusOK, "submitted_tasks.html", gin.H{"Tasks": tasks})
}

// SubmittedTasksReport lists every task in the report layout.
func (h *TaskHandler) SubmittedTasksReport(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	tasks, err := h.taskService.ListTasks(user)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load tasks"})
		return
	}

	render(c, http.StatusOK, "submitted_tasks_report.html", gin.H{"Tasks": tasks})
}

// UpdateTaskStatus is the JSON endpoint behind the kanban drag-and-drop.
// Responses: 404 unknown task, 400 unchanged status, 200 applied.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)

	type UpdateStatusRequest struct {
		TaskID uint64 `json:"task_id"`
		Status string `json:"status"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.taskService.UpdateStatus(req.TaskID, models.TaskStatus(req.Status), user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrStatusUnchanged):
			apierrors.BadRequest(c, "Task status unchanged")
		case errors.Is(err, services.ErrStatusRequired):
			apierrors.BadRequest(c, "Status is required")
		default:
			apierrors.InternalError(c, "Failed to update task status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Task status updated to %s", req.Status),
	})
}
