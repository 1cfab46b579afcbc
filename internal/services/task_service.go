package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrWorkerNotFound  = errors.New("worker not found")
	ErrStatusUnchanged = errors.New("task status unchanged")
	ErrStatusRequired  = errors.New("status is required")
)

// TaskService handles task assignment and the status workflow.
type TaskService struct {
	taskRepo      repository.TaskRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, notifications *NotificationService) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// AssignTaskInput represents input for assigning a task to a worker.
type AssignTaskInput struct {
	ManagerID       uint64
	WorkerEmail     string
	ClientID        uint64
	TaskDescription string
	Deadline        time.Time
}

// AssignTask creates a task in the Assigned state, notifies the worker, and
// notifies every manager.
func (s *TaskService) AssignTask(input AssignTaskInput) (*models.Task, error) {
	worker, err := s.userRepo.FindByEmail(input.WorkerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}
	if worker.IsManager {
		return nil, ErrWorkerNotFound
	}

	task := &models.Task{
		ManagerID:       input.ManagerID,
		WorkerID:        worker.ID,
		ClientID:        input.ClientID,
		TaskDescription: input.TaskDescription,
		Deadline:        input.Deadline,
		Status:          models.TaskStatusAssigned,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	workerMessage := fmt.Sprintf("You have been assigned a new task: %s", task.TaskDescription)
	if err := s.notifications.Notify(worker.ID, workerMessage, models.NotificationTaskAssigned); err != nil {
		return nil, err
	}

	managerMessage := fmt.Sprintf("A new task has been assigned to %s", worker.Name)
	if err := s.notifications.NotifyManagers(managerMessage, models.NotificationTaskAssigned); err != nil {
		return nil, err
	}

	return task, nil
}

// ListWorkers returns the non-manager users the assignment form offers.
func (s *TaskService) ListWorkers() ([]models.User, error) {
	return s.userRepo.ListWorkers()
}

// GetTask returns a task by ID.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "Worker", "Manager", "Client")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListTasks returns every task for managers and the worker's own otherwise.
func (s *TaskService) ListTasks(user *models.User) ([]models.Task, error) {
	filter := repository.TaskFilter{}
	if !user.IsManager {
		filter.WorkerID = &user.ID
	}
	return s.taskRepo.List(filter)
}

// ListCompletedTasks returns completed tasks, role-scoped like ListTasks.
func (s *TaskService) ListCompletedTasks(user *models.User) ([]models.Task, error) {
	status := models.TaskStatusCompleted
	filter := repository.TaskFilter{Status: &status}
	if !user.IsManager {
		filter.WorkerID = &user.ID
	}
	return s.taskRepo.List(filter)
}

// SubmitTaskInput represents a worker's completion submission.
type SubmitTaskInput struct {
	CompletionDescription string
	CompletionLink        string
}

// SubmitTask forces a task to Completed, records the completion fields, and
// notifies the task's manager.
func (s *TaskService) SubmitTask(taskID uint64, actor *models.User, input SubmitTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	now := time.Now()
	task.Status = models.TaskStatusCompleted
	task.CompletionDescription = input.CompletionDescription
	task.CompletionLink = input.CompletionLink
	task.CompletionTime = &now

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	message := fmt.Sprintf("Task %q has been completed by %s", task.TaskDescription, s.workerName(task, actor))
	if err := s.notifications.Notify(task.ManagerID, message, models.NotificationTaskCompleted); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateStatus applies any status different from the current one, stamping
// in_progress_time or completion_time for the two literals that carry
// timestamps, and notifies the task's manager. Values outside the canonical
// set are accepted and persisted as-is.
func (s *TaskService) UpdateStatus(taskID uint64, newStatus models.TaskStatus, actor *models.User) (*models.Task, error) {
	if newStatus == "" {
		return nil, ErrStatusRequired
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Status == newStatus {
		return nil, ErrStatusUnchanged
	}

	now := time.Now().UTC()
	task.Status = newStatus
	switch newStatus {
	case models.TaskStatusInProgress:
		task.InProgressTime = &now
	case models.TaskStatusCompleted:
		task.CompletionTime = &now
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	message := fmt.Sprintf("Task %q has been moved to %s by %s", task.TaskDescription, newStatus, s.workerName(task, actor))
	if err := s.notifications.Notify(task.ManagerID, message, models.NotificationTaskStatusChanged); err != nil {
		return nil, err
	}

	return task, nil
}

// workerName resolves the task's worker name, falling back to the acting
// user's name when the worker reference cannot be loaded.
func (s *TaskService) workerName(task *models.Task, actor *models.User) string {
	if task.WorkerID != 0 {
		if worker, err := s.userRepo.FindByID(task.WorkerID); err == nil {
			return worker.Name
		}
	}
	return actor.Name
}
