package services

import (
	"fmt"
	"time"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/repository"
)

// DashboardService computes the per-request dashboard counts. Nothing here is
// cached; every page view recomputes from the store.
type DashboardService struct {
	clientRepo repository.ClientRepository
	taskRepo   repository.TaskRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(clientRepo repository.ClientRepository, taskRepo repository.TaskRepository) *DashboardService {
	return &DashboardService{
		clientRepo: clientRepo,
		taskRepo:   taskRepo,
	}
}

// ManagerDashboard holds the manager overview counts.
type ManagerDashboard struct {
	ActiveClients   int64
	AssignedTasks   int64
	InProgressTasks int64
	CompletedTasks  int64
}

// ManagerOverview returns the global client and task counts.
func (s *DashboardService) ManagerOverview() (*ManagerDashboard, error) {
	activeClients, err := s.clientRepo.CountByStatus(models.ClientStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	assigned, err := s.taskRepo.CountByStatus(models.TaskStatusAssigned, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count assigned tasks: %w", err)
	}
	inProgress, err := s.taskRepo.CountByStatus(models.TaskStatusInProgress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress tasks: %w", err)
	}
	completed, err := s.taskRepo.CountByStatus(models.TaskStatusCompleted, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	return &ManagerDashboard{
		ActiveClients:   activeClients,
		AssignedTasks:   assigned,
		InProgressTasks: inProgress,
		CompletedTasks:  completed,
	}, nil
}

// WorkerDashboard holds the worker-scoped counts and completion aggregate.
type WorkerDashboard struct {
	PendingTasks          int64
	InProgressTasks       int64
	CompletedTasks        int64
	AverageCompletionTime time.Duration
}

// WorkerOverview returns counts scoped to one worker plus their average
// completion time.
func (s *DashboardService) WorkerOverview(workerID uint64) (*WorkerDashboard, error) {
	pending, err := s.taskRepo.CountByStatus(models.TaskStatusAssigned, &workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	inProgress, err := s.taskRepo.CountByStatus(models.TaskStatusInProgress, &workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress tasks: %w", err)
	}
	completed, err := s.taskRepo.CountByStatus(models.TaskStatusCompleted, &workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	average, err := s.taskRepo.AverageCompletionDuration(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average completion time: %w", err)
	}

	return &WorkerDashboard{
		PendingTasks:          pending,
		InProgressTasks:       inProgress,
		CompletedTasks:        completed,
		AverageCompletionTime: average,
	}, nil
}
