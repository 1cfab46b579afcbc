package repository

import (
	"time"

	"github.com/ayatori/clientdesk/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// ListWorkers lists all non-manager users
	ListWorkers() ([]models.User, error)

	// ListManagers lists all manager users
	ListManagers() ([]models.User, error)
}

// ClientRepository defines the interface for client data access,
// including the records hanging off a client.
type ClientRepository interface {
	// Create creates a new client
	Create(client *models.Client) error

	// FindByID finds a client by ID
	FindByID(id uint64) (*models.Client, error)

	// ListAll lists every client
	ListAll() ([]models.Client, error)

	// ListByOwner lists clients owned by a user
	ListByOwner(userID uint64) ([]models.Client, error)

	// CountByStatus counts clients with the given status
	CountByStatus(status string) (int64, error)

	// AddOnboardingTask creates an onboarding task for a client
	AddOnboardingTask(task *models.OnboardingTask) error

	// AddContentIdea creates a content idea for a client
	AddContentIdea(idea *models.ContentIdea) error

	// AddMetric creates a metric for a client
	AddMetric(metric *models.Metric) error

	// ListOnboardingTasks lists a client's onboarding tasks
	ListOnboardingTasks(clientID uint64) ([]models.OnboardingTask, error)

	// ListContentIdeas lists a client's content ideas
	ListContentIdeas(clientID uint64) ([]models.ContentIdea, error)

	// ListMetrics lists a client's metrics
	ListMetrics(clientID uint64) ([]models.Metric, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	WorkerID *uint64
	ClientID *uint64
	Status   *models.TaskStatus
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// CountByStatus counts tasks with the given status, optionally scoped to a worker
	CountByStatus(status models.TaskStatus, workerID *uint64) (int64, error)

	// AverageCompletionDuration returns the mean time from creation to
	// completion over a worker's completed tasks; zero when none exist.
	AverageCompletionDuration(workerID uint64) (time.Duration, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a single notification
	Create(notification *models.Notification) error

	// CreateBatch creates several notifications in one insert
	CreateBatch(notifications []models.Notification) error

	// FindByID finds a notification by ID
	FindByID(id uint64) (*models.Notification, error)

	// ListUnread lists a user's unread notifications, newest first
	ListUnread(userID uint64) ([]models.Notification, error)

	// CountUnread counts a user's unread notifications
	CountUnread(userID uint64) (int64, error)

	// MarkRead sets read=true for one notification; idempotent
	MarkRead(id uint64) error
}
