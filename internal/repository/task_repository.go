package repository

import (
	"time"

	"github.com/ayatori/clientdesk/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks matching the filter, newest first
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).
		Preload("Worker").
		Preload("Manager").
		Preload("Client")

	if filter.WorkerID != nil {
		query = query.Where("tasks.worker_id = ?", *filter.WorkerID)
	}
	if filter.ClientID != nil {
		query = query.Where("tasks.client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}

	if err := query.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// CountByStatus counts tasks with the given status, optionally scoped to a worker
func (r *GormTaskRepository) CountByStatus(status models.TaskStatus, workerID *uint64) (int64, error) {
	var count int64
	query := r.db.Model(&models.Task{}).Where("status = ?", status)
	if workerID != nil {
		query = query.Where("worker_id = ?", *workerID)
	}
	err := query.Count(&count).Error
	return count, err
}

// completionRow is the projection used for the completion-time aggregate.
type completionRow struct {
	CreatedAt      time.Time
	CompletionTime *time.Time
}

// AverageCompletionDuration returns the mean time from creation to completion
// over a worker's completed tasks. The fold happens here rather than in SQL
// because no datetime-difference aggregate is portable across the supported
// dialects.
func (r *GormTaskRepository) AverageCompletionDuration(workerID uint64) (time.Duration, error) {
	var rows []completionRow
	err := r.db.Model(&models.Task{}).
		Select("created_at", "completion_time").
		Where("worker_id = ? AND status = ? AND completion_time IS NOT NULL", workerID, models.TaskStatusCompleted).
		Find(&rows).Error
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, nil
	}

	var total time.Duration
	for _, row := range rows {
		total += row.CompletionTime.Sub(row.CreatedAt)
	}

	return total / time.Duration(len(rows)), nil
}
