package repository

import (
	"github.com/ayatori/clientdesk/internal/models"
	"gorm.io/gorm"
)

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(id uint64) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ListAll lists every client
func (r *GormClientRepository) ListAll() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// ListByOwner lists clients owned by a user
func (r *GormClientRepository) ListByOwner(userID uint64) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Where("user_id = ?", userID).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// CountByStatus counts clients with the given status
func (r *GormClientRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// AddOnboardingTask creates an onboarding task for a client
func (r *GormClientRepository) AddOnboardingTask(task *models.OnboardingTask) error {
	return r.db.Create(task).Error
}

// AddContentIdea creates a content idea for a client
func (r *GormClientRepository) AddContentIdea(idea *models.ContentIdea) error {
	return r.db.Create(idea).Error
}

// AddMetric creates a metric for a client
func (r *GormClientRepository) AddMetric(metric *models.Metric) error {
	return r.db.Create(metric).Error
}

// ListOnboardingTasks lists a client's onboarding tasks
func (r *GormClientRepository) ListOnboardingTasks(clientID uint64) ([]models.OnboardingTask, error) {
	var tasks []models.OnboardingTask
	if err := r.db.Where("client_id = ?", clientID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListContentIdeas lists a client's content ideas
func (r *GormClientRepository) ListContentIdeas(clientID uint64) ([]models.ContentIdea, error) {
	var ideas []models.ContentIdea
	if err := r.db.Where("client_id = ?", clientID).Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// ListMetrics lists a client's metrics
func (r *GormClientRepository) ListMetrics(clientID uint64) ([]models.Metric, error) {
	var metrics []models.Metric
	if err := r.db.Where("client_id = ?", clientID).Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}
