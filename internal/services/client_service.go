package services

import (
	"errors"
	"fmt"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/repository"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

// ClientService handles client records and the documents attached to them.
type ClientService struct {
	clientRepo    repository.ClientRepository
	taskRepo      repository.TaskRepository
	notifications *NotificationService
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo repository.ClientRepository, taskRepo repository.TaskRepository, notifications *NotificationService) *ClientService {
	return &ClientService{
		clientRepo:    clientRepo,
		taskRepo:      taskRepo,
		notifications: notifications,
	}
}

// CreateClientInput represents input for creating a client.
type CreateClientInput struct {
	OwnerID            uint64
	Name               string
	ContactNumber      string
	BusinessCategory   string
	SocialMediaHandles string
	Goals              string
	SpecificRequests   string
}

// CreateClient persists a client owned by the actor and notifies every manager.
func (s *ClientService) CreateClient(input CreateClientInput, actorName string) (*models.Client, error) {
	client := &models.Client{
		UserID:             input.OwnerID,
		Name:               input.Name,
		ContactNumber:      input.ContactNumber,
		BusinessCategory:   input.BusinessCategory,
		SocialMediaHandles: input.SocialMediaHandles,
		Goals:              input.Goals,
		SpecificRequests:   input.SpecificRequests,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	message := fmt.Sprintf("A new client %q has been added by %s", client.Name, actorName)
	if err := s.notifications.NotifyManagers(message, models.NotificationClientAdded); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient returns one client by ID.
func (s *ClientService) GetClient(id uint64) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}

// ListClients returns every client for managers and only owned clients for workers.
func (s *ClientService) ListClients(user *models.User) ([]models.Client, error) {
	if user.IsManager {
		return s.clientRepo.ListAll()
	}
	return s.clientRepo.ListByOwner(user.ID)
}

// ClientProfile bundles everything the client detail page shows.
type ClientProfile struct {
	Client          models.Client
	Tasks           []models.Task
	OnboardingTasks []models.OnboardingTask
	ContentIdeas    []models.ContentIdea
	Metrics         []models.Metric
}

// GetClientProfile loads a client with its tasks, onboarding tasks, content
// ideas, and metrics.
func (s *ClientService) GetClientProfile(clientID uint64) (*ClientProfile, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{ClientID: &clientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list client tasks: %w", err)
	}
	onboardingTasks, err := s.clientRepo.ListOnboardingTasks(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	contentIdeas, err := s.clientRepo.ListContentIdeas(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content ideas: %w", err)
	}
	metrics, err := s.clientRepo.ListMetrics(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	return &ClientProfile{
		Client:          *client,
		Tasks:           tasks,
		OnboardingTasks: onboardingTasks,
		ContentIdeas:    contentIdeas,
		Metrics:         metrics,
	}, nil
}

// AddOnboardingTaskInput represents input for an onboarding task.
type AddOnboardingTaskInput struct {
	TaskName    string
	Responsible string
	Deadline    string
}

// AddOnboardingTask attaches an onboarding task to a client and notifies managers.
func (s *ClientService) AddOnboardingTask(clientID uint64, input AddOnboardingTaskInput) (*models.OnboardingTask, error) {
	if _, err := s.GetClient(clientID); err != nil {
		return nil, err
	}

	task := &models.OnboardingTask{
		ClientID:    clientID,
		TaskName:    input.TaskName,
		Responsible: input.Responsible,
		Deadline:    input.Deadline,
	}
	if err := s.clientRepo.AddOnboardingTask(task); err != nil {
		return nil, fmt.Errorf("failed to create onboarding task: %w", err)
	}

	message := fmt.Sprintf("A new onboarding task %q has been added for client ID %d", task.TaskName, clientID)
	if err := s.notifications.NotifyManagers(message, models.NotificationOnboardingTaskAdded); err != nil {
		return nil, err
	}

	return task, nil
}

// AddContentIdeaInput represents input for a content idea.
type AddContentIdeaInput struct {
	IdeaSource  string
	Description string
	Link        string
	Sound       string
	Status      string
}

// AddContentIdea attaches a content idea to a client and notifies managers.
func (s *ClientService) AddContentIdea(clientID uint64, input AddContentIdeaInput) (*models.ContentIdea, error) {
	if _, err := s.GetClient(clientID); err != nil {
		return nil, err
	}

	idea := &models.ContentIdea{
		ClientID:    clientID,
		IdeaSource:  input.IdeaSource,
		Description: input.Description,
		Link:        input.Link,
		Sound:       input.Sound,
		Status:      input.Status,
	}
	if err := s.clientRepo.AddContentIdea(idea); err != nil {
		return nil, fmt.Errorf("failed to create content idea: %w", err)
	}

	message := fmt.Sprintf("A new content idea has been added for client ID %d", clientID)
	if err := s.notifications.NotifyManagers(message, models.NotificationContentIdeaAdded); err != nil {
		return nil, err
	}

	return idea, nil
}

// AddMetricInput represents input for a performance metric.
type AddMetricInput struct {
	Platform string
	PostDate string
	Views    int
	Likes    int
	Comments int
	Shares   int
}

// AddMetric attaches a metric to a client and notifies managers.
func (s *ClientService) AddMetric(clientID uint64, input AddMetricInput) (*models.Metric, error) {
	if _, err := s.GetClient(clientID); err != nil {
		return nil, err
	}

	metric := &models.Metric{
		ClientID: clientID,
		Platform: input.Platform,
		PostDate: input.PostDate,
		Views:    input.Views,
		Likes:    input.Likes,
		Comments: input.Comments,
		Shares:   input.Shares,
	}
	if err := s.clientRepo.AddMetric(metric); err != nil {
		return nil, fmt.Errorf("failed to create metric: %w", err)
	}

	message := fmt.Sprintf("A new metric has been added for client ID %d", clientID)
	if err := s.notifications.NotifyManagers(message, models.NotificationMetricAdded); err != nil {
		return nil, err
	}

	return metric, nil
}
