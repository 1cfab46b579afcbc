package services

import (
	"testing"
	"time"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testManagerAccessCode = "test"

type serviceEnv struct {
	db *gorm.DB

	auth          *AuthService
	clients       *ClientService
	tasks         *TaskService
	notifications *NotificationService
	dashboards    *DashboardService
}

func setupServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.OnboardingTask{},
		&models.ContentIdea{},
		&models.Metric{},
		&models.Task{},
		&models.Notification{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifications := NewNotificationService(notificationRepo, userRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &serviceEnv{
		db:            db,
		auth:          NewAuthService(userRepo, testManagerAccessCode),
		clients:       NewClientService(clientRepo, taskRepo, notifications),
		tasks:         NewTaskService(taskRepo, userRepo, notifications),
		notifications: notifications,
		dashboards:    NewDashboardService(clientRepo, taskRepo),
	}
}

func (env *serviceEnv) createUser(t *testing.T, email, name string, isManager bool) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		Name:         name,
		IsManager:    isManager,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *serviceEnv) createTask(t *testing.T, managerID, workerID, clientID uint64, status models.TaskStatus) *models.Task {
	t.Helper()
	task := &models.Task{
		ManagerID:       managerID,
		WorkerID:        workerID,
		ClientID:        clientID,
		TaskDescription: "Draft the launch plan",
		Deadline:        time.Now().Add(72 * time.Hour),
		Status:          status,
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}
