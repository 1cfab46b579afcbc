package handlers

import (
	"testing"
	"time"

	"github.com/ayatori/clientdesk/internal/constants"
	"github.com/ayatori/clientdesk/internal/database"
	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/repository"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/ayatori/clientdesk/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testManagerAccessCode = "test"

// testEnv bundles the in-memory database with fully wired services and
// handlers.
type testEnv struct {
	db *gorm.DB

	authService         *services.AuthService
	clientService       *services.ClientService
	taskService         *services.TaskService
	notificationService *services.NotificationService
	dashboardService    *services.DashboardService

	authHandler         *AuthHandler
	clientHandler       *ClientHandler
	taskHandler         *TaskHandler
	notificationHandler *NotificationHandler
	dashboardHandler    *DashboardHandler
	exportHandler       *ExportHandler
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	authService := services.NewAuthService(userRepo, testManagerAccessCode)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	clientService := services.NewClientService(clientRepo, taskRepo, notificationService)
	taskService := services.NewTaskService(taskRepo, userRepo, notificationService)
	dashboardService := services.NewDashboardService(clientRepo, taskRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:                  db,
		authService:         authService,
		clientService:       clientService,
		taskService:         taskService,
		notificationService: notificationService,
		dashboardService:    dashboardService,
		authHandler:         NewAuthHandler(authService),
		clientHandler:       NewClientHandler(clientService),
		taskHandler:         NewTaskHandler(taskService, clientService),
		notificationHandler: NewNotificationHandler(notificationService),
		dashboardHandler:    NewDashboardHandler(dashboardService),
		exportHandler:       NewExportHandler(clientRepo, taskRepo),
	}
}

// newRouter builds a router with templates and a cookie session store, the
// same shape main.go wires.
func newRouter() *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	return r
}

// authedRouter additionally pins the given user as the authenticated session,
// standing in for RequireAuth.
func authedRouter(user *models.User) *gin.Engine {
	r := newRouter()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	})
	return r
}

func (env *testEnv) createUser(t *testing.T, email, name string, isManager bool) *models.User {
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

func (env *testEnv) createClient(t *testing.T, ownerID uint64, name string) *models.Client {
	t.Helper()
	client := &models.Client{
		UserID: ownerID,
		Name:   name,
		Status: models.ClientStatusActive,
	}
	require.NoError(t, env.db.Create(client).Error)
	return client
}

func (env *testEnv) createTask(t *testing.T, managerID, workerID, clientID uint64, description string) *models.Task {
	t.Helper()
	task := &models.Task{
		ManagerID:       managerID,
		WorkerID:        workerID,
		ClientID:        clientID,
		TaskDescription: description,
		Deadline:        deadline(),
		Status:          models.TaskStatusAssigned,
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func deadline() time.Time {
	return time.Now().Add(72 * time.Hour)
}

func (env *testEnv) countNotifications(t *testing.T, userID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}
