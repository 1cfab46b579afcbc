package main

import (
	"log"
	"net/http"

	"github.com/ayatori/clientdesk/internal/config"
	"github.com/ayatori/clientdesk/internal/constants"
	"github.com/ayatori/clientdesk/internal/database"
	"github.com/ayatori/clientdesk/internal/handlers"
	"github.com/ayatori/clientdesk/internal/middleware"
	"github.com/ayatori/clientdesk/internal/repository"
	"github.com/ayatori/clientdesk/internal/services"
	"github.com/ayatori/clientdesk/web"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.StaticFS()))

	// Session store: Redis when configured, signed cookies otherwise
	store, err := sessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.ManagerAccessCode)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	clientService := services.NewClientService(clientRepo, taskRepo, notificationService)
	taskService := services.NewTaskService(taskRepo, userRepo, notificationService)
	dashboardService := services.NewDashboardService(clientRepo, taskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	taskHandler := handlers.NewTaskHandler(taskService, clientService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(clientRepo, taskRepo)

	// Auth routes (public)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)

	// Everything else requires a session
	authed := r.Group("")
	authed.Use(middleware.RequireAuth(authService))
	authed.Use(middleware.InjectUnreadCount(notificationService))
	{
		authed.GET("/logout", authHandler.Logout)

		authed.GET("/", dashboardHandler.Index)
		authed.GET("/manager_dashboard", middleware.RequireManager(), dashboardHandler.ManagerDashboard)
		authed.GET("/worker_dashboard", dashboardHandler.WorkerDashboard)

		authed.GET("/notifications", notificationHandler.Notifications)
		authed.GET("/mark_notification_as_read/:notification_id", notificationHandler.MarkNotificationAsRead)
		authed.GET("/api/notifications/unread_count", notificationHandler.UnreadCount)

		authed.GET("/clients", clientHandler.ListClients)
		authed.GET("/client/:id", clientHandler.ClientProfile)
		authed.GET("/add_client", clientHandler.AddClientPage)
		authed.POST("/add_client", clientHandler.AddClient)
		authed.GET("/add_onboarding_task/:client_id", clientHandler.AddOnboardingTaskPage)
		authed.POST("/add_onboarding_task/:client_id", clientHandler.AddOnboardingTask)
		authed.GET("/add_content_idea/:client_id", clientHandler.AddContentIdeaPage)
		authed.POST("/add_content_idea/:client_id", clientHandler.AddContentIdea)
		authed.GET("/add_metric/:client_id", clientHandler.AddMetricPage)
		authed.POST("/add_metric/:client_id", clientHandler.AddMetric)
		authed.GET("/forms", clientHandler.FormsPage)

		authed.GET("/assign_task", taskHandler.AssignTaskPage)
		authed.POST("/assign_task", taskHandler.AssignTask)
		authed.GET("/submit_task/:task_id", taskHandler.SubmitTaskPage)
		authed.POST("/submit_task/:task_id", taskHandler.SubmitTask)
		authed.GET("/tasks", taskHandler.TaskList)
		authed.POST("/tasks", taskHandler.TaskList)
		authed.POST("/update_task_status", taskHandler.UpdateTaskStatus)
		authed.GET("/kanban_board", taskHandler.KanbanBoard)
		authed.GET("/submitted_tasks", taskHandler.SubmittedTasks)
		authed.GET("/submitted_tasks_report", taskHandler.SubmittedTasksReport)

		authed.GET("/download_clients", exportHandler.DownloadClients)
		authed.GET("/download_tasks", exportHandler.DownloadTasks)
		authed.GET("/download_onboarding_tasks/:client_id", exportHandler.DownloadOnboardingTasks)
		authed.GET("/download_content_ideas/:client_id", exportHandler.DownloadContentIdeas)
		authed.GET("/download_metrics/:client_id", exportHandler.DownloadMetrics)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func sessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.RedisHost == "" {
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	return redisStore.NewStore(
		10,    // pool size
		"tcp", // network type
		redisAddr,
		"", // username (empty for default user)
		"", // password (empty = no password)
		[]byte(cfg.SessionSecret),
	)
}
