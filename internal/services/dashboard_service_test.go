package services

import (
	"testing"
	"time"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/stretchr/testify/require"
)

func TestManagerOverviewCounts(t *testing.T) {
	env := setupServiceEnv(t)
	manager := env.createUser(t, "manager@example.com", "Manager", true)
	worker := env.createUser(t, "worker@example.com", "Worker", false)

	require.NoError(t, env.db.Create(&models.Client{UserID: manager.ID, Name: "Acme Corp", Status: models.ClientStatusActive}).Error)
	require.NoError(t, env.db.Create(&models.Client{UserID: manager.ID, Name: "Globex", Status: models.ClientStatusActive}).Error)
	require.NoError(t, env.db.Create(&models.Client{UserID: manager.ID, Name: "Initech", Status: "Archived"}).Error)

	env.createTask(t, manager.ID, worker.ID, 1, models.TaskStatusAssigned)
	env.createTask(t, manager.ID, worker.ID, 1, models.TaskStatusInProgress)
	env.createTask(t, manager.ID, worker.ID, 1, models.TaskStatusCompleted)
	env.createTask(t, manager.ID, worker.ID, 1, models.TaskStatusCompleted)

	overview, err := env.dashboards.ManagerOverview()
	require.NoError(t, err)
	require.EqualValues(t, 2, overview.ActiveClients)
	require.EqualValues(t, 1, overview.AssignedTasks)
	require.EqualValues(t, 1, overview.InProgressTasks)
	require.EqualValues(t, 2, overview.CompletedTasks)
}

func TestWorkerOverviewScopedToWorker(t *testing.T) {
	env := setupServiceEnv(t)
	manager := env.createUser(t, "manager@example.com", "Manager", true)
	worker := env.createUser(t, "worker@example.com", "Worker", false)
	other := env.createUser(t, "other@example.com", "Other", false)

	env.createTask(t, manager.ID, worker.ID, 1, models.TaskStatusAssigned)
	env.createTask(t, manager.ID, worker.ID, 1, models.TaskStatusInProgress)
	env.createTask(t, manager.ID, other.ID, 1, models.TaskStatusAssigned)

	overview, err := env.dashboards.WorkerOverview(worker.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, overview.PendingTasks)
	require.EqualValues(t, 1, overview.InProgressTasks)
	require.EqualValues(t, 0, overview.CompletedTasks)
	require.Zero(t, overview.AverageCompletionTime)
}

func TestWorkerOverviewAverageCompletionTime(t *testing.T) {
	env := setupServiceEnv(t)
	manager := env.createUser(t, "manager@example.com", "Manager", true)
	worker := env.createUser(t, "worker@example.com", "Worker", false)

	base := time.Now().Add(-24 * time.Hour).Truncate(time.Second)

	twoHours := base.Add(2 * time.Hour)
	fourHours := base.Add(4 * time.Hour)
	tasks := []*models.Task{
		{ManagerID: manager.ID, WorkerID: worker.ID, ClientID: 1, TaskDescription: "First", Deadline: base.Add(72 * time.Hour), Status: models.TaskStatusCompleted, CreatedAt: base, CompletionTime: &twoHours},
		{ManagerID: manager.ID, WorkerID: worker.ID, ClientID: 1, TaskDescription: "Second", Deadline: base.Add(72 * time.Hour), Status: models.TaskStatusCompleted, CreatedAt: base, CompletionTime: &fourHours},
	}
	for _, task := range tasks {
		require.NoError(t, env.db.Create(task).Error)
	}

	overview, err := env.dashboards.WorkerOverview(worker.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, overview.CompletedTasks)
	require.Equal(t, 3*time.Hour, overview.AverageCompletionTime)
}
