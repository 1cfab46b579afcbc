package models

import "time"

type TaskStatus string

// Canonical statuses. The status-update endpoint intentionally accepts any
// string, so these are the known values, not an enforced state machine.
const (
	TaskStatusAssigned   TaskStatus = "Assigned"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

type Task struct {
	ID                    uint64     `gorm:"primarykey" json:"id"`
	ManagerID             uint64     `gorm:"not null" json:"manager_id"`
	WorkerID              uint64     `gorm:"not null;index" json:"worker_id"`
	ClientID              uint64     `gorm:"not null;index" json:"client_id"`
	TaskDescription       string     `gorm:"type:varchar(255);not null" json:"task_description"`
	Deadline              time.Time  `gorm:"not null" json:"deadline"`
	Status                TaskStatus `gorm:"type:varchar(50);not null;index" json:"status"`
	CompletionDescription string     `gorm:"type:text" json:"completion_description"`
	CompletionLink        string     `gorm:"type:varchar(255)" json:"completion_link"`
	CreatedAt             time.Time  `json:"created_at"`
	InProgressTime        *time.Time `json:"in_progress_time"`
	CompletionTime        *time.Time `json:"completion_time"`

	// Relations
	Manager User   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Worker  User   `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
	Client  Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
