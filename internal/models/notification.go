package models

import "time"

type NotificationType string

const (
	NotificationTaskAssigned        NotificationType = "task_assigned"
	NotificationTaskCompleted       NotificationType = "task_completed"
	NotificationTaskStatusChanged   NotificationType = "task_status_changed"
	NotificationClientAdded         NotificationType = "client_added"
	NotificationOnboardingTaskAdded NotificationType = "onboarding_task_added"
	NotificationContentIdeaAdded    NotificationType = "content_idea_added"
	NotificationMetricAdded         NotificationType = "metric_added"
)

type Notification struct {
	ID        uint64           `gorm:"primarykey" json:"id"`
	UserID    uint64           `gorm:"not null;index:idx_notifications_user_read" json:"user_id"`
	Message   string           `gorm:"type:varchar(250)" json:"message"`
	Type      NotificationType `gorm:"type:varchar(50)" json:"type"`
	Timestamp time.Time        `gorm:"autoCreateTime" json:"timestamp"`
	Read      bool             `gorm:"not null;default:false;index:idx_notifications_user_read" json:"read"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
