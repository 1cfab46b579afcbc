package services

import (
	"errors"
	"fmt"

	"github.com/ayatori/clientdesk/internal/models"
	"github.com/ayatori/clientdesk/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles the in-store notification side-channel.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(userID uint64) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

// ListUnread returns a user's unread notifications, newest first.
func (s *NotificationService) ListUnread(userID uint64) ([]models.Notification, error) {
	return s.notificationRepo.ListUnread(userID)
}

// MarkRead sets read=true for one notification. Marking an already-read
// notification succeeds again. There is no ownership check; any authenticated
// user may mark any notification.
func (s *NotificationService) MarkRead(id uint64) error {
	if _, err := s.notificationRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("failed to find notification: %w", err)
	}

	if err := s.notificationRepo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// Notify inserts one notification for a single user.
func (s *NotificationService) Notify(userID uint64, message string, typ models.NotificationType) error {
	return s.notificationRepo.Create(&models.Notification{
		UserID:  userID,
		Message: message,
		Type:    typ,
	})
}

// NotifyManagers inserts one notification per existing manager. This is a
// second commit after the primary record; a failure here leaves the record
// in place with no compensating rollback.
func (s *NotificationService) NotifyManagers(message string, typ models.NotificationType) error {
	managers, err := s.userRepo.ListManagers()
	if err != nil {
		return fmt.Errorf("failed to list managers: %w", err)
	}

	notifications := make([]models.Notification, 0, len(managers))
	for _, manager := range managers {
		notifications = append(notifications, models.Notification{
			UserID:  manager.ID,
			Message: message,
			Type:    typ,
		})
	}

	return s.notificationRepo.CreateBatch(notifications)
}
