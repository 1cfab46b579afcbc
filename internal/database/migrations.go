package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ayatori/clientdesk/internal/models"
)

// AddIndexes adds secondary indexes on the columns the dashboards and
// notification queries filter by. AutoMigrate handles the unique ones.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model any
		field string
	}{
		{&models.Task{}, "Status"},
		{&models.Task{}, "WorkerID"},
		{&models.Task{}, "ClientID"},
		{&models.Client{}, "UserID"},
		{&models.Client{}, "Status"},
		{&models.OnboardingTask{}, "ClientID"},
		{&models.ContentIdea{}, "ClientID"},
		{&models.Metric{}, "ClientID"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.field) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.field); err != nil {
			return fmt.Errorf("failed to create index on %T.%s: %w", idx.model, idx.field, err)
		}
	}

	return nil
}
