package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(150);not null" json:"-"`
	Name         string    `gorm:"type:varchar(150)" json:"name"`
	IsManager    bool      `gorm:"not null;default:false" json:"is_manager"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Clients       []Client       `gorm:"foreignKey:UserID" json:"-"`
	ManagedTasks  []Task         `gorm:"foreignKey:ManagerID" json:"-"`
	AssignedTasks []Task         `gorm:"foreignKey:WorkerID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}
