package models

import "time"

type Client struct {
	ID                 uint64    `gorm:"primarykey" json:"id"`
	UserID             uint64    `gorm:"not null;index" json:"user_id"`
	Name               string    `gorm:"type:varchar(150)" json:"name"`
	ContactNumber      string    `gorm:"type:varchar(50)" json:"contact_number"`
	BusinessCategory   string    `gorm:"type:varchar(100)" json:"business_category"`
	SocialMediaHandles string    `gorm:"type:varchar(150)" json:"social_media_handles"`
	Goals              string    `gorm:"type:varchar(250)" json:"goals"`
	SpecificRequests   string    `gorm:"type:varchar(250)" json:"specific_requests"`
	Status             string    `gorm:"type:varchar(50);index" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Owner           User             `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	OnboardingTasks []OnboardingTask `gorm:"foreignKey:ClientID" json:"onboarding_tasks,omitempty"`
	ContentIdeas    []ContentIdea    `gorm:"foreignKey:ClientID" json:"content_ideas,omitempty"`
	Metrics         []Metric         `gorm:"foreignKey:ClientID" json:"metrics,omitempty"`
	Tasks           []Task           `gorm:"foreignKey:ClientID" json:"tasks,omitempty"`
}

// ClientStatusActive is the status counted on the manager dashboard.
const ClientStatusActive = "Active"
