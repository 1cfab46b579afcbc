package models

// OnboardingTask is a checklist item attached to a client during onboarding.
// Deadline is free text, matching how these are entered.
type OnboardingTask struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	ClientID    uint64 `gorm:"not null;index" json:"client_id"`
	TaskName    string `gorm:"type:varchar(150)" json:"task_name"`
	Responsible string `gorm:"type:varchar(50)" json:"responsible"`
	Deadline    string `gorm:"type:varchar(50)" json:"deadline"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

type ContentIdea struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	ClientID    uint64 `gorm:"not null;index" json:"client_id"`
	IdeaSource  string `gorm:"type:varchar(100)" json:"idea_source"`
	Description string `gorm:"type:varchar(250)" json:"description"`
	Link        string `gorm:"type:varchar(250)" json:"link"`
	Sound       string `gorm:"type:varchar(250)" json:"sound"`
	Status      string `gorm:"type:varchar(50)" json:"status"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

type Metric struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	ClientID uint64 `gorm:"not null;index" json:"client_id"`
	Platform string `gorm:"type:varchar(100)" json:"platform"`
	PostDate string `gorm:"type:varchar(50)" json:"post_date"`
	Views    int    `json:"views"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
