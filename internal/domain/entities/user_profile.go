package entities

import "time"

// UserProfile guarda as respostas do onboarding (tabela user_profiles)
type UserProfile struct {
	UserID           string    `json:"user_id" gorm:"primaryKey;column:user_id;type:uuid"`
	Chronotype       string    `json:"chronotype" gorm:"column:chronotype"`
	WorkSchedule     string    `json:"work_schedule" gorm:"column:work_schedule"`
	StressLevel      *int      `json:"stress_level" gorm:"column:stress_level"`
	SocialLife       string    `json:"social_life" gorm:"column:social_life"`
	Hobbies          string    `json:"hobbies" gorm:"column:hobbies"`
	InsomniaSeverity string    `json:"insomnia_severity" gorm:"column:insomnia_severity"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
