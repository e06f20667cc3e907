package entities

import (
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

// Valores aceitos nas preferências
const (
	PreferenceMorning = "morning"
	PreferenceEvening = "evening"
	PreferenceNeither = "neither"

	SexMale   = "male"
	SexFemale = "female"
	SexOther  = "other"
)

// UserPreferences são as preferências de sono (tabela user_preferences)
type UserPreferences struct {
	Base
	UserID                string    `json:"user_id" gorm:"column:user_id;type:uuid;uniqueIndex"`
	SleepStartTimeDaysOff Clock     `json:"sleep_start_time_days_off" gorm:"column:sleep_start_time_days_off;type:time"`
	SleepEndTimeDaysOff   Clock     `json:"sleep_end_time_days_off" gorm:"column:sleep_end_time_days_off;type:time"`
	ReadyTimeMinutes      int       `json:"ready_time_minutes" gorm:"column:ready_time_minutes"`
	Chronotype            string    `json:"chronotype" gorm:"column:chronotype"`
	Sex                   string    `json:"sex" gorm:"column:sex"`
	Age                   int       `json:"age" gorm:"column:age"`
	UseMelatonin          bool      `json:"use_melatonin" gorm:"column:use_melatonin"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (UserPreferences) TableName() string { return "user_preferences" }

// SleepDurationHours calcula as horas de sono nos dias de folga (vira o dia quando fim <= início)
func (p UserPreferences) SleepDurationHours() (float64, error) {
	start, err := utils.ClockMinutes(p.SleepStartTimeDaysOff.String())
	if err != nil {
		return 0, err
	}
	end, err := utils.ClockMinutes(p.SleepEndTimeDaysOff.String())
	if err != nil {
		return 0, err
	}
	if end <= start {
		end += 24 * 60
	}
	return float64(end-start) / 60, nil
}
