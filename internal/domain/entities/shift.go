package entities

import "github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"

// Shift representa um turno de trabalho do usuário (tabela shifts)
type Shift struct {
	Base
	UserID    string `json:"user_id" gorm:"column:user_id;type:uuid;index:idx_shifts_user_date"`
	Date      Date   `json:"date" gorm:"column:date;type:date;index:idx_shifts_user_date"`
	StartTime Clock  `json:"start_time" gorm:"column:start_time;type:time"`
	EndTime   Clock  `json:"end_time" gorm:"column:end_time;type:time"`
}

func (Shift) TableName() string { return "shifts" }

// Interval converte o turno para o formato do motor de timeline
func (s Shift) Interval() timeline.ShiftInterval {
	return timeline.ShiftInterval{
		Date:      s.Date.String(),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
	}
}
