package entities

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
	"gorm.io/datatypes"
)

// SleepLog é o diário de sono de uma data (tabela sleep_logs).
// Há no máximo um registro por usuário e data.
type SleepLog struct {
	Base
	UserID string                                 `json:"user_id" gorm:"column:user_id;type:uuid;uniqueIndex:idx_sleep_logs_user_date"`
	Date   Date                                   `json:"date" gorm:"column:date;type:date;uniqueIndex:idx_sleep_logs_user_date"`
	Events datatypes.JSONSlice[timeline.SleepEvent] `json:"events" gorm:"column:events"`
}

func (SleepLog) TableName() string { return "sleep_logs" }
