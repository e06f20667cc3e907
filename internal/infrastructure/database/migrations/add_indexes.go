package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adiciona os índices das consultas por usuário
func AddIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_shifts_user_date_start ON shifts (user_id, "date", start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_sleep_logs_user_date_desc ON sleep_logs (user_id, "date" DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_user_role_ts ON chat_messages (user_id, role, "timestamp")`,
		`CREATE INDEX IF NOT EXISTS idx_assessment_results_user_key ON assessment_results (user_id, instrument_key, created_at)`,
	}
	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			return err
		}
	}
	return nil
}
