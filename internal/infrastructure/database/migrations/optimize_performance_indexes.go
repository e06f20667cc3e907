package migrations

import (
	"gorm.io/gorm"
)

// OptimizePerformanceIndexes adiciona índices específicos do Postgres
func OptimizePerformanceIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	// Índice BRIN para o histórico do chat, que cresce em ordem de tempo
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_chat_messages_ts_brin ON chat_messages USING BRIN ("timestamp")`).Error; err != nil {
		return err
	}

	// Índice GIN para buscas dentro dos eventos de sono
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_sleep_logs_events_gin ON sleep_logs USING GIN ((events::jsonb))`).Error; err != nil {
		return err
	}

	return nil
}
