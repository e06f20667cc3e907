package migrations

import (
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"

	"gorm.io/gorm"
)

// Migrate cria ou ajusta as tabelas usadas pela API
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.UserProfile{},
		&entities.UserPreferences{},
		&entities.Shift{},
		&entities.SleepLog{},
		&entities.ChatMessage{},
		&entities.AssessmentResult{},
	)
}
