package repositories

import (
	"context"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ISleepLogRepository interface {
	UpsertSleepLog(ctx context.Context, log *entities.SleepLog) (*entities.SleepLog, error)
	FindSleepLogs(ctx context.Context, userID string, limit int) ([]entities.SleepLog, error)
	FindSleepLogByDate(ctx context.Context, userID, date string) (*entities.SleepLog, error)
	DeleteSleepLog(ctx context.Context, userID, id string) error
}

type SleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) *SleepLogRepository {
	return &SleepLogRepository{
		db: db,
	}
}

// UpsertSleepLog grava o diário da data, substituindo os eventos se já existir um
func (r *SleepLogRepository) UpsertSleepLog(ctx context.Context, log *entities.SleepLog) (*entities.SleepLog, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"events"}),
	}).Create(log).Error
	if err != nil {
		return nil, translateError(err)
	}
	// o ID gerado não vale quando a linha já existia
	return r.FindSleepLogByDate(ctx, log.UserID, log.Date.String())
}

// FindSleepLogs retorna os diários mais recentes primeiro; limit <= 0 retorna todos
func (r *SleepLogRepository) FindSleepLogs(ctx context.Context, userID string, limit int) ([]entities.SleepLog, error) {
	var logs []entities.SleepLog

	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order(`"date" DESC`)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, translateError(err)
	}
	return logs, nil
}

func (r *SleepLogRepository) FindSleepLogByDate(ctx context.Context, userID, date string) (*entities.SleepLog, error) {
	var log entities.SleepLog
	err := r.db.WithContext(ctx).Where(`user_id = ? AND "date" = ?`, userID, date).First(&log).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &log, nil
}

func (r *SleepLogRepository) DeleteSleepLog(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entities.SleepLog{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
