package usecases

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultSleepLogLimit = 30
	maxSleepLogLimit     = 365
)

// SleepLogView é o diário com o total de horas dormidas
type SleepLogView struct {
	entities.SleepLog
	TotalSleepHours float64 `json:"total_sleep_hours"`
}

type SleepLogUseCase interface {
	SaveSleepLog(ctx context.Context, userID, date string, events []timeline.SleepEvent) (*SleepLogView, error)
	GetSleepLogs(ctx context.Context, userID string, limit int) ([]SleepLogView, error)
	GetSleepLog(ctx context.Context, userID, date string) (*SleepLogView, error)
	DeleteSleepLog(ctx context.Context, userID, id string) error
}

type sleepLogUseCase struct {
	sleepLogRepo repositories.ISleepLogRepository
	log          *logger.Logger
}

func NewSleepLogUseCase(sleepLogRepo repositories.ISleepLogRepository, log *logger.Logger) SleepLogUseCase {
	return &sleepLogUseCase{sleepLogRepo: sleepLogRepo, log: log}
}

func newSleepLogView(log entities.SleepLog) SleepLogView {
	// eventos inválidos não chegam ao banco pela API; total zero se vierem de fora
	total, _ := timeline.TotalSleepHours(log.Events)
	return SleepLogView{SleepLog: log, TotalSleepHours: total}
}

// SaveSleepLog grava os eventos da data na ordem enviada, substituindo o diário anterior
func (uc *sleepLogUseCase) SaveSleepLog(ctx context.Context, userID, date string, events []timeline.SleepEvent) (*SleepLogView, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, invalid("date", "%v", err)
	}
	if len(events) == 0 {
		return nil, invalid("events", "at least one event is required")
	}
	if err := timeline.ValidateEvents(events); err != nil {
		return nil, invalid("events", "%v", err)
	}

	normalized := make([]timeline.SleepEvent, len(events))
	for i, event := range events {
		hour, minute, _ := utils.ParseClock(event.Time)
		normalized[i] = timeline.SleepEvent{Type: event.Type, Time: utils.FormatClock(hour, minute)}
	}

	saved, err := uc.sleepLogRepo.UpsertSleepLog(ctx, &entities.SleepLog{
		UserID: userID,
		Date:   entities.Date(date),
		Events: normalized,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save sleep log: %w", err)
	}

	view := newSleepLogView(*saved)
	uc.log.Info("sleep log saved", "user_id", userID, "date", date, "events", len(normalized), "hours", view.TotalSleepHours)
	return &view, nil
}

func (uc *sleepLogUseCase) GetSleepLogs(ctx context.Context, userID string, limit int) ([]SleepLogView, error) {
	if limit <= 0 {
		limit = defaultSleepLogLimit
	}
	if limit > maxSleepLogLimit {
		limit = maxSleepLogLimit
	}

	logs, err := uc.sleepLogRepo.FindSleepLogs(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	views := make([]SleepLogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, newSleepLogView(log))
	}
	return views, nil
}

func (uc *sleepLogUseCase) GetSleepLog(ctx context.Context, userID, date string) (*SleepLogView, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, invalid("date", "%v", err)
	}
	log, err := uc.sleepLogRepo.FindSleepLogByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	view := newSleepLogView(*log)
	return &view, nil
}

func (uc *sleepLogUseCase) DeleteSleepLog(ctx context.Context, userID, id string) error {
	logID, err := uuid.Parse(id)
	if err != nil {
		return invalid("id", "invalid sleep log id")
	}
	return uc.sleepLogRepo.DeleteSleepLog(ctx, userID, logID.String())
}
