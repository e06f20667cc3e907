package usecases

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/repositories"
	"github.com/PavaniTiago/sleep-coach-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
	"github.com/google/uuid"
)

// ShiftInput cria o mesmo turno em várias datas.
// EndDayOffset 0 = termina no mesmo dia, 1 ou 2 = termina depois.
type ShiftInput struct {
	Dates        []string `json:"dates"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	EndDayOffset int      `json:"end_day_offset"`
}

// ShiftUpdate altera um turno existente
type ShiftUpdate struct {
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	EndDayOffset int    `json:"end_day_offset"`
}

const maxShiftDates = 366

type ShiftUseCase interface {
	CreateShifts(ctx context.Context, userID string, input ShiftInput) ([]entities.Shift, error)
	GetShifts(ctx context.Context, userID, from, to string) ([]entities.Shift, error)
	UpdateShift(ctx context.Context, userID, id string, input ShiftUpdate) (*entities.Shift, error)
	DeleteShift(ctx context.Context, userID, id string) error
}

type shiftUseCase struct {
	shiftRepo repositories.IShiftRepository
	log       *logger.Logger
}

func NewShiftUseCase(shiftRepo repositories.IShiftRepository, log *logger.Logger) ShiftUseCase {
	return &shiftUseCase{shiftRepo: shiftRepo, log: log}
}

// validateShiftTimes devolve os horários normalizados ("HH:MM")
func validateShiftTimes(start, end string, offset int) (entities.Clock, entities.Clock, error) {
	sh, sm, err := utils.ParseClock(start)
	if err != nil {
		return "", "", invalid("start_time", "%v", err)
	}
	eh, em, err := utils.ParseClock(end)
	if err != nil {
		return "", "", invalid("end_time", "%v", err)
	}
	if offset < 0 || offset > 2 {
		return "", "", invalid("end_day_offset", "must be 0, 1 or 2")
	}
	if offset == 0 && eh*60+em <= sh*60+sm {
		return "", "", invalid("end_time", "End time must be after start time on the same day")
	}
	// a grade trabalha em meias horas; um turno que some no arredondamento viraria o dia inteiro
	if offset == 0 && halfHourSlot(eh, em) <= halfHourSlot(sh, sm) {
		return "", "", invalid("end_time", "Shift must span at least one half-hour slot on the same day")
	}
	return entities.Clock(utils.FormatClock(sh, sm)), entities.Clock(utils.FormatClock(eh, em)), nil
}

func (uc *shiftUseCase) CreateShifts(ctx context.Context, userID string, input ShiftInput) ([]entities.Shift, error) {
	if len(input.Dates) == 0 {
		return nil, invalid("dates", "at least one date is required")
	}
	if len(input.Dates) > maxShiftDates {
		return nil, invalid("dates", "at most %d dates per request", maxShiftDates)
	}

	start, end, err := validateShiftTimes(input.StartTime, input.EndTime, input.EndDayOffset)
	if err != nil {
		return nil, err
	}

	shifts := make([]entities.Shift, 0, len(input.Dates))
	for _, date := range input.Dates {
		if _, err := utils.ParseDate(date); err != nil {
			return nil, invalid("dates", "%v", err)
		}
		shifts = append(shifts, entities.Shift{
			UserID:    userID,
			Date:      entities.Date(date),
			StartTime: start,
			EndTime:   end,
		})
	}

	if err := uc.shiftRepo.CreateShifts(ctx, shifts); err != nil {
		return nil, fmt.Errorf("failed to create shifts: %w", err)
	}

	uc.log.Info("shifts created", "user_id", userID, "count", len(shifts))
	return shifts, nil
}

func (uc *shiftUseCase) GetShifts(ctx context.Context, userID, from, to string) ([]entities.Shift, error) {
	for field, value := range map[string]string{"from": from, "to": to} {
		if value == "" {
			continue
		}
		if _, err := utils.ParseDate(value); err != nil {
			return nil, invalid(field, "%v", err)
		}
	}
	if from != "" && to != "" && from > to {
		return nil, invalid("from", "must not be after to")
	}
	return uc.shiftRepo.FindShifts(ctx, userID, from, to)
}

func (uc *shiftUseCase) UpdateShift(ctx context.Context, userID, id string, input ShiftUpdate) (*entities.Shift, error) {
	shiftID, err := uuid.Parse(id)
	if err != nil {
		return nil, invalid("id", "invalid shift id")
	}

	current, err := uc.shiftRepo.FindShiftByID(ctx, userID, shiftID.String())
	if err != nil {
		return nil, err
	}

	if input.Date == "" {
		input.Date = current.Date.String()
	}
	if _, err := utils.ParseDate(input.Date); err != nil {
		return nil, invalid("date", "%v", err)
	}
	start, end, err := validateShiftTimes(input.StartTime, input.EndTime, input.EndDayOffset)
	if err != nil {
		return nil, err
	}

	current.Date = entities.Date(input.Date)
	current.StartTime = start
	current.EndTime = end
	if err := uc.shiftRepo.UpdateShift(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (uc *shiftUseCase) DeleteShift(ctx context.Context, userID, id string) error {
	shiftID, err := uuid.Parse(id)
	if err != nil {
		return invalid("id", "invalid shift id")
	}
	return uc.shiftRepo.DeleteShift(ctx, userID, shiftID.String())
}

// halfHourSlot segue o arredondamento de utils.ToHourFraction
func halfHourSlot(hour, minute int) int {
	slot := hour * 2
	if minute >= 30 {
		slot++
	}
	return slot
}
