package repositories

import (
	"context"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IShiftRepository interface {
	CreateShifts(ctx context.Context, shifts []entities.Shift) error
	FindShifts(ctx context.Context, userID, from, to string) ([]entities.Shift, error)
	FindShiftByID(ctx context.Context, userID, id string) (*entities.Shift, error)
	UpdateShift(ctx context.Context, shift *entities.Shift) error
	DeleteShift(ctx context.Context, userID, id string) error
}

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{
		db: db,
	}
}

// CreateShifts insere todos os turnos numa única transação
func (r *ShiftRepository) CreateShifts(ctx context.Context, shifts []entities.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Create(&shifts).Error)
}

// FindShifts retorna os turnos do usuário entre from e to (inclusive), ordenados por data e início.
// Datas vazias não limitam o intervalo.
func (r *ShiftRepository) FindShifts(ctx context.Context, userID, from, to string) ([]entities.Shift, error) {
	var shifts []entities.Shift

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != "" {
		query = query.Where(`"date" >= ?`, from)
	}
	if to != "" {
		query = query.Where(`"date" <= ?`, to)
	}

	if err := query.Order(`"date" ASC, start_time ASC`).Find(&shifts).Error; err != nil {
		return nil, translateError(err)
	}
	return shifts, nil
}

func (r *ShiftRepository) FindShiftByID(ctx context.Context, userID, id string) (*entities.Shift, error) {
	var shift entities.Shift
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&shift).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &shift, nil
}

// UpdateShift altera data e horários de um turno existente do usuário
func (r *ShiftRepository) UpdateShift(ctx context.Context, shift *entities.Shift) error {
	result := r.db.WithContext(ctx).Model(&entities.Shift{}).
		Where("id = ? AND user_id = ?", shift.ID, shift.UserID).
		Updates(map[string]interface{}{
			"date":       shift.Date,
			"start_time": shift.StartTime,
			"end_time":   shift.EndTime,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ShiftRepository) DeleteShift(ctx context.Context, userID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Shift{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
