package repositories

import (
	"context"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IAssessmentRepository interface {
	CreateResult(ctx context.Context, result *entities.AssessmentResult) error
	FindResults(ctx context.Context, userID, instrumentKey string) ([]entities.AssessmentResult, error)
}

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
	}
}

func (r *AssessmentRepository) CreateResult(ctx context.Context, result *entities.AssessmentResult) error {
	return translateError(r.db.WithContext(ctx).Create(result).Error)
}

// FindResults retorna o histórico mais recente primeiro, opcionalmente filtrado por instrumento
func (r *AssessmentRepository) FindResults(ctx context.Context, userID, instrumentKey string) ([]entities.AssessmentResult, error) {
	var results []entities.AssessmentResult

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if instrumentKey != "" {
		query = query.Where("instrument_key = ?", instrumentKey)
	}
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, translateError(err)
	}
	return results, nil
}
