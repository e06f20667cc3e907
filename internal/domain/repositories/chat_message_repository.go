package repositories

import (
	"context"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IChatMessageRepository interface {
	CreateMessages(ctx context.Context, messages []entities.ChatMessage) error
	CountMessagesSince(ctx context.Context, userID, role string, since time.Time) (int64, error)
	FindRecentMessages(ctx context.Context, userID string, limit int) ([]entities.ChatMessage, error)
}

type ChatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{
		db: db,
	}
}

func (r *ChatMessageRepository) CreateMessages(ctx context.Context, messages []entities.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).Create(&messages).Error)
}

// CountMessagesSince conta as mensagens do papel informado a partir de since
func (r *ChatMessageRepository) CountMessagesSince(ctx context.Context, userID, role string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ChatMessage{}).
		Where(`user_id = ? AND role = ? AND "timestamp" >= ?`, userID, role, since.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// FindRecentMessages retorna as últimas limit mensagens em ordem cronológica
func (r *ChatMessageRepository) FindRecentMessages(ctx context.Context, userID string, limit int) ([]entities.ChatMessage, error) {
	var messages []entities.ChatMessage

	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order(`"timestamp" DESC`)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, translateError(err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
