package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contém campos comuns para as entidades com chave própria
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// BeforeCreate gera o ID quando o registro ainda não tem um
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
