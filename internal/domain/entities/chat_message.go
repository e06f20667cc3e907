package entities

import "time"

// Papéis das mensagens do chat
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage é uma mensagem da conversa com o coach (tabela chat_messages)
type ChatMessage struct {
	Base
	UserID    string    `json:"user_id" gorm:"column:user_id;type:uuid;index:idx_chat_messages_user_ts"`
	Role      string    `json:"role" gorm:"column:role"`
	Content   string    `json:"content" gorm:"column:content;type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;index:idx_chat_messages_user_ts"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
