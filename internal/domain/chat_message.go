package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage has no user_id of its own; visibility is derived from the
// parent conversation's owner, resolved before any read or insert.
type ChatMessage struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"conversation_id"`
	Conversation   *ChatConversation `gorm:"constraint:OnDelete:CASCADE;foreignKey:ConversationID;references:ID" json:"-"`
	Content        string            `gorm:"not null;column:content" json:"content"`
	IsUser         bool              `gorm:"not null;column:is_user" json:"is_user"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_message" }
