package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatConversation struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title    string    `gorm:"column:title;not null" json:"title"`
	Language string    `gorm:"column:language;not null" json:"language"`

	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ChatConversation) TableName() string { return "chat_conversation" }
