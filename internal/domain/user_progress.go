package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	QuestStatusPending    = "pending"
	QuestStatusInProgress = "in_progress"
	QuestStatusCompleted  = "completed"
)

// UserProgress tracks one quest per user; the composite unique index makes
// a second row for the same (user, quest_type) a uniqueness violation.
type UserProgress struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_progress_user_quest" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	QuestType   string         `gorm:"not null;column:quest_type;uniqueIndex:idx_user_progress_user_quest" json:"quest_type"`
	Status      string         `gorm:"not null;column:status" json:"status"`
	Points      int            `gorm:"not null;column:points" json:"points"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
	CompletedAt *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (UserProgress) TableName() string { return "user_progress" }
