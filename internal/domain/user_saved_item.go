package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	SavedItemCollege     = "college"
	SavedItemScholarship = "scholarship"
	SavedItemCareer      = "career"
)

type UserSavedItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_saved_item_triple" json:"user_id"`
	User     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	ItemType string    `gorm:"not null;column:item_type;uniqueIndex:idx_user_saved_item_triple" json:"item_type"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;column:item_id;uniqueIndex:idx_user_saved_item_triple" json:"item_id"`
	Notes    string    `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (UserSavedItem) TableName() string { return "user_saved_item" }
