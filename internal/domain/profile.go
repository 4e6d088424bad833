package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the one-per-user student profile. ID doubles as the owning
// user id; the row is created inside the registration transaction so a
// principal can never exist without exactly one profile.
type Profile struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	User              *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:ID;references:ID" json:"-"`
	FullName          string         `gorm:"column:full_name" json:"full_name"`
	Phone             string         `gorm:"column:phone" json:"phone"`
	PreferredLanguage string         `gorm:"column:preferred_language;not null" json:"preferred_language"`
	EducationLevel    string         `gorm:"column:education_level" json:"education_level"`
	Interests         datatypes.JSON `gorm:"type:jsonb;column:interests" json:"interests"`
	Location          string         `gorm:"column:location" json:"location"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string { return "profile" }
