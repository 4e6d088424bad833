package domain

import (
	"time"

	"github.com/google/uuid"
)

type Scholarship struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title               string     `gorm:"not null;column:title" json:"title"`
	Description         string     `gorm:"not null;column:description" json:"description"`
	Amount              int64      `gorm:"column:amount" json:"amount"`
	EligibilityCriteria string     `gorm:"column:eligibility_criteria" json:"eligibility_criteria"`
	Deadline            *time.Time `gorm:"type:date;column:deadline" json:"deadline,omitempty"`
	ApplicationLink     string     `gorm:"column:application_link" json:"application_link"`
	Category            string     `gorm:"column:category;index" json:"category"`
	// Inactive rows are never visible through the API; listing and lookup
	// both filter on is_active.
	IsActive bool `gorm:"not null;column:is_active;index" json:"is_active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Scholarship) TableName() string { return "scholarship" }
