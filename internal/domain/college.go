package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// College is system-owned reference data. The API only reads it; rows are
// loaded by the seedcatalog command.
type College struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string         `gorm:"not null;column:name;index" json:"name"`
	Type              string         `gorm:"column:type;index" json:"type"`
	Location          string         `gorm:"column:location" json:"location"`
	State             string         `gorm:"column:state;index" json:"state"`
	FeesPerYear       int64          `gorm:"column:fees_per_year" json:"fees_per_year"`
	Ranking           int            `gorm:"column:ranking" json:"ranking"`
	AdmissionCriteria string         `gorm:"column:admission_criteria" json:"admission_criteria"`
	ContactInfo       datatypes.JSON `gorm:"type:jsonb;column:contact_info" json:"contact_info"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (College) TableName() string { return "college" }
