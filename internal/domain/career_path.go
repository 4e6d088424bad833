package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CareerPath struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string         `gorm:"not null;column:title;index" json:"title"`
	Description       string         `gorm:"not null;column:description" json:"description"`
	RequiredEducation string         `gorm:"column:required_education" json:"required_education"`
	AverageSalary     int64          `gorm:"column:average_salary" json:"average_salary"`
	JobOutlook        string         `gorm:"column:job_outlook" json:"job_outlook"`
	SkillsRequired    datatypes.JSON `gorm:"type:jsonb;column:skills_required" json:"skills_required"`
	RelatedCourses    datatypes.JSON `gorm:"type:jsonb;column:related_courses" json:"related_courses"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (CareerPath) TableName() string { return "career_path" }
