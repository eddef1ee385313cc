package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CourseLevelLower = "lower"
	CourseLevelUpper = "upper"
)

// ProviderCourse is one catalog entry. InResidence marks offerings from the
// degree-granting institution itself, as opposed to third-party providers.
type ProviderCourse struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Provider     string         `gorm:"column:provider;not null;index" json:"provider"`
	CourseCode   string         `gorm:"column:course_code;not null;index" json:"course_code"`
	Title        string         `gorm:"column:title;not null" json:"title"`
	Credits      int            `gorm:"column:credits;not null;default:0" json:"credits"`
	Level        string         `gorm:"column:level" json:"level,omitempty"`
	EstHours     int            `gorm:"column:est_hours;not null;default:0" json:"est_hours"`
	EstPrice     float64        `gorm:"column:est_price;not null;default:0" json:"est_price"`
	AreaTags     datatypes.JSON `gorm:"column:area_tags;type:jsonb" json:"area_tags,omitempty"`
	InResidence  bool           `gorm:"column:in_residence;not null;default:false" json:"in_residence"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProviderCourse) TableName() string { return "provider_course" }
