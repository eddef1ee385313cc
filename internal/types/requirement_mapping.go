package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequirementMapping associates catalog courses with a requirement area via
// code pattern, title keywords, or provider allow-list. A course matches the
// area if any mapping's pattern/keyword test passes AND it clears every
// mapping's provider filter.
type RequirementMapping struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AreaID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"area_id"`
	Area              *RequirementArea `gorm:"constraint:OnDelete:CASCADE;foreignKey:AreaID;references:ID" json:"area,omitempty"`
	CourseCodePattern string           `gorm:"column:course_code_pattern" json:"course_code_pattern,omitempty"`
	TitleKeywords     datatypes.JSON   `gorm:"column:title_keywords;type:jsonb" json:"title_keywords,omitempty"`
	ProviderFilter    datatypes.JSON   `gorm:"column:provider_filter;type:jsonb" json:"provider_filter,omitempty"`
	FulfilledCredits  int              `gorm:"column:fulfilled_credits;not null;default:0" json:"fulfilled_credits"`
	LevelFilter       string           `gorm:"column:level_filter" json:"level_filter,omitempty"`
	CreatedAt         time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (RequirementMapping) TableName() string { return "requirement_mapping" }
