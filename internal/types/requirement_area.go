package types

import (
	"time"

	"github.com/google/uuid"
)

// RequirementArea is one bucket of credits a template requires (gen-ed
// subarea, major core, electives). Allocation order comes from the configured
// priority list, not from this row.
type RequirementArea struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TemplateID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"template_id"`
	Template        *DegreeTemplate `gorm:"constraint:OnDelete:CASCADE;foreignKey:TemplateID;references:ID" json:"template,omitempty"`
	AreaCode        string          `gorm:"column:area_code;not null;index" json:"area_code"`
	Name            string          `gorm:"column:name;not null" json:"name"`
	RequiredCredits int             `gorm:"column:required_credits;not null;default:0" json:"required_credits"`
	CreatedAt       time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (RequirementArea) TableName() string { return "requirement_area" }
