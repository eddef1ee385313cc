package types

import (
	"time"

	"github.com/google/uuid"
)

// DegreeTemplate is immutable reference data describing one degree program
// variant and the policy minimums a generated roadmap must satisfy.
type DegreeTemplate struct {
	ID                    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code                  string    `gorm:"column:code;not null;uniqueIndex" json:"code"`
	Name                  string    `gorm:"column:name;not null" json:"name"`
	TotalCreditTarget     int       `gorm:"column:total_credit_target;not null;default:120" json:"total_credit_target"`
	MinUpperLevelCredits  int       `gorm:"column:min_upper_level_credits;not null;default:0" json:"min_upper_level_credits"`
	MinResidencyCredits   int       `gorm:"column:min_residency_credits;not null;default:0" json:"min_residency_credits"`
	CapstoneCode          string    `gorm:"column:capstone_code" json:"capstone_code,omitempty"`
	CreatedAt             time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DegreeTemplate) TableName() string { return "degree_template" }
