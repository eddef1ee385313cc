package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanStatusActive = "active"
)

// RoadmapPlan is the persisted allocation for one (user, template) pair.
// Regeneration updates the row in place and bumps Version; the composite
// unique index guarantees the pair never duplicates.
type RoadmapPlan struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_user_template,unique" json:"user_id"`
	User              *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TemplateID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_user_template,unique" json:"template_id"`
	Template          *DegreeTemplate `gorm:"constraint:OnDelete:CASCADE;foreignKey:TemplateID;references:ID" json:"template,omitempty"`
	Status            string          `gorm:"column:status;not null;default:'active'" json:"status"`
	TotalCredits      int             `gorm:"column:total_credits;not null;default:0" json:"total_credits"`
	RemainingCredits  int             `gorm:"column:remaining_credits;not null;default:0" json:"remaining_credits"`
	UpperLevelCredits int             `gorm:"column:upper_level_credits;not null;default:0" json:"upper_level_credits"`
	ResidencyCredits  int             `gorm:"column:residency_credits;not null;default:0" json:"residency_credits"`
	EstCost           float64         `gorm:"column:est_cost;not null;default:0" json:"est_cost"`
	EstMonths         int             `gorm:"column:est_months;not null;default:0" json:"est_months"`
	Version           int             `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt         time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (RoadmapPlan) TableName() string { return "roadmap_plan" }
