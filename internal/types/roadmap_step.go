package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	StepItemProviderCourse     = "provider_course"
	StepItemInResidenceSession = "in_residence_session"
)

// RoadmapStep is one ordered entry of a plan. Steps are replaced wholesale on
// every regeneration, never patched, so there is no soft delete here.
type RoadmapStep struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PlanID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_plan_step,unique" json:"plan_id"`
	Plan        *RoadmapPlan `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	StepIndex   int          `gorm:"column:step_index;not null;index:idx_plan_step,unique" json:"step_index"`
	ItemType    string       `gorm:"column:item_type;not null" json:"item_type"`
	RefCode     string       `gorm:"column:ref_code;not null" json:"ref_code"`
	Title       string       `gorm:"column:title;not null" json:"title"`
	Credits     int          `gorm:"column:credits;not null;default:0" json:"credits"`
	EstCost     float64      `gorm:"column:est_cost;not null;default:0" json:"est_cost"`
	EstWeeks    int          `gorm:"column:est_weeks;not null;default:0" json:"est_weeks"`
	UpperLevel  bool         `gorm:"column:upper_level;not null;default:false" json:"upper_level"`
	InResidence bool         `gorm:"column:in_residence;not null;default:false" json:"in_residence"`
	AreaCode    string       `gorm:"column:area_code" json:"area_code,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (RoadmapStep) TableName() string { return "roadmap_step" }
