package types

import (
	"time"

	"github.com/google/uuid"
)

// ProjectionSnapshot records the projected total cost at generation time.
// The flight deck trend calculation compares the live projection against the
// most recent prior snapshot.
type ProjectionSnapshot struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_snapshot_user_template" json:"user_id"`
	TemplateID     uuid.UUID `gorm:"type:uuid;not null;index:idx_snapshot_user_template" json:"template_id"`
	ProjectedTotal float64   `gorm:"column:projected_total;not null;default:0" json:"projected_total"`
	RecordedAt     time.Time `gorm:"column:recorded_at;not null;default:now()" json:"recorded_at"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ProjectionSnapshot) TableName() string { return "projection_snapshot" }
