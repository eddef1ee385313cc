package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentRecord is one ledger entry. Rows are written by the external payment
// pipeline; this service only reads them to compute paid-to-date.
type PaymentRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Amount    float64        `gorm:"column:amount;not null;default:0" json:"amount"`
	Kind      string         `gorm:"column:kind" json:"kind,omitempty"`
	Note      string         `gorm:"column:note" json:"note,omitempty"`
	Metadata  datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
	PaidAt    time.Time      `gorm:"column:paid_at;not null;default:now()" json:"paid_at"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (PaymentRecord) TableName() string { return "payment_record" }
