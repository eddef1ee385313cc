package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

type PaymentRecordRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.PaymentRecord, error)
}

type paymentRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaymentRecordRepo(db *gorm.DB, baseLog *logger.Logger) PaymentRecordRepo {
	repoLog := baseLog.With("repo", "PaymentRecordRepo")
	return &paymentRecordRepo{db: db, log: repoLog}
}

func (r *paymentRecordRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.PaymentRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.PaymentRecord
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("paid_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
