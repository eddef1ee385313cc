package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

type ProjectionSnapshotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ProjectionSnapshot) error
	// GetLatest returns the most recent snapshot for the pair, or ErrNotFound
	// when no generation has run yet.
	GetLatest(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.ProjectionSnapshot, error)
	// GetPrevious returns the snapshot before the latest one, used as the
	// trend comparison baseline.
	GetPrevious(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.ProjectionSnapshot, error)
}

type projectionSnapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectionSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) ProjectionSnapshotRepo {
	repoLog := baseLog.With("repo", "ProjectionSnapshotRepo")
	return &projectionSnapshotRepo{db: db, log: repoLog}
}

func (r *projectionSnapshotRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ProjectionSnapshot) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	return nil
}

func (r *projectionSnapshotRepo) GetLatest(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.ProjectionSnapshot, error) {
	return r.getNth(ctx, tx, userID, templateID, 0)
}

func (r *projectionSnapshotRepo) GetPrevious(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.ProjectionSnapshot, error) {
	return r.getNth(ctx, tx, userID, templateID, 1)
}

func (r *projectionSnapshotRepo) getNth(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID, offset int) (*types.ProjectionSnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ProjectionSnapshot
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND template_id = ?", userID, templateID).
		Order("recorded_at DESC").
		Offset(offset).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}
