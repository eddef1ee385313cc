package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

type RoadmapStepRepo interface {
	GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.RoadmapStep, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapStep) ([]*types.RoadmapStep, error)
	// DeleteByPlanID is a hard delete: steps are replaced wholesale on every
	// regeneration and stale rows would collide with the (plan, index) unique key.
	DeleteByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error
}

type roadmapStepRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapStepRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapStepRepo {
	repoLog := baseLog.With("repo", "RoadmapStepRepo")
	return &roadmapStepRepo{db: db, log: repoLog}
}

func (r *roadmapStepRepo) GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.RoadmapStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RoadmapStep
	if planID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("step_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *roadmapStepRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapStep) ([]*types.RoadmapStep, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.RoadmapStep{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *roadmapStepRepo) DeleteByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if planID == uuid.Nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("plan_id = ?", planID).
		Delete(&types.RoadmapStep{}).Error; err != nil {
		return err
	}
	return nil
}
