package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

type RoadmapPlanRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RoadmapPlan, error)
	GetByUserAndTemplate(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.RoadmapPlan, error)
	// GetByUserAndTemplateForUpdate takes a row lock so concurrent
	// regenerations of the same plan serialize inside the transaction.
	GetByUserAndTemplateForUpdate(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.RoadmapPlan, error)
	Create(ctx context.Context, tx *gorm.DB, row *types.RoadmapPlan) error
	Update(ctx context.Context, tx *gorm.DB, row *types.RoadmapPlan) error
}

type roadmapPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapPlanRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapPlanRepo {
	repoLog := baseLog.With("repo", "RoadmapPlanRepo")
	return &roadmapPlanRepo{db: db, log: repoLog}
}

func (r *roadmapPlanRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.RoadmapPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.RoadmapPlan
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *roadmapPlanRepo) GetByUserAndTemplate(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.RoadmapPlan, error) {
	return r.getByUserAndTemplate(ctx, tx, userID, templateID, false)
}

func (r *roadmapPlanRepo) GetByUserAndTemplateForUpdate(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID) (*types.RoadmapPlan, error) {
	return r.getByUserAndTemplate(ctx, tx, userID, templateID, true)
}

func (r *roadmapPlanRepo) getByUserAndTemplate(ctx context.Context, tx *gorm.DB, userID, templateID uuid.UUID, forUpdate bool) (*types.RoadmapPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Where("user_id = ? AND template_id = ?", userID, templateID)
	if forUpdate && transaction.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var result types.RoadmapPlan
	if err := query.First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *roadmapPlanRepo) Create(ctx context.Context, tx *gorm.DB, row *types.RoadmapPlan) error {
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

func (r *roadmapPlanRepo) Update(ctx context.Context, tx *gorm.DB, row *types.RoadmapPlan) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	if err := transaction.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	return nil
}
