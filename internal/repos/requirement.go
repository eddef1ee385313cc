package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

type RequirementAreaRepo interface {
	GetByTemplateID(ctx context.Context, tx *gorm.DB, templateID uuid.UUID) ([]*types.RequirementArea, error)
}

type requirementAreaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRequirementAreaRepo(db *gorm.DB, baseLog *logger.Logger) RequirementAreaRepo {
	repoLog := baseLog.With("repo", "RequirementAreaRepo")
	return &requirementAreaRepo{db: db, log: repoLog}
}

func (r *requirementAreaRepo) GetByTemplateID(ctx context.Context, tx *gorm.DB, templateID uuid.UUID) ([]*types.RequirementArea, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RequirementArea
	if templateID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("area_code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type RequirementMappingRepo interface {
	GetByAreaIDs(ctx context.Context, tx *gorm.DB, areaIDs []uuid.UUID) ([]*types.RequirementMapping, error)
}

type requirementMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRequirementMappingRepo(db *gorm.DB, baseLog *logger.Logger) RequirementMappingRepo {
	repoLog := baseLog.With("repo", "RequirementMappingRepo")
	return &requirementMappingRepo{db: db, log: repoLog}
}

func (r *requirementMappingRepo) GetByAreaIDs(ctx context.Context, tx *gorm.DB, areaIDs []uuid.UUID) ([]*types.RequirementMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RequirementMapping
	if len(areaIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("area_id IN ?", areaIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
