package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

// ErrNotFound is the shared sentinel for missing rows across all repos.
var ErrNotFound = errors.New("not found")

type DegreeTemplateRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DegreeTemplate, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.DegreeTemplate, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.DegreeTemplate, error)
}

type degreeTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDegreeTemplateRepo(db *gorm.DB, baseLog *logger.Logger) DegreeTemplateRepo {
	repoLog := baseLog.With("repo", "DegreeTemplateRepo")
	return &degreeTemplateRepo{db: db, log: repoLog}
}

func (r *degreeTemplateRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DegreeTemplate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.DegreeTemplate
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

func (r *degreeTemplateRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.DegreeTemplate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.DegreeTemplate
	if err := transaction.WithContext(ctx).
		Where("code = ?", code).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *degreeTemplateRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.DegreeTemplate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.DegreeTemplate
	if err := transaction.WithContext(ctx).
		Order("code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
