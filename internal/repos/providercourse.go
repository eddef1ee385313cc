package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

type ProviderCourseRepo interface {
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ProviderCourse, error)
	GetByCode(ctx context.Context, tx *gorm.DB, courseCode string) (*types.ProviderCourse, error)
}

type providerCourseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProviderCourseRepo(db *gorm.DB, baseLog *logger.Logger) ProviderCourseRepo {
	repoLog := baseLog.With("repo", "ProviderCourseRepo")
	return &providerCourseRepo{db: db, log: repoLog}
}

func (r *providerCourseRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ProviderCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ProviderCourse
	if err := transaction.WithContext(ctx).
		Order("course_code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *providerCourseRepo) GetByCode(ctx context.Context, tx *gorm.DB, courseCode string) (*types.ProviderCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ProviderCourse
	if err := transaction.WithContext(ctx).
		Where("course_code = ?", courseCode).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}
