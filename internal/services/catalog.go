package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/repos"
	"github.com/flightpath-edu/flightpath-backend/internal/roadmap"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

// CatalogService assembles the immutable snapshot a generation run consumes.
// All row-shape validation (tag lists, provider filters, code patterns)
// happens here, at the store boundary, so the allocator never sees a
// malformed value.
type CatalogService interface {
	LoadSnapshot(ctx context.Context, tx *gorm.DB, templateID uuid.UUID) (*roadmap.Catalog, error)
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	templateRepo repos.DegreeTemplateRepo
	areaRepo     repos.RequirementAreaRepo
	mappingRepo  repos.RequirementMappingRepo
	courseRepo   repos.ProviderCourseRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	templateRepo repos.DegreeTemplateRepo,
	areaRepo repos.RequirementAreaRepo,
	mappingRepo repos.RequirementMappingRepo,
	courseRepo repos.ProviderCourseRepo,
) CatalogService {
	serviceLog := baseLog.With("service", "CatalogService")
	return &catalogService{
		db:           db,
		log:          serviceLog,
		templateRepo: templateRepo,
		areaRepo:     areaRepo,
		mappingRepo:  mappingRepo,
		courseRepo:   courseRepo,
	}
}

func (s *catalogService) LoadSnapshot(ctx context.Context, tx *gorm.DB, templateID uuid.UUID) (*roadmap.Catalog, error) {
	var (
		template *types.DegreeTemplate
		areas    []*types.RequirementArea
		courses  []*types.ProviderCourse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		template, err = s.templateRepo.GetByID(gctx, tx, templateID)
		if err != nil {
			return fmt.Errorf("load template: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		areas, err = s.areaRepo.GetByTemplateID(gctx, tx, templateID)
		if err != nil {
			return fmt.Errorf("load requirement areas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		courses, err = s.courseRepo.ListAll(gctx, tx)
		if err != nil {
			return fmt.Errorf("load provider catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(areas) == 0 {
		return nil, fmt.Errorf("template %s has no requirement areas: %w", templateID, repos.ErrNotFound)
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("provider catalog is empty: %w", repos.ErrNotFound)
	}

	areaIDs := make([]uuid.UUID, 0, len(areas))
	for _, a := range areas {
		areaIDs = append(areaIDs, a.ID)
	}
	mappingRows, err := s.mappingRepo.GetByAreaIDs(ctx, tx, areaIDs)
	if err != nil {
		return nil, fmt.Errorf("load requirement mappings: %w", err)
	}

	cat := &roadmap.Catalog{
		Template: roadmap.Template{
			ID:                   template.ID,
			Code:                 template.Code,
			TotalCreditTarget:    template.TotalCreditTarget,
			MinUpperLevelCredits: template.MinUpperLevelCredits,
			MinResidencyCredits:  template.MinResidencyCredits,
			CapstoneCode:         template.CapstoneCode,
		},
		Mappings: map[uuid.UUID][]roadmap.Mapping{},
	}

	for _, a := range areas {
		cat.Areas = append(cat.Areas, roadmap.Area{
			ID:              a.ID,
			Code:            a.AreaCode,
			Name:            a.Name,
			RequiredCredits: a.RequiredCredits,
		})
	}

	for _, m := range mappingRows {
		pattern, err := roadmap.CompileCodePattern(m.CourseCodePattern)
		if err != nil {
			return nil, fmt.Errorf("mapping %s has invalid course code pattern %q: %w", m.ID, m.CourseCodePattern, err)
		}
		keywords, err := decodeStringList(m.TitleKeywords)
		if err != nil {
			return nil, fmt.Errorf("mapping %s has invalid title keywords: %w", m.ID, err)
		}
		providers, err := decodeStringList(m.ProviderFilter)
		if err != nil {
			return nil, fmt.Errorf("mapping %s has invalid provider filter: %w", m.ID, err)
		}
		cat.Mappings[m.AreaID] = append(cat.Mappings[m.AreaID], roadmap.Mapping{
			AreaID:           m.AreaID,
			Pattern:          pattern,
			TitleKeywords:    keywords,
			Providers:        providers,
			FulfilledCredits: m.FulfilledCredits,
			LevelFilter:      m.LevelFilter,
		})
	}

	for _, c := range courses {
		tags, err := decodeStringList(c.AreaTags)
		if err != nil {
			return nil, fmt.Errorf("course %s has invalid area tags: %w", c.CourseCode, err)
		}
		cat.Courses = append(cat.Courses, roadmap.Course{
			ID:          c.ID,
			Provider:    c.Provider,
			Code:        c.CourseCode,
			Title:       c.Title,
			Credits:     c.Credits,
			Level:       c.Level,
			EstHours:    c.EstHours,
			EstPrice:    c.EstPrice,
			AreaTags:    tags,
			InResidence: c.InResidence,
		})
	}

	return cat, nil
}

func decodeStringList(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
