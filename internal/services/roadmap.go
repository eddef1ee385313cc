package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/flightpath-edu/flightpath-backend/internal/clients/redis"
	"github.com/flightpath-edu/flightpath-backend/internal/config"
	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/repos"
	"github.com/flightpath-edu/flightpath-backend/internal/roadmap"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

// ErrGenerationInProgress means another regeneration currently holds the
// lock for the same (user, template) pair.
var ErrGenerationInProgress = errors.New("roadmap generation already in progress")

const generationLockTTL = 30 * time.Second

type GenerateOptions struct {
	PaceHoursPerWeek int
	PaceMonths       int
}

type PlanSummary struct {
	TotalCredits      int     `json:"totalCredits"`
	TotalCost         float64 `json:"totalCost"`
	EstMonths         int     `json:"estMonths"`
	UpperLevelCredits int     `json:"upperLevelCredits"`
	ResidencyCredits  int     `json:"residencyCredits"`
	RemainingCredits  int     `json:"remainingCredits"`
}

type StepView struct {
	StepIndex int     `json:"step_index"`
	ItemType  string  `json:"item_type"`
	RefCode   string  `json:"ref_code"`
	Title     string  `json:"title"`
	Credits   int     `json:"credits"`
	EstCost   float64 `json:"est_cost"`
	EstWeeks  int     `json:"est_weeks"`
}

type FeeComponentView struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type FinancialsView struct {
	FeeComponents   []FeeComponentView `json:"fee_components"`
	SessionCount    int                `json:"session_count"`
	SessionUnitCost float64            `json:"session_unit_cost"`
	ProjectedTotal  float64            `json:"projected_total"`
}

type GenerateOutput struct {
	PlanID     uuid.UUID      `json:"plan_id"`
	Version    int            `json:"version"`
	Summary    PlanSummary    `json:"summary"`
	Steps      []StepView     `json:"steps"`
	Financials FinancialsView `json:"financials"`
}

type PlanView struct {
	Plan  *types.RoadmapPlan   `json:"plan"`
	Steps []*types.RoadmapStep `json:"steps"`
}

type RoadmapService interface {
	// Generate runs the full allocation pipeline and persists the result.
	// Concurrent calls for the same (user, template) are serialized; losers
	// get ErrGenerationInProgress.
	Generate(ctx context.Context, userID, templateID uuid.UUID, opts GenerateOptions) (*GenerateOutput, error)
	GetPlan(ctx context.Context, userID, templateID uuid.UUID) (*PlanView, error)
}

type roadmapService struct {
	db             *gorm.DB
	log            *logger.Logger
	cfg            *config.Config
	catalogService CatalogService
	planRepo       repos.RoadmapPlanRepo
	stepRepo       repos.RoadmapStepRepo
	snapshotRepo   repos.ProjectionSnapshotRepo
	redis          redisclient.Client

	// localLocks backs the lock when redis is down; it only protects a
	// single process, which is the degraded-mode tradeoff we accept.
	localLocks sync.Map
}

func NewRoadmapService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg *config.Config,
	catalogService CatalogService,
	planRepo repos.RoadmapPlanRepo,
	stepRepo repos.RoadmapStepRepo,
	snapshotRepo repos.ProjectionSnapshotRepo,
	redis redisclient.Client,
) RoadmapService {
	serviceLog := baseLog.With("service", "RoadmapService")
	return &roadmapService{
		db:             db,
		log:            serviceLog,
		cfg:            cfg,
		catalogService: catalogService,
		planRepo:       planRepo,
		stepRepo:       stepRepo,
		snapshotRepo:   snapshotRepo,
		redis:          redis,
	}
}

func (s *roadmapService) Generate(ctx context.Context, userID, templateID uuid.UUID, opts GenerateOptions) (*GenerateOutput, error) {
	if userID == uuid.Nil || templateID == uuid.Nil {
		return nil, fmt.Errorf("user and template are required: %w", repos.ErrNotFound)
	}

	lockKey := fmt.Sprintf("roadmap:gen:%s:%s", userID, templateID)
	release, err := s.acquireLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer release()

	cat, err := s.catalogService.LoadSnapshot(ctx, nil, templateID)
	if err != nil {
		return nil, err
	}

	pace := opts.PaceHoursPerWeek
	if pace <= 0 {
		pace = s.cfg.Allocation.PaceHoursPerWeek
	}

	result, err := roadmap.Generate(*cat, roadmap.Options{
		PriorityOrder:    s.cfg.Allocation.AreaPriority,
		CeilingSlack:     s.cfg.Allocation.CreditCeilingSlack,
		PaceHoursPerWeek: pace,
	})
	if err != nil {
		s.log.Warn("Roadmap generation failed before persistence",
			"error", err, "user_id", userID, "template_id", templateID)
		return nil, err
	}

	var plan *types.RoadmapPlan
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.planRepo.GetByUserAndTemplateForUpdate(ctx, tx, userID, templateID)
		switch {
		case err == nil:
			plan = existing
			plan.Version++
			if err := s.stepRepo.DeleteByPlanID(ctx, tx, plan.ID); err != nil {
				return fmt.Errorf("delete prior steps: %w", err)
			}
		case errors.Is(err, repos.ErrNotFound):
			plan = &types.RoadmapPlan{
				ID:         uuid.New(),
				UserID:     userID,
				TemplateID: templateID,
				Version:    1,
			}
			if err := s.planRepo.Create(ctx, tx, plan); err != nil {
				return fmt.Errorf("create plan: %w", err)
			}
		default:
			return fmt.Errorf("load plan: %w", err)
		}

		plan.Status = types.PlanStatusActive
		plan.TotalCredits = result.TotalCredits
		plan.RemainingCredits = result.RemainingCredits
		plan.UpperLevelCredits = result.UpperLevelCredits
		plan.ResidencyCredits = result.ResidencyCredits
		plan.EstCost = result.EstCost
		plan.EstMonths = result.EstMonths
		if err := s.planRepo.Update(ctx, tx, plan); err != nil {
			return fmt.Errorf("update plan: %w", err)
		}

		rows := make([]*types.RoadmapStep, 0, len(result.Steps))
		for i, st := range result.Steps {
			rows = append(rows, &types.RoadmapStep{
				ID:          uuid.New(),
				PlanID:      plan.ID,
				StepIndex:   i + 1,
				ItemType:    st.ItemType,
				RefCode:     st.RefCode,
				Title:       st.Title,
				Credits:     st.Credits,
				EstCost:     st.EstCost,
				EstWeeks:    result.StepWeeks[i],
				UpperLevel:  st.UpperLevel,
				InResidence: st.InResidence,
				AreaCode:    st.AreaCode,
			})
		}
		if _, err := s.stepRepo.Create(ctx, tx, rows); err != nil {
			return fmt.Errorf("insert steps: %w", err)
		}

		snapshot := &types.ProjectionSnapshot{
			ID:             uuid.New(),
			UserID:         userID,
			TemplateID:     templateID,
			ProjectedTotal: result.EstCost,
			RecordedAt:     time.Now(),
		}
		if err := s.snapshotRepo.Create(ctx, tx, snapshot); err != nil {
			return fmt.Errorf("record projection snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Roadmap generated",
		"user_id", userID, "template_id", templateID,
		"version", plan.Version, "steps", len(result.Steps),
		"total_credits", result.TotalCredits)

	return s.buildOutput(plan, result), nil
}

func (s *roadmapService) GetPlan(ctx context.Context, userID, templateID uuid.UUID) (*PlanView, error) {
	plan, err := s.planRepo.GetByUserAndTemplate(ctx, nil, userID, templateID)
	if err != nil {
		return nil, err
	}
	steps, err := s.stepRepo.GetByPlanID(ctx, nil, plan.ID)
	if err != nil {
		return nil, err
	}
	return &PlanView{Plan: plan, Steps: steps}, nil
}

func (s *roadmapService) buildOutput(plan *types.RoadmapPlan, result *roadmap.Result) *GenerateOutput {
	steps := make([]StepView, 0, len(result.Steps))
	sessionCount := 0
	providerCost := 0.0
	residenceCost := 0.0
	for i, st := range result.Steps {
		steps = append(steps, StepView{
			StepIndex: i + 1,
			ItemType:  st.ItemType,
			RefCode:   st.RefCode,
			Title:     st.Title,
			Credits:   st.Credits,
			EstCost:   st.EstCost,
			EstWeeks:  result.StepWeeks[i],
		})
		if st.InResidence {
			sessionCount++
			residenceCost += st.EstCost
		} else {
			providerCost += st.EstCost
		}
	}

	fees := []FeeComponentView{
		{Label: "Provider courses", Amount: providerCost},
		{Label: "In-residence sessions", Amount: residenceCost},
	}

	return &GenerateOutput{
		PlanID:  plan.ID,
		Version: plan.Version,
		Summary: PlanSummary{
			TotalCredits:      result.TotalCredits,
			TotalCost:         result.EstCost,
			EstMonths:         result.EstMonths,
			UpperLevelCredits: result.UpperLevelCredits,
			ResidencyCredits:  result.ResidencyCredits,
			RemainingCredits:  result.RemainingCredits,
		},
		Steps: steps,
		Financials: FinancialsView{
			FeeComponents:   fees,
			SessionCount:    sessionCount,
			SessionUnitCost: s.cfg.FlightDeck.SessionUnitCost,
			ProjectedTotal:  result.EstCost,
		},
	}
}

// acquireLock prefers the shared redis lock; with redis down it degrades to a
// per-process keyed mutex and logs the degradation once per call.
func (s *roadmapService) acquireLock(ctx context.Context, key string) (func(), error) {
	if s.redis != nil {
		ok, err := s.redis.AcquireLock(ctx, key, generationLockTTL)
		if err == nil {
			if !ok {
				return nil, ErrGenerationInProgress
			}
			return func() {
				if err := s.redis.ReleaseLock(context.Background(), key); err != nil {
					s.log.Warn("Failed to release generation lock", "key", key, "error", err)
				}
			}, nil
		}
		s.log.Warn("Redis lock unavailable, falling back to local lock", "error", err)
	}

	muIface, _ := s.localLocks.LoadOrStore(key, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, ErrGenerationInProgress
	}
	return mu.Unlock, nil
}
