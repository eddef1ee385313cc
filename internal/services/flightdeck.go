package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/flightpath-edu/flightpath-backend/internal/clients/redis"
	"github.com/flightpath-edu/flightpath-backend/internal/config"
	"github.com/flightpath-edu/flightpath-backend/internal/flightdeck"
	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/repos"
)

const dashboardCacheTTL = 60 * time.Second

// DashboardParams are the per-request overrides for signals this service
// cannot observe itself (enrollment progress and study telemetry live with
// external collaborators). Nil means "use the assembled default".
type DashboardParams struct {
	CompletedCredits  *int
	InProgressCredits *int
	WeeklyStudyHours  *float64
}

type FlightDeckService interface {
	// GetDashboard assembles the input from persisted state and computes the
	// full dashboard payload. Pure compute; never writes.
	GetDashboard(ctx context.Context, userID, templateID uuid.UUID, params DashboardParams) (*flightdeck.Result, error)
	// Calculate runs the engine on caller-supplied input, for clients that
	// bring their own numbers.
	Calculate(input flightdeck.Input) (*flightdeck.Result, error)
}

type flightDeckService struct {
	db           *gorm.DB
	log          *logger.Logger
	cfg          *config.Config
	planRepo     repos.RoadmapPlanRepo
	stepRepo     repos.RoadmapStepRepo
	paymentRepo  repos.PaymentRecordRepo
	snapshotRepo repos.ProjectionSnapshotRepo
	redis        redisclient.Client
}

func NewFlightDeckService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cfg *config.Config,
	planRepo repos.RoadmapPlanRepo,
	stepRepo repos.RoadmapStepRepo,
	paymentRepo repos.PaymentRecordRepo,
	snapshotRepo repos.ProjectionSnapshotRepo,
	redis redisclient.Client,
) FlightDeckService {
	serviceLog := baseLog.With("service", "FlightDeckService")
	return &flightDeckService{
		db:           db,
		log:          serviceLog,
		cfg:          cfg,
		planRepo:     planRepo,
		stepRepo:     stepRepo,
		paymentRepo:  paymentRepo,
		snapshotRepo: snapshotRepo,
		redis:        redis,
	}
}

func (s *flightDeckService) constants() flightdeck.Constants {
	return flightdeck.Constants{
		CreditTarget:         s.cfg.FlightDeck.DegreeCreditTarget,
		WeeksPerMonth:        s.cfg.FlightDeck.WeeksPerMonth,
		SentinelMonths:       flightdeck.DefaultConstants().SentinelMonths,
		BudgetCeiling:        s.cfg.FlightDeck.BudgetCeiling,
		BaselineSessionCount: s.cfg.FlightDeck.BaselineSessionCount,
	}
}

func (s *flightDeckService) GetDashboard(ctx context.Context, userID, templateID uuid.UUID, params DashboardParams) (*flightdeck.Result, error) {
	cacheable := params.CompletedCredits == nil && params.InProgressCredits == nil && params.WeeklyStudyHours == nil
	cacheKey := fmt.Sprintf("flightdeck:%s:%s", userID, templateID)

	if cacheable && s.redis != nil {
		if raw, found, err := s.redis.GetCached(ctx, cacheKey); err == nil && found {
			var cached flightdeck.Result
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	input, err := s.assembleInput(ctx, userID, templateID, params)
	if err != nil {
		return nil, err
	}

	result, err := flightdeck.Calculate(*input, s.constants())
	if err != nil {
		return nil, err
	}

	if cacheable && s.redis != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.redis.SetCached(ctx, cacheKey, string(raw), dashboardCacheTTL); err != nil {
				s.log.Debug("Dashboard cache write failed", "error", err)
			}
		}
	}

	return result, nil
}

func (s *flightDeckService) Calculate(input flightdeck.Input) (*flightdeck.Result, error) {
	return flightdeck.Calculate(input, s.constants())
}

func (s *flightDeckService) assembleInput(ctx context.Context, userID, templateID uuid.UUID, params DashboardParams) (*flightdeck.Input, error) {
	plan, err := s.planRepo.GetByUserAndTemplate(ctx, nil, userID, templateID)
	if err != nil {
		return nil, err
	}
	steps, err := s.stepRepo.GetByPlanID(ctx, nil, plan.ID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	priorTotal := 0.0
	hasPrior := false
	prior, err := s.snapshotRepo.GetPrevious(ctx, nil, userID, templateID)
	switch {
	case err == nil:
		priorTotal = prior.ProjectedTotal
		hasPrior = true
	case errors.Is(err, repos.ErrNotFound):
		// first generation, no baseline yet
	default:
		return nil, err
	}

	target := float64(s.cfg.Allocation.PaceHoursPerWeek)
	completed := s.cfg.FlightDeck.DegreeCreditTarget - plan.RemainingCredits
	if completed < 0 {
		completed = 0
	}
	inProgress := 0
	weekly := target
	if params.CompletedCredits != nil {
		completed = *params.CompletedCredits
	}
	if params.InProgressCredits != nil {
		inProgress = *params.InProgressCredits
	}
	if params.WeeklyStudyHours != nil {
		weekly = *params.WeeklyStudyHours
	}

	sessionCount := 0
	providerCost := 0.0
	residenceCost := 0.0
	for _, st := range steps {
		if st.InResidence {
			sessionCount++
			residenceCost += st.EstCost
		} else {
			providerCost += st.EstCost
		}
	}

	entries := make([]flightdeck.PaymentEntry, 0, len(payments))
	for _, p := range payments {
		entries = append(entries, flightdeck.PaymentEntry{Amount: p.Amount, Kind: p.Kind})
	}

	return &flightdeck.Input{
		TargetWeeklyHours: target,
		CompletedCredits:  completed,
		InProgressCredits: inProgress,
		WeeklyStudyHours:  weekly,
		HoursPerCredit:    s.cfg.FlightDeck.HoursPerCredit,
		Financials: flightdeck.Financials{
			FeeComponents: []flightdeck.FeeComponent{
				{Label: "Provider courses", Amount: providerCost},
				{Label: "In-residence sessions", Amount: residenceCost},
			},
			SessionCount:    sessionCount,
			SessionUnitCost: s.cfg.FlightDeck.SessionUnitCost,
			ProjectedTotal:  plan.EstCost,
		},
		PriorProjectedTotal: priorTotal,
		HasPriorProjection:  hasPrior,
		Payments:            entries,
	}, nil
}
