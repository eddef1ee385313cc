package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/flightpath-edu/flightpath-backend/internal/config"
	"github.com/flightpath-edu/flightpath-backend/internal/flightdeck"
	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/repos"
	"github.com/flightpath-edu/flightpath-backend/internal/types"
)

// testSchema mirrors the production models without the postgres-only uuid
// defaults; all test rows carry explicit IDs.
var testSchema = []string{
	`CREATE TABLE degree_template (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		total_credit_target INTEGER NOT NULL DEFAULT 120,
		min_upper_level_credits INTEGER NOT NULL DEFAULT 0,
		min_residency_credits INTEGER NOT NULL DEFAULT 0,
		capstone_code TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE requirement_area (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		area_code TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		required_credits INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE requirement_mapping (
		id TEXT PRIMARY KEY,
		area_id TEXT NOT NULL,
		course_code_pattern TEXT,
		title_keywords TEXT,
		provider_filter TEXT,
		fulfilled_credits INTEGER NOT NULL DEFAULT 0,
		level_filter TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE provider_course (
		id TEXT PRIMARY KEY,
		provider TEXT NOT NULL,
		course_code TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		credits INTEGER NOT NULL DEFAULT 0,
		level TEXT,
		est_hours INTEGER NOT NULL DEFAULT 0,
		est_price REAL NOT NULL DEFAULT 0,
		area_tags TEXT,
		in_residence BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE roadmap_plan (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		template_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		total_credits INTEGER NOT NULL DEFAULT 0,
		remaining_credits INTEGER NOT NULL DEFAULT 0,
		upper_level_credits INTEGER NOT NULL DEFAULT 0,
		residency_credits INTEGER NOT NULL DEFAULT 0,
		est_cost REAL NOT NULL DEFAULT 0,
		est_months INTEGER NOT NULL DEFAULT 0,
		version INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, template_id)
	)`,
	`CREATE TABLE roadmap_step (
		id TEXT PRIMARY KEY,
		plan_id TEXT NOT NULL,
		step_index INTEGER NOT NULL,
		item_type TEXT NOT NULL,
		ref_code TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		credits INTEGER NOT NULL DEFAULT 0,
		est_cost REAL NOT NULL DEFAULT 0,
		est_weeks INTEGER NOT NULL DEFAULT 0,
		upper_level BOOLEAN NOT NULL DEFAULT 0,
		in_residence BOOLEAN NOT NULL DEFAULT 0,
		area_code TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (plan_id, step_index)
	)`,
	`CREATE TABLE payment_record (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		kind TEXT,
		note TEXT,
		metadata TEXT,
		paid_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE projection_snapshot (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		template_id TEXT NOT NULL,
		projected_total REAL NOT NULL DEFAULT 0,
		recorded_at DATETIME,
		created_at DATETIME
	)`,
}

type serviceFixture struct {
	db         *gorm.DB
	cfg        *config.Config
	roadmaps   RoadmapService
	flightDeck FlightDeckService
	userID     uuid.UUID
	templateID uuid.UUID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// One connection keeps the shared in-memory database alive and
	// serializes the catalog loader's parallel reads.
	sqlDB.SetMaxOpenConns(1)
	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	cfg := config.Default()
	cfg.FlightDeck.DegreeCreditTarget = 12
	cfg.FlightDeck.BudgetCeiling = 5000

	templateRepo := repos.NewDegreeTemplateRepo(db, log)
	areaRepo := repos.NewRequirementAreaRepo(db, log)
	mappingRepo := repos.NewRequirementMappingRepo(db, log)
	courseRepo := repos.NewProviderCourseRepo(db, log)
	planRepo := repos.NewRoadmapPlanRepo(db, log)
	stepRepo := repos.NewRoadmapStepRepo(db, log)
	paymentRepo := repos.NewPaymentRecordRepo(db, log)
	snapshotRepo := repos.NewProjectionSnapshotRepo(db, log)

	catalogService := NewCatalogService(db, log, templateRepo, areaRepo, mappingRepo, courseRepo)

	fx := &serviceFixture{
		db:         db,
		cfg:        cfg,
		roadmaps:   NewRoadmapService(db, log, cfg, catalogService, planRepo, stepRepo, snapshotRepo, nil),
		flightDeck: NewFlightDeckService(db, log, cfg, planRepo, stepRepo, paymentRepo, snapshotRepo, nil),
		userID:     uuid.New(),
		templateID: uuid.New(),
	}
	fx.seed(t)
	return fx
}

func (fx *serviceFixture) seed(t *testing.T) {
	t.Helper()

	template := &types.DegreeTemplate{
		ID:                   fx.templateID,
		Code:                 "BSBA-TEST",
		Name:                 "Business Administration",
		TotalCreditTarget:    12,
		MinUpperLevelCredits: 3,
		MinResidencyCredits:  3,
		CapstoneCode:         "CAP-400",
	}
	if err := fx.db.Create(template).Error; err != nil {
		t.Fatalf("seed template: %v", err)
	}

	sciArea := &types.RequirementArea{
		ID: uuid.New(), TemplateID: fx.templateID,
		AreaCode: "GEN_SCI", Name: "Natural Sciences", RequiredCredits: 6,
	}
	elecArea := &types.RequirementArea{
		ID: uuid.New(), TemplateID: fx.templateID,
		AreaCode: "ELECTIVE", Name: "Electives", RequiredCredits: 3,
	}
	if err := fx.db.Create([]*types.RequirementArea{sciArea, elecArea}).Error; err != nil {
		t.Fatalf("seed areas: %v", err)
	}

	mapping := &types.RequirementMapping{
		ID:                uuid.New(),
		AreaID:            sciArea.ID,
		CourseCodePattern: `^SCI-`,
		TitleKeywords:     datatypes.JSON([]byte(`["science"]`)),
	}
	if err := fx.db.Create(mapping).Error; err != nil {
		t.Fatalf("seed mapping: %v", err)
	}

	courses := []*types.ProviderCourse{
		{ID: uuid.New(), Provider: "Sophia", CourseCode: "SCI-101", Title: "Biology", Credits: 3, Level: "lower", EstHours: 45, EstPrice: 300, AreaTags: datatypes.JSON([]byte(`["GEN_SCI"]`))},
		{ID: uuid.New(), Provider: "Sophia", CourseCode: "SCI-102", Title: "Chemistry", Credits: 3, Level: "lower", EstHours: 60, EstPrice: 200, AreaTags: datatypes.JSON([]byte(`["GEN_SCI"]`))},
		{ID: uuid.New(), Provider: "Study.com", CourseCode: "EL-101", Title: "Public Speaking", Credits: 3, Level: "lower", EstHours: 30, EstPrice: 100, AreaTags: datatypes.JSON([]byte(`["ELECTIVE"]`))},
		{ID: uuid.New(), Provider: "University", CourseCode: "CAP-400", Title: "Capstone", Credits: 3, Level: "upper", InResidence: true, EstHours: 45, EstPrice: 1500, AreaTags: datatypes.JSON([]byte(`["MAJOR_CAPSTONE"]`))},
	}
	if err := fx.db.Create(courses).Error; err != nil {
		t.Fatalf("seed courses: %v", err)
	}
}

func TestRoadmapServiceGenerateAndRegenerate(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	out, err := fx.roadmaps.Generate(ctx, fx.userID, fx.templateID, GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Version != 1 {
		t.Fatalf("Version = %d, want 1", out.Version)
	}
	if out.Summary.TotalCredits != 12 || out.Summary.UpperLevelCredits != 3 || out.Summary.ResidencyCredits != 3 {
		t.Fatalf("summary = %+v, want 12/3/3", out.Summary)
	}
	if out.Summary.TotalCost != 2100 {
		t.Fatalf("TotalCost = %.0f, want 2100", out.Summary.TotalCost)
	}
	if len(out.Steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(out.Steps))
	}
	if out.Financials.SessionCount != 1 {
		t.Fatalf("SessionCount = %d, want 1 (the capstone)", out.Financials.SessionCount)
	}

	again, err := fx.roadmaps.Generate(ctx, fx.userID, fx.templateID, GenerateOptions{})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if again.Version != 2 {
		t.Fatalf("Version after regenerate = %d, want 2", again.Version)
	}
	if again.PlanID != out.PlanID {
		t.Fatalf("regeneration created a new plan row: %s vs %s", again.PlanID, out.PlanID)
	}

	var planCount int64
	if err := fx.db.Model(&types.RoadmapPlan{}).Count(&planCount).Error; err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if planCount != 1 {
		t.Fatalf("plan rows = %d, want 1", planCount)
	}

	var steps []*types.RoadmapStep
	if err := fx.db.Where("plan_id = ?", out.PlanID).Order("step_index ASC").Find(&steps).Error; err != nil {
		t.Fatalf("load steps: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("step rows after regenerate = %d, want 4 (replaced, not appended)", len(steps))
	}
	for i, st := range steps {
		if st.StepIndex != i+1 {
			t.Fatalf("step index %d at position %d, want contiguous 1-based order", st.StepIndex, i)
		}
	}

	var snapshotCount int64
	if err := fx.db.Model(&types.ProjectionSnapshot{}).Count(&snapshotCount).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if snapshotCount != 2 {
		t.Fatalf("snapshot rows = %d, want one per generation", snapshotCount)
	}
}

func TestRoadmapServiceGetPlan(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	if _, err := fx.roadmaps.Generate(ctx, fx.userID, fx.templateID, GenerateOptions{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	view, err := fx.roadmaps.GetPlan(ctx, fx.userID, fx.templateID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if view.Plan.Status != types.PlanStatusActive {
		t.Fatalf("Status = %s, want active", view.Plan.Status)
	}
	if len(view.Steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(view.Steps))
	}

	if _, err := fx.roadmaps.GetPlan(ctx, fx.userID, uuid.New()); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("unknown template err = %v, want ErrNotFound", err)
	}
}

func TestRoadmapServiceUnknownTemplate(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.roadmaps.Generate(context.Background(), fx.userID, uuid.New(), GenerateOptions{})
	if !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRoadmapServiceLocalLockSerializes(t *testing.T) {
	fx := newServiceFixture(t)
	svc := fx.roadmaps.(*roadmapService)

	release, err := svc.acquireLock(context.Background(), "roadmap:gen:test")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if _, err := svc.acquireLock(context.Background(), "roadmap:gen:test"); !errors.Is(err, ErrGenerationInProgress) {
		t.Fatalf("second acquire err = %v, want ErrGenerationInProgress", err)
	}
	release()
	release2, err := svc.acquireLock(context.Background(), "roadmap:gen:test")
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	release2()
}

func TestFlightDeckServiceGetDashboard(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	if _, err := fx.roadmaps.Generate(ctx, fx.userID, fx.templateID, GenerateOptions{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := fx.db.Create(&types.PaymentRecord{
		ID: uuid.New(), UserID: fx.userID, Amount: 600, Kind: "tuition",
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	res, err := fx.flightDeck.GetDashboard(ctx, fx.userID, fx.templateID, DashboardParams{})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	// One generation means no prior snapshot to compare against.
	if res.Trend.Direction != flightdeck.TrendFlat {
		t.Fatalf("Trend = %s, want flat on first generation", res.Trend.Direction)
	}
	if res.Payments.PaidToDate != 600 {
		t.Fatalf("PaidToDate = %.0f, want 600", res.Payments.PaidToDate)
	}
	if res.Cost.ProjectedTotal != 2100 {
		t.Fatalf("ProjectedTotal = %.0f, want the generated plan cost 2100", res.Cost.ProjectedTotal)
	}

	// Overrides replace the derived enrollment signals.
	completed := 0
	weekly := 6.0
	res, err = fx.flightDeck.GetDashboard(ctx, fx.userID, fx.templateID, DashboardParams{
		CompletedCredits: &completed,
		WeeklyStudyHours: &weekly,
	})
	if err != nil {
		t.Fatalf("GetDashboard with overrides: %v", err)
	}
	if res.Credits.Remaining != 12 {
		t.Fatalf("Remaining = %d, want the full 12-credit target", res.Credits.Remaining)
	}
	if res.Pace.Status != flightdeck.LevelRed {
		t.Fatalf("Pace = %s, want red at half the target hours", res.Pace.Status)
	}

	if _, err := fx.flightDeck.GetDashboard(ctx, fx.userID, uuid.New(), DashboardParams{}); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("unknown template err = %v, want ErrNotFound", err)
	}
}

func TestFlightDeckServiceCalculateValidation(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.flightDeck.Calculate(flightdeck.Input{})
	var ve *flightdeck.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
