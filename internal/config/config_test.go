package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if got := cfg.Allocation.AreaPriority[len(cfg.Allocation.AreaPriority)-1]; got != "ELECTIVE" {
		t.Fatalf("last priority entry = %s, want the ELECTIVE catch-all", got)
	}
	if cfg.Allocation.CreditCeilingSlack != 4 {
		t.Fatalf("CreditCeilingSlack = %d, want 4", cfg.Allocation.CreditCeilingSlack)
	}
	if cfg.FlightDeck.DegreeCreditTarget != 120 {
		t.Fatalf("DegreeCreditTarget = %d, want 120", cfg.FlightDeck.DegreeCreditTarget)
	}
	if cfg.FlightDeck.WeeksPerMonth != 4.3 {
		t.Fatalf("WeeksPerMonth = %v, want 4.3", cfg.FlightDeck.WeeksPerMonth)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Allocation.PaceHoursPerWeek != 12 {
		t.Fatalf("PaceHoursPerWeek = %d, want the default 12", cfg.Allocation.PaceHoursPerWeek)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flightpath.yaml")
	raw := `
allocation:
  area_priority: ["MAJOR_CORE", "GEN_SCI", "ELECTIVE"]
  pace_hours_per_week: 20
flight_deck:
  budget_ceiling: 18000
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Allocation.AreaPriority) != 3 || cfg.Allocation.AreaPriority[0] != "MAJOR_CORE" {
		t.Fatalf("AreaPriority = %v, want the file's order", cfg.Allocation.AreaPriority)
	}
	if cfg.Allocation.PaceHoursPerWeek != 20 {
		t.Fatalf("PaceHoursPerWeek = %d, want 20", cfg.Allocation.PaceHoursPerWeek)
	}
	if cfg.FlightDeck.BudgetCeiling != 18000 {
		t.Fatalf("BudgetCeiling = %v, want 18000", cfg.FlightDeck.BudgetCeiling)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Allocation.CreditCeilingSlack != 4 {
		t.Fatalf("CreditCeilingSlack = %d, want the default 4", cfg.Allocation.CreditCeilingSlack)
	}
	if cfg.FlightDeck.DegreeCreditTarget != 120 {
		t.Fatalf("DegreeCreditTarget = %d, want the default 120", cfg.FlightDeck.DegreeCreditTarget)
	}
}

func TestLoadNegativeSlackClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flightpath.yaml")
	if err := os.WriteFile(path, []byte("allocation:\n  credit_ceiling_slack: -2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Allocation.CreditCeilingSlack != 0 {
		t.Fatalf("CreditCeilingSlack = %d, want clamped to 0", cfg.Allocation.CreditCeilingSlack)
	}
}
