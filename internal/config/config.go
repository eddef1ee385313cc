package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flightpath-edu/flightpath-backend/internal/logger"
)

// AllocationConfig drives the roadmap generator. AreaPriority is the order
// requirement areas are filled in; it is data here so deployments can reorder
// it without a code change.
type AllocationConfig struct {
	AreaPriority       []string `yaml:"area_priority"`
	CreditCeilingSlack int      `yaml:"credit_ceiling_slack"`
	PaceHoursPerWeek   int      `yaml:"pace_hours_per_week"`
	PaceMonths         int      `yaml:"pace_months"`
}

// FlightDeckConfig holds the fixed constants the dashboard calculations use.
type FlightDeckConfig struct {
	DegreeCreditTarget   int     `yaml:"degree_credit_target"`
	HoursPerCredit       float64 `yaml:"hours_per_credit"`
	WeeksPerMonth        float64 `yaml:"weeks_per_month"`
	BudgetCeiling        float64 `yaml:"budget_ceiling"`
	BaselineSessionCount int     `yaml:"baseline_session_count"`
	SessionUnitCost      float64 `yaml:"session_unit_cost"`
}

type Config struct {
	Allocation AllocationConfig `yaml:"allocation"`
	FlightDeck FlightDeckConfig `yaml:"flight_deck"`
}

func Default() *Config {
	return &Config{
		Allocation: AllocationConfig{
			AreaPriority: []string{
				"GEN_COMM",
				"GEN_QUANT",
				"GEN_SCI",
				"GEN_HUM",
				"GEN_SOC",
				"MAJOR_CORE",
				"MAJOR_CAPSTONE",
				"ELECTIVE",
			},
			CreditCeilingSlack: 4,
			PaceHoursPerWeek:   12,
			PaceMonths:         12,
		},
		FlightDeck: FlightDeckConfig{
			DegreeCreditTarget:   120,
			HoursPerCredit:       15,
			WeeksPerMonth:        4.3,
			BudgetCeiling:        15000,
			BaselineSessionCount: 2,
			SessionUnitCost:      1500,
		},
	}
}

// Load reads the YAML config at path, layering it over the compiled defaults.
// An empty path or a missing file yields the defaults unchanged.
func Load(path string, log *logger.Logger) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if log != nil {
				log.Warn("Config file not found, using defaults", "path", path)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Allocation.CreditCeilingSlack < 0 {
		cfg.Allocation.CreditCeilingSlack = 0
	}
	if len(cfg.Allocation.AreaPriority) == 0 {
		cfg.Allocation.AreaPriority = Default().Allocation.AreaPriority
	}
	if log != nil {
		log.Info("Loaded config file", "path", path)
	}
	return cfg, nil
}
