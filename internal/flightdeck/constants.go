package flightdeck

// Constants are the fixed knobs of the calculation pipeline. They come from
// service config; the defaults here keep the pure functions usable standalone.
type Constants struct {
	CreditTarget         int
	WeeksPerMonth        float64
	SentinelMonths       int
	BudgetCeiling        float64
	BaselineSessionCount int
}

func DefaultConstants() Constants {
	return Constants{
		CreditTarget:         120,
		WeeksPerMonth:        4.3,
		SentinelMonths:       999,
		BudgetCeiling:        15000,
		BaselineSessionCount: 2,
	}
}

const (
	LevelGreen  = "green"
	LevelYellow = "yellow"
	LevelRed    = "red"

	CostOnTrack    = "On Track"
	CostCaution    = "Caution"
	CostOverBudget = "Over Budget"

	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)
