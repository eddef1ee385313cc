package flightdeck

import "math"

type TrendResult struct {
	Delta         float64 `json:"delta"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction"`
}

// CalcTrend compares the live projection against the last recorded one.
// Moves within one dollar either way count as flat.
func CalcTrend(current, prior float64, hasPrior bool) TrendResult {
	if !hasPrior {
		return TrendResult{Direction: TrendFlat}
	}
	delta := current - prior
	percent := 0.0
	if prior != 0 {
		percent = delta / prior * 100
	}
	direction := TrendFlat
	if math.Abs(delta) > 1 {
		if delta > 0 {
			direction = TrendUp
		} else {
			direction = TrendDown
		}
	}
	return TrendResult{
		Delta:         math.Round(delta*100) / 100,
		PercentChange: math.Round(percent*10) / 10,
		Direction:     direction,
	}
}
