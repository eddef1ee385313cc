package flightdeck

import "math"

type PaceResult struct {
	WeeklyHours       float64 `json:"weekly_hours"`
	TargetWeeklyHours float64 `json:"target_weekly_hours"`
	Percent           float64 `json:"percent"`
	Status            string  `json:"status"`
}

// CalcPace classifies actual weekly study hours against the target:
// under 80% is red, 80-99% yellow, at or above target green.
func CalcPace(weeklyHours, targetWeeklyHours float64) PaceResult {
	percent := 0.0
	if targetWeeklyHours > 0 {
		percent = weeklyHours / targetWeeklyHours * 100
	}
	status := LevelRed
	switch {
	case percent >= 100:
		status = LevelGreen
	case percent >= 80:
		status = LevelYellow
	}
	return PaceResult{
		WeeklyHours:       weeklyHours,
		TargetWeeklyHours: targetWeeklyHours,
		Percent:           math.Round(percent*10) / 10,
		Status:            status,
	}
}
