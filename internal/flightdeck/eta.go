package flightdeck

import "math"

type ETAResult struct {
	Months            int     `json:"months"`
	ExceedsOneYear    bool    `json:"exceeds_one_year"`
	CreditsPerWeek    float64 `json:"credits_per_week"`
	MonthlyThroughput float64 `json:"monthly_throughput"`
}

// CalcETA projects months to completion at the current pace. Zero remaining
// credits means done; zero study hours means the sentinel "effectively
// infinite" value, always flagged as exceeding one year.
func CalcETA(remainingCredits int, weeklyHours, hoursPerCredit float64, consts Constants) ETAResult {
	if remainingCredits <= 0 {
		return ETAResult{}
	}
	if weeklyHours <= 0 || hoursPerCredit <= 0 {
		return ETAResult{
			Months:         consts.SentinelMonths,
			ExceedsOneYear: true,
		}
	}
	creditsPerWeek := weeklyHours / hoursPerCredit
	monthlyThroughput := creditsPerWeek * consts.WeeksPerMonth
	months := int(math.Ceil(float64(remainingCredits) / monthlyThroughput))
	return ETAResult{
		Months:            months,
		ExceedsOneYear:    months > 12,
		CreditsPerWeek:    math.Round(creditsPerWeek*100) / 100,
		MonthlyThroughput: math.Round(monthlyThroughput*100) / 100,
	}
}
