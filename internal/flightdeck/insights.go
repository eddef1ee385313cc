package flightdeck

import (
	"fmt"
	"math"
	"sort"
)

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeveritySuccess  = "success"
	SeverityInfo     = "info"

	maxWarnings                   = 3
	maxCelebrations               = 3
	maxRecommendationsPerCategory = 2
)

type Insight struct {
	Category string `json:"category"` // budget | milestone | pace | credits
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Priority int    `json:"priority"` // 1 = high ... 3 = low
}

type InsightsBundle struct {
	Summary         string    `json:"summary"`
	Tip             string    `json:"tip,omitempty"`
	Warnings        []Insight `json:"warnings"`
	Celebrations    []Insight `json:"celebrations"`
	Recommendations []Insight `json:"recommendations"`
}

var progressMilestones = []int{25, 50, 75, 90}

// BuildInsights turns the computed signals into prioritized human-readable
// guidance. Each list collects every qualifying candidate, sorts by priority,
// and truncates to its cap: at most 3 warnings, 3 celebrations, and 2
// recommendations per category.
func BuildInsights(credits CreditsResult, pace PaceResult, eta ETAResult, cost CostResult, trend TrendResult, payments PaymentsResult, consts Constants) InsightsBundle {
	progress := 0
	if consts.CreditTarget > 0 {
		progress = int(math.Floor(float64(credits.Total) / float64(consts.CreditTarget) * 100))
	}

	warnings := truncateByPriority(budgetWarnings(cost, trend, payments), maxWarnings)
	celebrations := truncateByPriority(celebrations(progress, pace, eta, cost), maxCelebrations)

	var recs []Insight
	recs = append(recs, truncateByPriority(paceRecommendations(pace), maxRecommendationsPerCategory)...)
	recs = append(recs, truncateByPriority(creditRecommendations(credits), maxRecommendationsPerCategory)...)
	recs = append(recs, truncateByPriority(budgetRecommendations(cost, trend), maxRecommendationsPerCategory)...)

	return InsightsBundle{
		Summary:         buildSummary(progress, pace, eta),
		Tip:             buildTip(pace),
		Warnings:        warnings,
		Celebrations:    celebrations,
		Recommendations: recs,
	}
}

func budgetWarnings(cost CostResult, trend TrendResult, payments PaymentsResult) []Insight {
	var out []Insight
	if cost.Status == CostOverBudget {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityCritical,
			Message:  fmt.Sprintf("Projected cost $%.0f exceeds the $%.0f ceiling.", cost.ProjectedTotal, cost.BudgetCeiling),
			Priority: 1,
		})
	} else if cost.ProjectedTotal > cost.BudgetCeiling*0.9 {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityWarning,
			Message:  "Projected cost is within 10% of the budget ceiling.",
			Priority: 2,
		})
	}
	if trend.Direction == TrendUp {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Projected cost rose $%.0f (%.1f%%) since the last plan update.", trend.Delta, trend.PercentChange),
			Priority: 2,
		})
	}
	if cost.SessionCount > cost.BaselineSessionCount {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Plan includes %d in-residence sessions versus a baseline of %d.", cost.SessionCount, cost.BaselineSessionCount),
			Priority: 3,
		})
	}
	if payments.RemainingBalance > 0 && payments.PaidToDate == 0 {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("No payments recorded yet against a $%.0f balance.", payments.RemainingBalance),
			Priority: 3,
		})
	}
	return out
}

func celebrations(progress int, pace PaceResult, eta ETAResult, cost CostResult) []Insight {
	var out []Insight
	for _, m := range progressMilestones {
		if progress >= m {
			priority := 3
			switch m {
			case 90:
				priority = 1
			case 75, 50:
				priority = 2
			}
			out = append(out, Insight{
				Category: "milestone",
				Severity: SeveritySuccess,
				Message:  fmt.Sprintf("You have passed %d%% of your degree.", m),
				Priority: priority,
			})
		}
	}
	if cost.Status == CostOnTrack {
		out = append(out, Insight{
			Category: "milestone",
			Severity: SeveritySuccess,
			Message:  "Spending is tracking under budget.",
			Priority: 2,
		})
	}
	if pace.Status == LevelGreen {
		out = append(out, Insight{
			Category: "milestone",
			Severity: SeveritySuccess,
			Message:  "You are studying at or above your weekly target.",
			Priority: 3,
		})
	}
	if eta.Months > 0 && eta.Months <= 6 {
		out = append(out, Insight{
			Category: "milestone",
			Severity: SeveritySuccess,
			Message:  fmt.Sprintf("At this pace you finish in about %d months.", eta.Months),
			Priority: 3,
		})
	}
	return out
}

func paceRecommendations(pace PaceResult) []Insight {
	var out []Insight
	switch pace.Status {
	case LevelRed:
		out = append(out, Insight{
			Category: "pace",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Raise weekly study time toward %.0f hours to stay on schedule.", pace.TargetWeeklyHours),
			Priority: 1,
		})
		out = append(out, Insight{
			Category: "pace",
			Severity: SeverityInfo,
			Message:  "Consider blocking fixed study sessions on your calendar.",
			Priority: 2,
		})
		out = append(out, Insight{
			Category: "pace",
			Severity: SeverityInfo,
			Message:  "Shorter daily sessions beat one long weekend push.",
			Priority: 3,
		})
	case LevelYellow:
		out = append(out, Insight{
			Category: "pace",
			Severity: SeverityInfo,
			Message:  "A small weekly increase would bring you back to full pace.",
			Priority: 2,
		})
	}
	return out
}

func creditRecommendations(credits CreditsResult) []Insight {
	var out []Insight
	if credits.InProgress == 0 && credits.Remaining > 0 {
		out = append(out, Insight{
			Category: "credits",
			Severity: SeverityWarning,
			Message:  "No courses in progress; enroll in your next roadmap step.",
			Priority: 1,
		})
	}
	if credits.Remaining > 0 && credits.Remaining <= 12 {
		out = append(out, Insight{
			Category: "credits",
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Only %d credits left; confirm your capstone timing.", credits.Remaining),
			Priority: 2,
		})
	}
	if credits.Overage {
		out = append(out, Insight{
			Category: "credits",
			Severity: SeverityInfo,
			Message:  "You are past the credit target; verify nothing extra is scheduled.",
			Priority: 3,
		})
	}
	return out
}

func budgetRecommendations(cost CostResult, trend TrendResult) []Insight {
	var out []Insight
	if cost.Status == CostOverBudget {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityWarning,
			Message:  "Review fee components or defer an in-residence session to get back under the ceiling.",
			Priority: 1,
		})
	}
	if cost.Status == CostCaution {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityInfo,
			Message:  "Swap a session for a provider course to add headroom.",
			Priority: 2,
		})
	}
	if trend.Direction == TrendUp {
		out = append(out, Insight{
			Category: "budget",
			Severity: SeverityInfo,
			Message:  "Regenerate your roadmap after price changes to explore cheaper paths.",
			Priority: 3,
		})
	}
	return out
}

func buildSummary(progress int, pace PaceResult, eta ETAResult) string {
	etaPart := "completion date pending"
	switch {
	case eta.Months == 0:
		etaPart = "all credits accounted for"
	case eta.ExceedsOneYear:
		etaPart = "finish projected beyond one year"
	case eta.Months > 0:
		etaPart = fmt.Sprintf("about %d months to finish", eta.Months)
	}
	return fmt.Sprintf("%d%% of credits earned, pace %s, %s.", progress, pace.Status, etaPart)
}

func buildTip(pace PaceResult) string {
	if pace.Status == LevelGreen {
		return ""
	}
	return "One extra hour of study per week compounds into weeks saved over a degree."
}

func truncateByPriority(items []Insight, limit int) []Insight {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Priority < items[j].Priority })
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
