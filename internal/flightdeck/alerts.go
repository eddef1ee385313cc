package flightdeck

import "fmt"

type AlertMessage struct {
	Level   string `json:"level"`
	Source  string `json:"source"` // pace | eta | cost
	Message string `json:"message"`
}

type AlertsResult struct {
	Overall  string         `json:"overall"`
	Messages []AlertMessage `json:"messages"`
}

// BuildAlerts folds pace, ETA, and cost signals into one worst-of level with
// one message per contributing signal. Green signals contribute nothing.
func BuildAlerts(pace PaceResult, eta ETAResult, cost CostResult, sessionUnitCost float64) AlertsResult {
	var messages []AlertMessage

	switch pace.Status {
	case LevelRed:
		messages = append(messages, AlertMessage{
			Level:   LevelRed,
			Source:  "pace",
			Message: fmt.Sprintf("Study pace is %.0f%% of your %.0f hour weekly target.", pace.Percent, pace.TargetWeeklyHours),
		})
	case LevelYellow:
		messages = append(messages, AlertMessage{
			Level:   LevelYellow,
			Source:  "pace",
			Message: fmt.Sprintf("Study pace is slightly under target at %.0f%%.", pace.Percent),
		})
	}

	if eta.ExceedsOneYear {
		messages = append(messages, AlertMessage{
			Level:   LevelYellow,
			Source:  "eta",
			Message: fmt.Sprintf("Projected finish exceeds 12 months; one extra in-residence session (about $%.0f) could shorten it.", sessionUnitCost),
		})
	}

	switch cost.Status {
	case CostOverBudget:
		messages = append(messages, AlertMessage{
			Level:   LevelRed,
			Source:  "cost",
			Message: fmt.Sprintf("Projected cost $%.0f is over the $%.0f budget ceiling.", cost.ProjectedTotal, cost.BudgetCeiling),
		})
	case CostCaution:
		messages = append(messages, AlertMessage{
			Level:   LevelYellow,
			Source:  "cost",
			Message: "Projected cost is approaching the budget ceiling.",
		})
	}

	overall := LevelGreen
	for _, m := range messages {
		if m.Level == LevelRed {
			overall = LevelRed
			break
		}
		overall = LevelYellow
	}

	return AlertsResult{Overall: overall, Messages: messages}
}
