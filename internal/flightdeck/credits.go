package flightdeck

type CreditsResult struct {
	Completed  int  `json:"completed"`
	InProgress int  `json:"in_progress"`
	Total      int  `json:"total"`
	Remaining  int  `json:"remaining"`
	Overage    bool `json:"overage"`
}

// CalcCredits sums earned and in-flight credits against the degree target.
// Remaining never goes negative; past-target totals set the overage flag.
func CalcCredits(completed, inProgress, creditTarget int) CreditsResult {
	total := completed + inProgress
	remaining := creditTarget - total
	if remaining < 0 {
		remaining = 0
	}
	return CreditsResult{
		Completed:  completed,
		InProgress: inProgress,
		Total:      total,
		Remaining:  remaining,
		Overage:    total > creditTarget,
	}
}
