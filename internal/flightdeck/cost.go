package flightdeck

type CostResult struct {
	ProjectedTotal       float64 `json:"projected_total"`
	Status               string  `json:"status"`
	BudgetCeiling        float64 `json:"budget_ceiling"`
	SessionCount         int     `json:"session_count"`
	BaselineSessionCount int     `json:"baseline_session_count"`
}

// CalcCost labels the financial breakdown; it never recomputes it. Past the
// ceiling is Over Budget; within 10% of the ceiling or carrying more
// in-residence sessions than the baseline is Caution.
func CalcCost(fin Financials, consts Constants) CostResult {
	status := CostOnTrack
	switch {
	case fin.ProjectedTotal > consts.BudgetCeiling:
		status = CostOverBudget
	case fin.ProjectedTotal > consts.BudgetCeiling*0.9,
		fin.SessionCount > consts.BaselineSessionCount:
		status = CostCaution
	}
	return CostResult{
		ProjectedTotal:       fin.ProjectedTotal,
		Status:               status,
		BudgetCeiling:        consts.BudgetCeiling,
		SessionCount:         fin.SessionCount,
		BaselineSessionCount: consts.BaselineSessionCount,
	}
}
