package flightdeck

// Result is the full dashboard payload.
type Result struct {
	Credits  CreditsResult  `json:"credits"`
	Pace     PaceResult     `json:"pace"`
	ETA      ETAResult      `json:"eta"`
	Cost     CostResult     `json:"cost"`
	Trend    TrendResult    `json:"trend"`
	Payments PaymentsResult `json:"payments"`
	Alerts   AlertsResult   `json:"alerts"`
	Insights InsightsBundle `json:"insights"`
}

// Calculate validates the input, then chains the sub-calculations in a fixed
// order. Each stage sees only its declared inputs; there is no shared state,
// no I/O, and the function is safe to call concurrently.
func Calculate(in Input, consts Constants) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	credits := CalcCredits(in.CompletedCredits, in.InProgressCredits, consts.CreditTarget)
	pace := CalcPace(in.WeeklyStudyHours, in.TargetWeeklyHours)
	eta := CalcETA(credits.Remaining, in.WeeklyStudyHours, in.HoursPerCredit, consts)
	cost := CalcCost(in.Financials, consts)
	trend := CalcTrend(in.Financials.ProjectedTotal, in.PriorProjectedTotal, in.HasPriorProjection)
	payments := CalcPayments(in.Payments, in.Financials.ProjectedTotal)
	alerts := BuildAlerts(pace, eta, cost, in.Financials.SessionUnitCost)
	insights := BuildInsights(credits, pace, eta, cost, trend, payments, consts)

	return &Result{
		Credits:  credits,
		Pace:     pace,
		ETA:      eta,
		Cost:     cost,
		Trend:    trend,
		Payments: payments,
		Alerts:   alerts,
		Insights: insights,
	}, nil
}
