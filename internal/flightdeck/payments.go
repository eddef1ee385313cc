package flightdeck

import "math"

type PaymentsResult struct {
	PaidToDate       float64 `json:"paid_to_date"`
	RemainingBalance float64 `json:"remaining_balance"`
	EntryCount       int     `json:"entry_count"`
}

// CalcPayments sums the ledger and nets it against the projected total.
// Overpayment floors the remaining balance at zero.
func CalcPayments(entries []PaymentEntry, projectedTotal float64) PaymentsResult {
	paid := 0.0
	for _, e := range entries {
		paid += e.Amount
	}
	remaining := projectedTotal - paid
	if remaining < 0 {
		remaining = 0
	}
	return PaymentsResult{
		PaidToDate:       math.Round(paid*100) / 100,
		RemainingBalance: math.Round(remaining*100) / 100,
		EntryCount:       len(entries),
	}
}
