package flightdeck

import (
	"fmt"
	"sort"
	"strings"
)

// Input is the full set of signals one dashboard computation consumes. It is
// assembled by the caller (from the persisted plan, ledger, and snapshots, or
// supplied raw over the API) and validated before anything is computed.
type Input struct {
	TargetWeeklyHours float64 `json:"target_weekly_hours"`
	CompletedCredits  int     `json:"completed_credits"`
	InProgressCredits int     `json:"in_progress_credits"`
	WeeklyStudyHours  float64 `json:"weekly_study_hours"`
	HoursPerCredit    float64 `json:"hours_per_credit"`

	Financials          Financials     `json:"financials"`
	PriorProjectedTotal float64        `json:"prior_projected_total"`
	HasPriorProjection  bool           `json:"has_prior_projection"`
	Payments            []PaymentEntry `json:"payments"`
}

type Financials struct {
	FeeComponents   []FeeComponent `json:"fee_components"`
	SessionCount    int            `json:"session_count"`
	SessionUnitCost float64        `json:"session_unit_cost"`
	ProjectedTotal  float64        `json:"projected_total"`
}

type FeeComponent struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type PaymentEntry struct {
	Amount float64 `json:"amount"`
	Kind   string  `json:"kind,omitempty"`
}

// ValidationError reports every offending field at once; a partial dashboard
// is never computed from bad input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "invalid flight deck input: " + strings.Join(parts, "; ")
}

func (in Input) Validate() error {
	fields := map[string]string{}
	if in.TargetWeeklyHours <= 0 {
		fields["target_weekly_hours"] = "must be greater than zero"
	}
	if in.CompletedCredits < 0 {
		fields["completed_credits"] = "must not be negative"
	}
	if in.InProgressCredits < 0 {
		fields["in_progress_credits"] = "must not be negative"
	}
	if in.WeeklyStudyHours < 0 {
		fields["weekly_study_hours"] = "must not be negative"
	}
	if in.HoursPerCredit <= 0 {
		fields["hours_per_credit"] = "must be greater than zero"
	}
	if in.Financials.SessionCount < 0 {
		fields["financials.session_count"] = "must not be negative"
	}
	if in.Financials.SessionUnitCost < 0 {
		fields["financials.session_unit_cost"] = "must not be negative"
	}
	if in.Financials.ProjectedTotal < 0 {
		fields["financials.projected_total"] = "must not be negative"
	}
	for i, p := range in.Payments {
		if p.Amount < 0 {
			fields[fmt.Sprintf("payments[%d].amount", i)] = "must not be negative"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
