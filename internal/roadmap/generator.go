package roadmap

import "math"

// Options carries the run configuration. PriorityOrder's last entry doubles
// as the elective catch-all area code.
type Options struct {
	PriorityOrder    []string
	CeilingSlack     int
	PaceHoursPerWeek int
}

func (o Options) electiveAreaCode() string {
	if len(o.PriorityOrder) == 0 {
		return "ELECTIVE"
	}
	return o.PriorityOrder[len(o.PriorityOrder)-1]
}

func (o Options) paceHours() int {
	if o.PaceHoursPerWeek <= 0 {
		return 12
	}
	return o.PaceHoursPerWeek
}

// Result is the generator's output. Steps carry EstWeeks derived from the
// study pace; indexes are implied by slice order (1-based when persisted).
type Result struct {
	Steps             []Step
	StepWeeks         []int
	TotalCredits      int
	RemainingCredits  int
	UpperLevelCredits int
	ResidencyCredits  int
	TotalEstHours     int
	EstCost           float64
	EstMonths         int
}

// Generate runs the full allocation pipeline against an immutable catalog:
// gap fill per area in priority order, policy enforcement, credit backfill.
// It never touches a store; any error aborts before the caller persists.
func Generate(cat Catalog, opts Options) (*Result, error) {
	sel := fillGaps(cat, opts, newSelection())

	sel, err := enforcePolicies(cat, opts, sel)
	if err != nil {
		return nil, err
	}

	sel, err = backfill(cat, opts, sel)
	if err != nil {
		return nil, err
	}

	pace := opts.paceHours()
	weeks := make([]int, len(sel.steps))
	for i, st := range sel.steps {
		w := int(math.Ceil(float64(st.EstHours) / float64(pace)))
		if w < 1 {
			w = 1
		}
		weeks[i] = w
	}

	months := 0
	if sel.totalHours > 0 {
		months = int(math.Ceil(float64(sel.totalHours) / (float64(pace) * 4.3)))
	}

	return &Result{
		Steps:             sel.steps,
		StepWeeks:         weeks,
		TotalCredits:      sel.totalCredits,
		RemainingCredits:  sel.totalCredits,
		UpperLevelCredits: sel.upperCredits,
		ResidencyCredits:  sel.residencyCredits,
		TotalEstHours:     sel.totalHours,
		EstCost:           sel.totalCost,
		EstMonths:         months,
	}, nil
}
