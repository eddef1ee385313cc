package roadmap

import "fmt"

// PolicyError means the policy loop ran out of options before both minimums
// were met. It is terminal for the run; nothing is persisted.
type PolicyError struct {
	Kind                string // "no_qualifying_course" | "insufficient_electives" | "ceiling_exceeded"
	UpperLevelShortfall int
	ResidencyShortfall  int
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf(
		"policy unsatisfiable (%s): upper-level shortfall %d, residency shortfall %d",
		e.Kind, e.UpperLevelShortfall, e.ResidencyShortfall,
	)
}

// BoundsError means the final credit total landed outside
// [target, target+slack]. This is a generator bug class, not user input.
type BoundsError struct {
	Total   int
	Target  int
	Ceiling int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("credit total %d outside bounds [%d, %d]", e.Total, e.Target, e.Ceiling)
}

// NotFoundError covers catalog rows the generator requires but could not
// resolve, like a configured capstone missing from the provider catalog.
type NotFoundError struct {
	What string
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.What, e.Code)
}
