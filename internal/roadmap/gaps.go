package roadmap

import "github.com/google/uuid"

// Gap is the remaining credit need for one requirement area.
type Gap struct {
	AreaID    uuid.UUID
	AreaCode  string
	Remaining int
}

// ComputeGaps starts every area at its full requirement. Prior or transfer
// credit is deliberately not offset here; plans always model the whole degree.
func ComputeGaps(areas []Area) []Gap {
	gaps := make([]Gap, 0, len(areas))
	for _, a := range areas {
		gaps = append(gaps, Gap{
			AreaID:    a.ID,
			AreaCode:  a.Code,
			Remaining: a.RequiredCredits,
		})
	}
	return gaps
}
