package roadmap

import "sort"

// orderAreas sorts requirement areas by the configured priority list. Codes
// absent from the list keep their relative order and sort just ahead of the
// final (elective catch-all) entry.
func orderAreas(areas []Area, priority []string) []Area {
	rank := make(map[string]int, len(priority))
	for i, code := range priority {
		rank[code] = i
	}
	unknownRank := len(priority) - 1
	if unknownRank < 0 {
		unknownRank = 0
	}

	out := make([]Area, len(areas))
	copy(out, areas)
	sort.SliceStable(out, func(i, j int) bool {
		ri, ok := rank[out[i].Code]
		if !ok {
			ri = unknownRank
		}
		rj, ok := rank[out[j].Code]
		if !ok {
			rj = unknownRank
		}
		return ri < rj
	})
	return out
}

// fillGaps runs the greedy matcher once per area in priority order. The last
// candidate may overshoot the exact gap; overshoot is kept, not trimmed.
func fillGaps(cat Catalog, opts Options, sel selection) selection {
	ordered := orderAreas(cat.Areas, opts.PriorityOrder)
	gapByArea := map[string]int{}
	for _, g := range ComputeGaps(cat.Areas) {
		gapByArea[g.AreaCode] = g.Remaining
	}

	for _, area := range ordered {
		gap := gapByArea[area.Code]
		if gap <= 0 {
			continue
		}
		for _, c := range candidatesFor(cat, area, sel) {
			if gap <= 0 {
				break
			}
			sel = sel.withCourse(c, area.Code)
			gap -= c.Credits
		}
		gapByArea[area.Code] = gap
	}
	return sel
}
