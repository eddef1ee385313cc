package roadmap

// enforcePolicies guarantees the capstone, the upper-level minimum, and the
// in-residence minimum. Each loop iteration consumes exactly one unused
// in-residence upper-level course, so the loop is bounded by catalog supply
// and always ends in success or a PolicyError.
func enforcePolicies(cat Catalog, opts Options, sel selection) (selection, error) {
	t := cat.Template
	ceiling := t.TotalCreditTarget + opts.CeilingSlack
	electiveCode := opts.electiveAreaCode()

	if t.CapstoneCode != "" && !sel.hasRefCode(t.CapstoneCode) {
		capstone, ok := cat.CourseByCode(t.CapstoneCode)
		if !ok {
			return sel, &NotFoundError{What: "capstone course", Code: t.CapstoneCode}
		}
		sel = sel.withCourse(capstone, "MAJOR_CAPSTONE")
	}

	for {
		upperShortfall := t.MinUpperLevelCredits - sel.upperCredits
		residencyShortfall := t.MinResidencyCredits - sel.residencyCredits
		if upperShortfall <= 0 && residencyShortfall <= 0 {
			return sel, nil
		}

		incoming, ok := cheapestQualifying(cat, sel)
		if !ok {
			return sel, &PolicyError{
				Kind:                "no_qualifying_course",
				UpperLevelShortfall: max(upperShortfall, 0),
				ResidencyShortfall:  max(residencyShortfall, 0),
			}
		}

		removable := removableElectives(sel, electiveCode)
		if len(removable) > 0 {
			freed := 0
			evict := map[int]bool{}
			for _, idx := range removable {
				if freed >= incoming.Credits {
					break
				}
				evict[idx] = true
				freed += sel.steps[idx].Credits
			}
			if freed < incoming.Credits {
				return sel, &PolicyError{
					Kind:                "insufficient_electives",
					UpperLevelShortfall: max(upperShortfall, 0),
					ResidencyShortfall:  max(residencyShortfall, 0),
				}
			}
			sel = sel.withoutSteps(evict)
			sel = sel.withCourse(incoming, incoming.rebalanceAreaCode())
			continue
		}

		if sel.totalCredits+incoming.Credits > ceiling {
			return sel, &PolicyError{
				Kind:                "ceiling_exceeded",
				UpperLevelShortfall: max(upperShortfall, 0),
				ResidencyShortfall:  max(residencyShortfall, 0),
			}
		}
		sel = sel.withCourse(incoming, incoming.rebalanceAreaCode())
	}
}

// rebalanceAreaCode labels courses the policy loop injects.
func (c Course) rebalanceAreaCode() string {
	return "RESIDENCY"
}

// cheapestQualifying finds the cheapest unused in-residence upper-level
// course, the only kind that can shrink both shortfalls at once.
func cheapestQualifying(cat Catalog, sel selection) (Course, bool) {
	var best Course
	found := false
	for _, c := range cat.Courses {
		if sel.used[c.ID] || !c.InResidence || !c.UpperLevel() {
			continue
		}
		if !found || c.EstPrice < best.EstPrice || (c.EstPrice == best.EstPrice && c.Code < best.Code) {
			best = c
			found = true
		}
	}
	return best, found
}

// removableElectives lists, in selection order, step positions eligible for
// eviction: elective-area, non-residence, non-upper courses.
func removableElectives(sel selection, electiveCode string) []int {
	var out []int
	for i, st := range sel.steps {
		if st.AreaCode == electiveCode && !st.InResidence && !st.UpperLevel {
			out = append(out, i)
		}
	}
	return out
}
