package roadmap

// backfill tops an under-filled selection up to the credit target with the
// cheapest unused non-residence courses, never crossing the ceiling. The final
// bounds check is strict: a total outside [target, ceiling] is a generator
// defect and fails the run rather than persisting a short or bloated plan.
func backfill(cat Catalog, opts Options, sel selection) (selection, error) {
	target := cat.Template.TotalCreditTarget
	ceiling := target + opts.CeilingSlack
	electiveCode := opts.electiveAreaCode()

	for sel.totalCredits < target {
		c, ok := cheapestBackfill(cat, sel, ceiling-sel.totalCredits)
		if !ok {
			break
		}
		sel = sel.withCourse(c, electiveCode)
	}

	if sel.totalCredits < target || sel.totalCredits > ceiling {
		return sel, &BoundsError{Total: sel.totalCredits, Target: target, Ceiling: ceiling}
	}
	return sel, nil
}

func cheapestBackfill(cat Catalog, sel selection, room int) (Course, bool) {
	var best Course
	found := false
	for _, c := range cat.Courses {
		if sel.used[c.ID] || c.InResidence {
			continue
		}
		if c.Credits > room {
			continue
		}
		if !found || c.EstPrice < best.EstPrice || (c.EstPrice == best.EstPrice && c.Code < best.Code) {
			best = c
			found = true
		}
	}
	return best, found
}
