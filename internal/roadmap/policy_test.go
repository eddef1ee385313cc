package roadmap

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestEnforcePoliciesAddsCapstoneOnce(t *testing.T) {
	capstone := Course{
		ID: uuid.New(), Code: "CAP-400", Title: "Capstone", Credits: 3,
		Level: "upper", InResidence: true, EstPrice: 1500, EstHours: 45,
	}
	cat := Catalog{
		Template: Template{
			TotalCreditTarget:    3,
			MinUpperLevelCredits: 3,
			MinResidencyCredits:  3,
			CapstoneCode:         "cap-400", // case differs from the catalog row
		},
		Courses: []Course{capstone},
	}

	sel, err := enforcePolicies(cat, Options{CeilingSlack: 4}, newSelection())
	if err != nil {
		t.Fatalf("enforcePolicies: %v", err)
	}
	count := 0
	for _, st := range sel.steps {
		if st.RefCode == "CAP-400" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("capstone appears %d times, want 1", count)
	}
	if sel.steps[len(sel.steps)-1].AreaCode != "MAJOR_CAPSTONE" {
		t.Fatalf("capstone area = %s, want MAJOR_CAPSTONE", sel.steps[len(sel.steps)-1].AreaCode)
	}

	// Running again over the result must not add a second capstone.
	again, err := enforcePolicies(cat, Options{CeilingSlack: 4}, sel)
	if err != nil {
		t.Fatalf("second enforcePolicies: %v", err)
	}
	if len(again.steps) != len(sel.steps) {
		t.Fatalf("second pass grew steps from %d to %d", len(sel.steps), len(again.steps))
	}
}

func TestEnforcePoliciesCapstoneMissingFromCatalog(t *testing.T) {
	cat := Catalog{
		Template: Template{TotalCreditTarget: 3, CapstoneCode: "CAP-999"},
	}
	_, err := enforcePolicies(cat, Options{}, newSelection())
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Code != "CAP-999" {
		t.Fatalf("NotFoundError.Code = %s, want CAP-999", nf.Code)
	}
}

func TestEnforcePoliciesEvictsElectives(t *testing.T) {
	e1 := Course{ID: uuid.New(), Code: "EL-1", Credits: 3, Level: "lower", EstPrice: 100, EstHours: 30}
	e2 := Course{ID: uuid.New(), Code: "EL-2", Credits: 3, Level: "lower", EstPrice: 150, EstHours: 30}
	res := Course{ID: uuid.New(), Code: "RES-1", Credits: 3, Level: "upper", InResidence: true, EstPrice: 1000, EstHours: 45}
	cat := Catalog{
		Template: Template{TotalCreditTarget: 6, MinUpperLevelCredits: 3, MinResidencyCredits: 3},
		Courses:  []Course{e1, e2, res},
	}
	opts := Options{PriorityOrder: []string{"ELECTIVE"}, CeilingSlack: 0}

	sel := newSelection().withCourse(e1, "ELECTIVE").withCourse(e2, "ELECTIVE")
	sel, err := enforcePolicies(cat, opts, sel)
	if err != nil {
		t.Fatalf("enforcePolicies: %v", err)
	}

	if sel.totalCredits != 6 {
		t.Fatalf("totalCredits = %d, want 6 (one elective evicted for the residency course)", sel.totalCredits)
	}
	if sel.hasRefCode("EL-1") {
		t.Fatalf("first elective should have been evicted")
	}
	if !sel.hasRefCode("EL-2") || !sel.hasRefCode("RES-1") {
		t.Fatalf("kept steps wrong: %+v", sel.steps)
	}
	if sel.upperCredits != 3 || sel.residencyCredits != 3 {
		t.Fatalf("upper/residency = %d/%d, want 3/3", sel.upperCredits, sel.residencyCredits)
	}
}

func TestEnforcePoliciesEvictedCourseNotReAdded(t *testing.T) {
	// Only one elective exists and it gets evicted; the loop must not pick
	// it back up on the next iteration to fill anything.
	e1 := Course{ID: uuid.New(), Code: "EL-1", Credits: 3, Level: "lower", EstPrice: 100, EstHours: 30}
	res := Course{ID: uuid.New(), Code: "RES-1", Credits: 3, Level: "upper", InResidence: true, EstPrice: 1000, EstHours: 45}
	cat := Catalog{
		Template: Template{TotalCreditTarget: 3, MinUpperLevelCredits: 3, MinResidencyCredits: 3},
		Courses:  []Course{e1, res},
	}
	sel := newSelection().withCourse(e1, "ELECTIVE")
	sel, err := enforcePolicies(cat, Options{PriorityOrder: []string{"ELECTIVE"}}, sel)
	if err != nil {
		t.Fatalf("enforcePolicies: %v", err)
	}
	if sel.hasRefCode("EL-1") {
		t.Fatalf("evicted elective came back")
	}
	if len(sel.steps) != 1 || sel.steps[0].RefCode != "RES-1" {
		t.Fatalf("steps = %+v, want only RES-1", sel.steps)
	}
}

func TestEnforcePoliciesErrorKinds(t *testing.T) {
	res4 := Course{ID: uuid.New(), Code: "RES-4", Credits: 4, Level: "upper", InResidence: true, EstPrice: 1000}

	tests := []struct {
		name     string
		template Template
		courses  []Course
		seed     func() selection
		slack    int
		wantKind string
	}{
		{
			name:     "no qualifying course",
			template: Template{TotalCreditTarget: 3, MinUpperLevelCredits: 3},
			courses:  []Course{{ID: uuid.New(), Code: "EL-1", Credits: 3, Level: "lower"}},
			seed:     newSelection,
			wantKind: "no_qualifying_course",
		},
		{
			name:     "insufficient electives",
			template: Template{TotalCreditTarget: 3, MinResidencyCredits: 4},
			courses: []Course{
				{ID: uuid.New(), Code: "EL-1", Credits: 3, Level: "lower", EstPrice: 100},
				res4,
			},
			seed: func() selection {
				return newSelection().withCourse(Course{ID: uuid.New(), Code: "EL-SEED", Credits: 3, Level: "lower"}, "ELECTIVE")
			},
			wantKind: "insufficient_electives",
		},
		{
			name:     "ceiling exceeded",
			template: Template{TotalCreditTarget: 3, MinResidencyCredits: 4},
			courses:  []Course{res4},
			seed: func() selection {
				return newSelection().withCourse(Course{ID: uuid.New(), Code: "SCI-SEED", Credits: 3, Level: "lower"}, "GEN_SCI")
			},
			slack:    0,
			wantKind: "ceiling_exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Catalog{Template: tt.template, Courses: tt.courses}
			opts := Options{PriorityOrder: []string{"ELECTIVE"}, CeilingSlack: tt.slack}
			_, err := enforcePolicies(cat, opts, tt.seed())
			var pe *PolicyError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v, want PolicyError", err)
			}
			if pe.Kind != tt.wantKind {
				t.Fatalf("Kind = %s, want %s", pe.Kind, tt.wantKind)
			}
		})
	}
}
