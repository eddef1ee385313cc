package roadmap

import (
	"strings"

	"github.com/google/uuid"
)

const (
	ItemProviderCourse     = "provider_course"
	ItemInResidenceSession = "in_residence_session"
)

// Step is one planned item, in allocation order. Index is assigned at the end
// of the run so removals during rebalancing never leave gaps.
type Step struct {
	CourseID    uuid.UUID
	ItemType    string
	RefCode     string
	Title       string
	Credits     int
	EstCost     float64
	EstHours    int
	UpperLevel  bool
	InResidence bool
	AreaCode    string
}

// selection is the allocator's working state. Every stage folds over it and
// returns a fresh value; no stage mutates a selection another stage holds.
type selection struct {
	steps            []Step
	used             map[uuid.UUID]bool
	totalCredits     int
	upperCredits     int
	residencyCredits int
	totalCost        float64
	totalHours       int
}

func newSelection() selection {
	return selection{used: map[uuid.UUID]bool{}}
}

func (s selection) clone() selection {
	steps := make([]Step, len(s.steps))
	copy(steps, s.steps)
	used := make(map[uuid.UUID]bool, len(s.used))
	for id, v := range s.used {
		used[id] = v
	}
	out := s
	out.steps = steps
	out.used = used
	return out
}

// withCourse returns a new selection with the course appended and every
// running total advanced.
func (s selection) withCourse(c Course, areaCode string) selection {
	out := s.clone()
	itemType := ItemProviderCourse
	if c.InResidence {
		itemType = ItemInResidenceSession
	}
	out.steps = append(out.steps, Step{
		CourseID:    c.ID,
		ItemType:    itemType,
		RefCode:     c.Code,
		Title:       c.Title,
		Credits:     c.Credits,
		EstCost:     c.EstPrice,
		EstHours:    c.EstHours,
		UpperLevel:  c.UpperLevel(),
		InResidence: c.InResidence,
		AreaCode:    areaCode,
	})
	out.used[c.ID] = true
	out.totalCredits += c.Credits
	if c.UpperLevel() {
		out.upperCredits += c.Credits
	}
	if c.InResidence {
		out.residencyCredits += c.Credits
	}
	out.totalCost += c.EstPrice
	out.totalHours += c.EstHours
	return out
}

// withoutSteps returns a new selection with the given step positions removed.
// The freed courses stay marked used so the policy loop never re-adds a
// course it just evicted.
func (s selection) withoutSteps(indexes map[int]bool) selection {
	out := s.clone()
	kept := out.steps[:0]
	for i, st := range out.steps {
		if indexes[i] {
			out.totalCredits -= st.Credits
			if st.UpperLevel {
				out.upperCredits -= st.Credits
			}
			if st.InResidence {
				out.residencyCredits -= st.Credits
			}
			out.totalCost -= st.EstCost
			out.totalHours -= st.EstHours
			continue
		}
		kept = append(kept, st)
	}
	out.steps = kept
	return out
}

func (s selection) hasRefCode(code string) bool {
	for _, st := range s.steps {
		if strings.EqualFold(st.RefCode, code) {
			return true
		}
	}
	return false
}
