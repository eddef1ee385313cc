package roadmap

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Catalog is the immutable snapshot the generator runs against. It is built
// once per run from store rows; nothing in this package mutates it.
type Catalog struct {
	Template Template
	Areas    []Area
	// Mappings keyed by requirement area ID.
	Mappings map[uuid.UUID][]Mapping
	Courses  []Course
}

type Template struct {
	ID                   uuid.UUID
	Code                 string
	TotalCreditTarget    int
	MinUpperLevelCredits int
	MinResidencyCredits  int
	CapstoneCode         string
}

type Area struct {
	ID              uuid.UUID
	Code            string
	Name            string
	RequiredCredits int
}

// Mapping is one articulation rule. Pattern is pre-compiled (case-insensitive)
// at the store boundary so a malformed pattern fails the load, not the match.
type Mapping struct {
	AreaID           uuid.UUID
	Pattern          *regexp.Regexp
	TitleKeywords    []string
	Providers        []string
	FulfilledCredits int
	LevelFilter      string
}

type Course struct {
	ID          uuid.UUID
	Provider    string
	Code        string
	Title       string
	Credits     int
	Level       string
	EstHours    int
	EstPrice    float64
	AreaTags    []string
	InResidence bool
}

func (c Course) UpperLevel() bool { return strings.EqualFold(c.Level, "upper") }
func (c Course) LowerLevel() bool { return strings.EqualFold(c.Level, "lower") }

// CompileCodePattern compiles a mapping's course-code pattern
// case-insensitively. Empty patterns yield nil (no code test).
func CompileCodePattern(pattern string) (*regexp.Regexp, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile("(?i)" + pattern)
}

func (cat Catalog) CourseByCode(code string) (Course, bool) {
	for _, c := range cat.Courses {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Course{}, false
}
