package roadmap

import (
	"sort"
	"strings"
)

// matchesArea decides whether a catalog course can fill a requirement area.
// The course must clear every mapping's provider allow-list (a mapping with no
// list passes everyone), and then satisfy any one of: an area tag matching the
// area code, a mapping's code pattern, or a mapping's title keyword.
func matchesArea(c Course, area Area, mappings []Mapping) bool {
	for _, m := range mappings {
		if !providerAllowed(c.Provider, m.Providers) {
			return false
		}
	}

	if tagMatches(c.AreaTags, area.Code) {
		return true
	}

	for _, m := range mappings {
		if !levelAllowed(c, m.LevelFilter) {
			continue
		}
		if m.Pattern != nil && m.Pattern.MatchString(c.Code) {
			return true
		}
		for _, kw := range m.TitleKeywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if strings.Contains(strings.ToLower(c.Title), strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}

func providerAllowed(provider string, allow []string) bool {
	if len(allow) == 0 {
		return true
	}
	for _, p := range allow {
		if strings.EqualFold(strings.TrimSpace(p), provider) {
			return true
		}
	}
	return false
}

func levelAllowed(c Course, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.EqualFold(c.Level, filter)
}

// tagMatches accepts an exact tag or a fuzzy containment either way, so a
// course tagged "GEN_SCI_LAB" still counts toward GEN_SCI.
func tagMatches(tags []string, areaCode string) bool {
	code := strings.ToUpper(strings.TrimSpace(areaCode))
	if code == "" {
		return false
	}
	for _, t := range tags {
		tag := strings.ToUpper(strings.TrimSpace(t))
		if tag == "" {
			continue
		}
		if tag == code || strings.Contains(tag, code) || strings.Contains(code, tag) {
			return true
		}
	}
	return false
}

// candidatesFor filters and ranks the catalog for one area: unused matching
// courses, cheapest effort first (est hours ascending, then price, then code
// for a stable order).
func candidatesFor(cat Catalog, area Area, sel selection) []Course {
	mappings := cat.Mappings[area.ID]
	var out []Course
	for _, c := range cat.Courses {
		if sel.used[c.ID] {
			continue
		}
		if matchesArea(c, area, mappings) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EstHours != out[j].EstHours {
			return out[i].EstHours < out[j].EstHours
		}
		if out[i].EstPrice != out[j].EstPrice {
			return out[i].EstPrice < out[j].EstPrice
		}
		return out[i].Code < out[j].Code
	})
	return out
}
