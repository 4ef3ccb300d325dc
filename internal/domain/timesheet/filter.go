package timesheet

import (
	"strings"
	"time"
)

// FilterAll is the sentinel value that disables an exact-match filter. The
// empty string is treated the same way.
const FilterAll = "all"

// DateRange is an inclusive day-granular date range. A nil bound means
// unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Criteria describes a composable set of filters over time-entry records.
// The zero value matches everything.
type Criteria struct {
	Search         string
	ProjectID      string
	CategoryID     string
	CollaboratorID string
	DateRange      DateRange
	QuickFilter    QuickFilter
}

// isEmpty reports whether no stage of the criteria narrows anything.
func (c Criteria) isEmpty() bool {
	return c.Search == "" &&
		exactDisabled(c.ProjectID) &&
		exactDisabled(c.CategoryID) &&
		exactDisabled(c.CollaboratorID) &&
		c.DateRange.Start == nil && c.DateRange.End == nil &&
		!c.hasWindow()
}

func (c Criteria) hasWindow() bool {
	_, _, ok := Window(c.QuickFilter, time.Time{})
	return ok
}

func exactDisabled(value string) bool {
	return value == "" || value == FilterAll
}

// Normalized maps sentinel spellings to their canonical zero forms: the
// "all" value on exact-match filters, the custom quick-filter preset, and
// search case and surrounding whitespace, none of which change what Apply
// matches. Criteria that filter identically normalize to the same value,
// which cache keys rely on.
func (c Criteria) Normalized() Criteria {
	c.Search = strings.ToLower(strings.TrimSpace(c.Search))
	if c.ProjectID == FilterAll {
		c.ProjectID = ""
	}
	if c.CategoryID == FilterAll {
		c.CategoryID = ""
	}
	if c.CollaboratorID == FilterAll {
		c.CollaboratorID = ""
	}
	if c.QuickFilter == QuickFilterCustom {
		c.QuickFilter = ""
	}
	return c
}

// Apply filters entries against the criteria, evaluating quick-filter
// windows relative to referenceDate. The result preserves input order and
// applying the same criteria twice yields the same result. Empty criteria
// return the input unchanged.
func Apply(entries []Record, c Criteria, referenceDate time.Time) []Record {
	if c.isEmpty() {
		return entries
	}

	needle := strings.ToLower(strings.TrimSpace(c.Search))
	windowStart, windowEnd, hasWindow := Window(c.QuickFilter, referenceDate)

	result := make([]Record, 0, len(entries))
	for _, r := range entries {
		if needle != "" && !matchesSearch(r, needle) {
			continue
		}
		if !matchesExact(r.ProjectID, c.ProjectID) {
			continue
		}
		if !matchesExact(r.CategoryID, c.CategoryID) {
			continue
		}
		if !matchesExact(r.CollaboratorID, c.CollaboratorID) {
			continue
		}
		if !matchesRange(r, c.DateRange.Start, c.DateRange.End) {
			continue
		}
		if hasWindow && !matchesRange(r, &windowStart, &windowEnd) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// matchesSearch reports whether the lowercased needle is a substring of the
// project name, category name, or comment. A missing comment counts as
// empty, not as a mismatch of the whole record.
func matchesSearch(r Record, needle string) bool {
	return strings.Contains(strings.ToLower(r.ProjectName), needle) ||
		strings.Contains(strings.ToLower(r.CategoryName), needle) ||
		strings.Contains(strings.ToLower(r.Comment), needle)
}

func matchesExact(value, filter string) bool {
	if exactDisabled(filter) {
		return true
	}
	return value == filter
}

// matchesRange applies an inclusive day-granular range. Records without a
// date never match a bounded range.
func matchesRange(r Record, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	if r.Date.IsZero() {
		return false
	}
	if start != nil && !onOrAfter(r.Date, *start) {
		return false
	}
	if end != nil && !onOrBefore(r.Date, *end) {
		return false
	}
	return true
}
