package timesheet

import "time"

// QuickFilter is a named relative date-window preset.
type QuickFilter string

const (
	QuickFilterCustom       QuickFilter = "custom"
	QuickFilterCurrentWeek  QuickFilter = "current-week"
	QuickFilterPreviousWeek QuickFilter = "previous-week"
	QuickFilterCurrentMonth QuickFilter = "current-month"
	QuickFilterLast30Days   QuickFilter = "last-30-days"
)

// Window computes the inclusive day window for a quick-filter preset
// relative to the given reference date. It returns ok=false for the custom
// preset and for the empty value, both of which mean "no window".
//
// current-month is month to date (first of the month through the reference
// date), not the full calendar month. This asymmetry with current-week,
// which extends through the coming Sunday, is intentional and preserved.
func Window(q QuickFilter, referenceDate time.Time) (start, end time.Time, ok bool) {
	ref := dayOf(referenceDate)
	switch q {
	case QuickFilterCurrentWeek:
		monday := startOfWeek(ref)
		return monday, monday.AddDate(0, 0, 6), true
	case QuickFilterPreviousWeek:
		monday := startOfWeek(ref).AddDate(0, 0, -7)
		return monday, monday.AddDate(0, 0, 6), true
	case QuickFilterCurrentMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return first, ref, true
	case QuickFilterLast30Days:
		return ref.AddDate(0, 0, -30), ref, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Valid reports whether q names a known preset. The empty value counts as
// valid and means "no preset".
func (q QuickFilter) Valid() bool {
	switch q {
	case "", QuickFilterCustom, QuickFilterCurrentWeek, QuickFilterPreviousWeek,
		QuickFilterCurrentMonth, QuickFilterLast30Days:
		return true
	}
	return false
}

// startOfWeek returns the Monday of the week containing t. Sunday counts as
// the last day of the previous week, not the first of the next.
func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return dayOf(t.AddDate(0, 0, -offset))
}

// dayOf truncates a time to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// onOrAfter reports whether day(t) >= day(bound).
func onOrAfter(t, bound time.Time) bool {
	return !dayOf(t).Before(dayOf(bound))
}

// onOrBefore reports whether day(t) <= day(bound).
func onOrBefore(t, bound time.Time) bool {
	return !dayOf(t).After(dayOf(bound))
}
