package timesheet

import (
	"sort"

	"github.com/shopspring/decimal"
)

// GroupTotal is the aggregated result for one group key.
type GroupTotal struct {
	Key        string
	TotalHours decimal.Decimal
	TotalCost  decimal.Decimal
	EntryCount int
}

// Summary holds totals over an entire record collection.
type Summary struct {
	TotalHours decimal.Decimal
	TotalCost  decimal.Decimal
	EntryCount int
}

// AggregateBy groups entries by the key extracted with keyOf and sums hours,
// derived cost, and entry counts per group. The result is sorted by total
// hours descending; groups with equal totals keep their first-seen order,
// which consumers such as "top three categories" views rely on.
//
// keyOf must not be nil; passing nil is a caller contract violation.
func AggregateBy(entries []Record, keyOf KeyFunc) []GroupTotal {
	totals := make(map[string]int, len(entries))
	groups := make([]GroupTotal, 0)

	for _, r := range entries {
		key := keyOf(r)
		idx, seen := totals[key]
		if !seen {
			idx = len(groups)
			totals[key] = idx
			groups = append(groups, GroupTotal{
				Key:        key,
				TotalHours: decimal.Zero,
				TotalCost:  decimal.Zero,
			})
		}
		groups[idx].TotalHours = groups[idx].TotalHours.Add(r.DurationHours)
		groups[idx].TotalCost = groups[idx].TotalCost.Add(r.Cost())
		groups[idx].EntryCount++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalHours.GreaterThan(groups[j].TotalHours)
	})

	return groups
}

// Summarize sums per-group totals into a grand total. For any record set it
// equals SummarizeRecords over the raw records.
func Summarize(groups []GroupTotal) Summary {
	s := Summary{TotalHours: decimal.Zero, TotalCost: decimal.Zero}
	for _, g := range groups {
		s.TotalHours = s.TotalHours.Add(g.TotalHours)
		s.TotalCost = s.TotalCost.Add(g.TotalCost)
		s.EntryCount += g.EntryCount
	}
	return s
}

// SummarizeRecords computes the grand total directly over raw records.
func SummarizeRecords(entries []Record) Summary {
	s := Summary{TotalHours: decimal.Zero, TotalCost: decimal.Zero}
	for _, r := range entries {
		s.TotalHours = s.TotalHours.Add(r.DurationHours)
		s.TotalCost = s.TotalCost.Add(r.Cost())
		s.EntryCount++
	}
	return s
}

// Percentage returns part's share of total as a percentage rounded to two
// decimal places. A zero total yields 0 for every group, never NaN or Inf.
func Percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Mul(decimal.NewFromInt(100)).Div(total).Round(2).Float64()
	return pct
}
