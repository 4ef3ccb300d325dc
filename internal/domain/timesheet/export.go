package timesheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Delimiter is the field separator used in exported text.
const Delimiter = ";"

// QuoteStrategy selects how exported fields are protected against embedded
// delimiters.
type QuoteStrategy int

const (
	// QuoteOnDelimiter quotes any field containing a delimiter, quote
	// character, or newline, doubling internal quotes (standard CSV quoting).
	QuoteOnDelimiter QuoteStrategy = iota
	// QuoteForced wraps the fields of columns flagged ForceQuote in a
	// literal double-quote pair unconditionally and leaves the rest raw.
	QuoteForced
)

// ColumnSpec describes one exported column: its header label and how to
// render a record into the field value.
type ColumnSpec struct {
	Label      string
	Value      func(Record) string
	ForceQuote bool // Only consulted under QuoteForced
}

// DefaultColumns returns the standard export layout: date, collaborator,
// project, category, hours, comment.
func DefaultColumns() []ColumnSpec {
	return []ColumnSpec{
		{Label: "Date", Value: func(r Record) string { return FormatDate(r.Date) }},
		{Label: "Collaborator", Value: Record.CollaboratorLabel},
		{Label: "Project", Value: Record.ProjectLabel},
		{Label: "Category", Value: Record.CategoryLabel},
		{Label: "Hours", Value: func(r Record) string { return FormatHours(r.DurationHours) }},
		{Label: "Comment", Value: func(r Record) string { return r.Comment }, ForceQuote: true},
	}
}

// ToDelimitedText serializes entries to a semicolon-delimited text block:
// one header row of column labels, then one row per entry in input order.
// It performs no I/O; triggering a download or file write is the caller's
// concern.
func ToDelimitedText(entries []Record, columns []ColumnSpec, strategy QuoteStrategy) string {
	var sb strings.Builder

	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = quoteField(col.Label, false, strategy)
	}
	sb.WriteString(strings.Join(labels, Delimiter))
	sb.WriteString("\n")

	fields := make([]string, len(columns))
	for _, r := range entries {
		for i, col := range columns {
			fields[i] = quoteField(col.Value(r), col.ForceQuote, strategy)
		}
		sb.WriteString(strings.Join(fields, Delimiter))
		sb.WriteString("\n")
	}

	return sb.String()
}

// quoteField applies the selected quoting strategy to a single field.
func quoteField(s string, forced bool, strategy QuoteStrategy) string {
	if strategy == QuoteForced {
		if forced {
			return `"` + s + `"`
		}
		return s
	}
	if strings.ContainsAny(s, Delimiter+"\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// FormatDate renders a date as DD/MM/YYYY. A zero date renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatHours renders a duration with two decimal places and a comma as the
// decimal separator, e.g. 1.5 -> "1,50", matching the numeric convention of
// the spreadsheet tools that consume the export.
func FormatHours(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// ExportFilename builds a download filename of the form
// <purpose>_<ISO-date>.csv.
func ExportFilename(purpose string, referenceDate time.Time) string {
	return fmt.Sprintf("%s_%s.csv", purpose, referenceDate.Format("2006-01-02"))
}
