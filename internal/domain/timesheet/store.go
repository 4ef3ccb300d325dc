package timesheet

// Store holds the most recently loaded collection of records for one query
// scope (one collaborator, one team/date-range). The collection is read-only
// from the core's perspective: edits and deletes are routed through the
// persistence layer and followed by either a single-record Patch or a full
// Replace. A Store is owned by a single consumer and is not safe for
// concurrent use.
type Store struct {
	records []Record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps the whole collection after a reload. Records with duplicate
// ids are dropped, keeping the first occurrence, so the unique-id invariant
// holds even when the upstream query misbehaves. Load order is preserved.
func (s *Store) Replace(entries []Record) {
	seen := make(map[string]struct{}, len(entries))
	records := make([]Record, 0, len(entries))
	for _, r := range entries {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		records = append(records, r)
	}
	s.records = records
}

// Current returns a copy of the loaded collection in load order.
func (s *Store) Current() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Patch replaces the record with the same id in place, preserving its
// position. It reports whether a record was found; an optimistic patch for
// an unknown id is a no-op so callers fall back to a full reload.
func (s *Store) Patch(updated Record) bool {
	for i, r := range s.records {
		if r.ID == updated.ID {
			s.records[i] = updated
			return true
		}
	}
	return false
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}
