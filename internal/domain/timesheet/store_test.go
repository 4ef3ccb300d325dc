package timesheet

import "testing"

func TestStore(t *testing.T) {
	t.Run("replace keeps load order and drops duplicate ids", func(t *testing.T) {
		s := NewStore()
		s.Replace([]Record{
			{ID: "1", Comment: "first"},
			{ID: "2"},
			{ID: "1", Comment: "duplicate"},
		})

		current := s.Current()
		if len(current) != 2 {
			t.Fatalf("expected 2 records, got %d", len(current))
		}
		if current[0].ID != "1" || current[0].Comment != "first" {
			t.Errorf("expected first occurrence to win, got %+v", current[0])
		}
		if current[1].ID != "2" {
			t.Errorf("expected load order preserved, got %+v", current[1])
		}
	})

	t.Run("patch replaces in place", func(t *testing.T) {
		s := NewStore()
		s.Replace([]Record{{ID: "1"}, {ID: "2", Comment: "old"}, {ID: "3"}})

		if !s.Patch(Record{ID: "2", Comment: "new"}) {
			t.Fatal("expected patch to find the record")
		}
		current := s.Current()
		if current[1].ID != "2" || current[1].Comment != "new" {
			t.Errorf("expected record 2 updated in place, got %+v", current[1])
		}
	})

	t.Run("patch of unknown id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Replace([]Record{{ID: "1"}})
		if s.Patch(Record{ID: "missing"}) {
			t.Error("expected patch to report false for unknown id")
		}
		if s.Len() != 1 {
			t.Errorf("expected length unchanged, got %d", s.Len())
		}
	})

	t.Run("current returns a copy", func(t *testing.T) {
		s := NewStore()
		s.Replace([]Record{{ID: "1", Comment: "kept"}})

		current := s.Current()
		current[0].Comment = "mutated"

		if s.Current()[0].Comment != "kept" {
			t.Error("mutating the returned slice must not affect the store")
		}
	})
}
