package session

import (
	"testing"

	"inquest/internal/api"
	"inquest/internal/views"
)

func TestEntityPersistsAcrossViewChanges(t *testing.T) {
	s := New()
	s.SelectEntity("42")
	s.SetView(views.Flow)
	s.SetView(views.Trace)
	if s.Entity != "42" {
		t.Fatalf("entity must persist: %q", s.Entity)
	}
	s.SelectEntity("")
	if s.Entity != "42" {
		t.Fatalf("blank selection must not clear the entity: %q", s.Entity)
	}
}

func TestHandOff(t *testing.T) {
	s := New()
	s.HandOff(views.Summary, "7")
	if s.View != views.Summary || s.Entity != "7" {
		t.Fatalf("hand-off: view=%v entity=%q", s.View, s.Entity)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	s := New()
	first := s.NextGen()
	second := s.NextGen()

	late := &api.Envelope{OK: true, Data: map[string]any{"events": []any{}}}
	if s.Accept(first, late) {
		t.Fatalf("stale generation must be rejected")
	}
	if s.Last != nil {
		t.Fatalf("stale response must not touch state")
	}

	fresh := &api.Envelope{OK: true}
	if !s.Accept(second, fresh) {
		t.Fatalf("current generation must be accepted")
	}
	if s.Last != fresh {
		t.Fatalf("accepted response must be recorded")
	}
}

func TestLastResponseOverwrittenNeverMerged(t *testing.T) {
	s := New()
	a := &api.Envelope{OK: true, Data: map[string]any{"events": []any{1.0}}}
	b := &api.Envelope{OK: false}
	s.Accept(s.NextGen(), a)
	s.Accept(s.NextGen(), b)
	if s.Last != b {
		t.Fatalf("last response must be the most recent envelope")
	}
}

func TestRecentReplacedWholesale(t *testing.T) {
	s := New()
	s.SetRecent([]Entity{{ID: "1"}, {ID: "2"}})
	s.SetRecent([]Entity{{ID: "9"}})
	got := s.Recent()
	if len(got) != 1 || got[0].ID != "9" {
		t.Fatalf("second set must fully replace the first: %v", got)
	}
}

func TestRecentCapped(t *testing.T) {
	list := make([]Entity, 0, RecentCap+4)
	for i := 0; i < RecentCap+4; i++ {
		list = append(list, Entity{ID: string(rune('a' + i))})
	}
	s := New()
	s.SetRecent(list)
	if n := len(s.Recent()); n != RecentCap {
		t.Fatalf("recent capped at %d, got %d", RecentCap, n)
	}
}

func TestRecentFromEnvelope(t *testing.T) {
	s := New()
	env := &api.Envelope{OK: true, Data: map[string]any{"entities": []any{
		map[string]any{"player_id": "42", "name": "Ana", "last_seen": "2025-01-01T00:00:00Z"},
		map[string]any{"player_id": float64(7)},
		map[string]any{"name": "no id"},
	}}}
	got := s.RecentFromEnvelope(env)
	if len(got) != 2 {
		t.Fatalf("rows without an id are skipped: %v", got)
	}
	if got[0].ID != "42" || got[0].DisplayName() != "Ana" {
		t.Fatalf("first row: %+v", got[0])
	}
	if got[1].ID != "7" || got[1].DisplayName() != "UNKNOWN" {
		t.Fatalf("numeric id and name fallback: %+v", got[1])
	}
}
