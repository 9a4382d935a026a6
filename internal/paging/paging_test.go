package paging

import (
	"testing"

	"inquest/internal/api"
)

func envWith(matched, returned int) *api.Envelope {
	return &api.Envelope{
		OK:   true,
		Data: map[string]any{"matched_total": float64(matched), "returned_count": float64(returned)},
	}
}

func TestFirstFullPage(t *testing.T) {
	c := Controller{Limit: 50, Offset: 0}
	c.Apply(envWith(120, 50))
	if c.HasPrev() {
		t.Fatalf("no previous page at offset 0")
	}
	if !c.HasNext() {
		t.Fatalf("next should be enabled: 0+50 < 120")
	}
	if c.NextOffset() != 50 {
		t.Fatalf("next offset: %d", c.NextOffset())
	}
}

func TestMiddlePage(t *testing.T) {
	c := Controller{Limit: 50, Offset: 50}
	c.Apply(envWith(120, 50))
	if !c.HasPrev() {
		t.Fatalf("previous should be enabled at offset 50")
	}
	if c.PrevOffset() != 0 {
		t.Fatalf("prev offset: %d", c.PrevOffset())
	}
	if !c.HasNext() {
		t.Fatalf("next should be enabled: 50+50 < 120")
	}
}

func TestLastShortPage(t *testing.T) {
	c := Controller{Limit: 50, Offset: 100}
	c.Apply(envWith(120, 20))
	if c.HasNext() {
		t.Fatalf("next must be disabled on the last page")
	}
	if !c.HasPrev() {
		t.Fatalf("previous should be enabled")
	}
}

func TestExactBoundaryDisablesNext(t *testing.T) {
	// 100 matches, second page returns exactly limit rows and ends the set.
	c := Controller{Limit: 50, Offset: 50}
	c.Apply(envWith(100, 50))
	if c.HasNext() {
		t.Fatalf("50+50 == 100: the heuristic would over-enable here")
	}
}

func TestPrevOffsetClampsAtZero(t *testing.T) {
	c := Controller{Limit: 50, Offset: 20}
	if c.PrevOffset() != 0 {
		t.Fatalf("prev offset clamps to 0, got %d", c.PrevOffset())
	}
}

func TestReturnedCountFallsBackToEvents(t *testing.T) {
	c := Controller{Limit: 50, Offset: 0}
	c.Apply(&api.Envelope{OK: true, Data: map[string]any{
		"matched_total": float64(2),
		"events":        []any{map[string]any{}, map[string]any{}},
	}})
	if c.ReturnedCount != 2 {
		t.Fatalf("returned count fallback: %d", c.ReturnedCount)
	}
}

func TestWindow(t *testing.T) {
	c := Controller{Limit: 50, Offset: 50, MatchedTotal: 120, ReturnedCount: 50}
	from, to, total := c.Window()
	if from != 51 || to != 100 || total != 120 {
		t.Fatalf("window: %d-%d of %d", from, to, total)
	}
}
