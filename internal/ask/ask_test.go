package ask

import (
	"testing"

	"inquest/internal/views"
)

func TestParseDefaults(t *testing.T) {
	r := Parse(nil)
	if r.Answer != DefaultAnswer {
		t.Fatalf("answer: %q", r.Answer)
	}
	r = Parse(map[string]any{"answer": ""})
	if r.Answer != DefaultAnswer {
		t.Fatalf("blank answer should default: %q", r.Answer)
	}
}

func TestParseNumericIdentifiers(t *testing.T) {
	r := Parse(map[string]any{
		"primary_entity":     float64(42),
		"suggested_entities": []any{float64(7), "8"},
	})
	if r.PrimaryEntity != "42" {
		t.Fatalf("primary: %q", r.PrimaryEntity)
	}
	if len(r.Suggested) != 2 || r.Suggested[0] != "7" || r.Suggested[1] != "8" {
		t.Fatalf("suggested: %v", r.Suggested)
	}
}

func TestActionsTruncateAtSix(t *testing.T) {
	r := Result{Suggested: []string{"1", "2", "3", "4", "5", "6", "7"}}
	acts := Actions(r, "")
	entityActs := 0
	for _, a := range acts {
		if a.View == views.Summary && a.Label != "Run summary" {
			entityActs++
		}
	}
	if entityActs != 6 {
		t.Fatalf("expected 6 entity actions, got %d", entityActs)
	}
	if acts[0].Entity != "1" || acts[5].Entity != "6" {
		t.Fatalf("order must be preserved: %v", acts)
	}
}

func TestFixedActionFallbackPrecedence(t *testing.T) {
	r := Result{PrimaryEntity: "42", Suggested: []string{"7"}}
	if got := Fallback("", r); got != "42" {
		t.Fatalf("primary takes precedence over suggested: %q", got)
	}
	if got := Fallback("9", r); got != "9" {
		t.Fatalf("current selection wins: %q", got)
	}
	if got := Fallback("", Result{Suggested: []string{"7"}}); got != "7" {
		t.Fatalf("first suggested is last resort: %q", got)
	}
}

func TestFixedActionsOmittedWithoutEntity(t *testing.T) {
	acts := Actions(Result{}, "")
	if len(acts) != 0 {
		t.Fatalf("no entity anywhere: no actions, got %v", acts)
	}
}

func TestFixedActionsTargetViews(t *testing.T) {
	acts := Actions(Result{PrimaryEntity: "42"}, "")
	if len(acts) != 2 {
		t.Fatalf("expected the two fixed actions, got %d", len(acts))
	}
	if acts[0].View != views.Flow || acts[1].View != views.Summary {
		t.Fatalf("fixed actions route to flow then summary: %v", acts)
	}
	if acts[0].Entity != "42" || acts[1].Entity != "42" {
		t.Fatalf("fixed actions carry the fallback entity: %v", acts)
	}
}
