package filter

import "testing"

func row(kv map[string]any) map[string]any { return kv }

func TestPlainQueryOnField(t *testing.T) {
	c := Criteria{Query: "acme", Field: "name"}
	ev, err := NewEvaluator(c)
	if err != nil {
		t.Fatalf("evaluator: %v", err)
	}
	if !ev.Match(row(map[string]any{"name": "ACME Corp"}), c) {
		t.Fatalf("case-insensitive contains should match")
	}
	if ev.Match(row(map[string]any{"name": "other"}), c) {
		t.Fatalf("non-matching field")
	}
	if ev.Match(row(map[string]any{"item": "acme"}), c) {
		t.Fatalf("query scoped to field must ignore other fields")
	}
}

func TestRegexQuery(t *testing.T) {
	c := Criteria{Query: "^bank_", UseRegex: true, Field: "type"}
	ev, err := NewEvaluator(c)
	if err != nil {
		t.Fatalf("evaluator: %v", err)
	}
	if !ev.Match(row(map[string]any{"type": "bank_transfer"}), c) {
		t.Fatalf("regex should match")
	}
	if ev.Match(row(map[string]any{"type": "phone_add"}), c) {
		t.Fatalf("regex should not match")
	}
}

func TestExpression(t *testing.T) {
	c := Criteria{Expr: "money > 1000"}
	ev, err := NewEvaluator(c)
	if err != nil {
		t.Fatalf("evaluator: %v", err)
	}
	if !ev.Match(row(map[string]any{"money": 5000.0}), c) {
		t.Fatalf("expression should pass")
	}
	if ev.Match(row(map[string]any{"money": 10.0}), c) {
		t.Fatalf("expression should fail")
	}
	if ev.Match(row(map[string]any{}), c) {
		t.Fatalf("missing parameter fails closed")
	}
}

func TestBadExpressionRejected(t *testing.T) {
	if _, err := NewEvaluator(Criteria{Expr: "money >"}); err == nil {
		t.Fatalf("malformed expression must error")
	}
}

func TestApply(t *testing.T) {
	c := Criteria{Query: "phone", Field: "type"}
	ev, _ := NewEvaluator(c)
	rows := []any{
		map[string]any{"type": "phone_add"},
		map[string]any{"type": "bank_transfer"},
		"not a row",
	}
	got := Apply(rows, ev, c)
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
}

func TestApplyNoCriteriaPassesAll(t *testing.T) {
	rows := []any{map[string]any{"a": 1.0}}
	if got := Apply(rows, nil, Criteria{}); len(got) != 1 {
		t.Fatalf("nil evaluator passes everything")
	}
}
