package ui

import (
	"strings"
	"testing"
)

func TestRenderRowsAlignsMultibyteNames(t *testing.T) {
	rows := []any{
		map[string]any{"name": "Åse Ødegård", "qty": 7.0},
		map[string]any{"name": "plain ascii name", "qty": 8.0},
	}
	out := stripANSI(renderRows(rows, []string{"name", "qty"}, NewStyles(true)))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	a := runeIndex(lines[1], "7")
	b := runeIndex(lines[2], "8")
	if a < 0 || b < 0 {
		t.Fatalf("qty cells not found in %q / %q", lines[1], lines[2])
	}
	if a != b {
		t.Fatalf("qty column misaligned: rune index %d vs %d", a, b)
	}
}

func TestPadCountsRunes(t *testing.T) {
	if got := runeLen(pad("Øst", 6)); got != 6 {
		t.Fatalf("padded width = %d runes, want 6", got)
	}
}

func runeIndex(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return -1
	}
	return len([]rune(s[:i]))
}
