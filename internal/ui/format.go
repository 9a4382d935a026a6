package ui

import (
	"encoding/json"
	"fmt"
	"strings"
)

// renderRows paints a list of map rows as an aligned table. preferred fixes
// the column order; keys seen in rows but not preferred are appended in
// first-appearance order.
func renderRows(rows []any, preferred []string, st Styles) string {
	if len(rows) == 0 {
		return ""
	}
	cols := deriveColumns(rows, preferred)
	// Widths are in runes to keep pad and measurement consistent for
	// non-ASCII names.
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runeLen(c)
	}
	cells := make([][]string, 0, len(rows))
	for _, it := range rows {
		row, ok := it.(map[string]any)
		if !ok {
			continue
		}
		line := make([]string, len(cols))
		for i, c := range cols {
			s := truncate(anyToString(row[c]), 24)
			line[i] = s
			if n := runeLen(s); n > widths[i] {
				widths[i] = n
			}
		}
		cells = append(cells, line)
	}
	var b strings.Builder
	head := make([]string, len(cols))
	for i, c := range cols {
		head[i] = pad(c, widths[i])
	}
	b.WriteString(st.TableHead.Render(strings.Join(head, "  ")) + "\n")
	for _, line := range cells {
		for i := range line {
			line[i] = pad(line[i], widths[i])
		}
		b.WriteString(strings.Join(line, "  ") + "\n")
	}
	return b.String()
}

func deriveColumns(rows []any, preferred []string) []string {
	present := map[string]bool{}
	var extras []string
	for _, it := range rows {
		row, ok := it.(map[string]any)
		if !ok {
			continue
		}
		for k := range row {
			if !present[k] {
				present[k] = true
				extras = append(extras, k)
			}
		}
	}
	var cols []string
	picked := map[string]bool{}
	for _, c := range preferred {
		if present[c] {
			cols = append(cols, c)
			picked[c] = true
		}
	}
	for _, c := range extras {
		if len(cols) >= 8 {
			break
		}
		if !picked[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

func anyToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%.0f", t)
		}
		return fmt.Sprintf("%.2f", t)
	case bool:
		return fmt.Sprint(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

func runeLen(s string) int { return len([]rune(s)) }

func pad(s string, w int) string {
	rs := []rune(s)
	if len(rs) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(rs))
}

func truncate(s string, w int) string {
	rs := []rune(s)
	if len(rs) <= w {
		return s
	}
	return string(rs[:w])
}
