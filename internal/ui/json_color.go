package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// colorizeJSONRoot renders a decoded JSON value with per-token styles. Used
// by the raw-payload modal and the ask evidence block, so the cases cover
// exactly what encoding/json decodes into: maps, slices, strings, float64,
// bool and null.
func colorizeJSONRoot(v any, st Styles) string {
	var b strings.Builder
	writeJSON(&b, v, st, 0)
	return b.String()
}

func writeJSON(b *strings.Builder, v any, st Styles, depth int) {
	ind := strings.Repeat("  ", depth)
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(st.JSONPunct.Render("{"))
		if len(keys) > 0 {
			b.WriteString("\n")
		}
		for i, k := range keys {
			b.WriteString(ind + "  ")
			b.WriteString(st.JSONKey.Render(strconv.Quote(k)))
			b.WriteString(st.JSONPunct.Render(": "))
			writeJSON(b, t[k], st, depth+1)
			if i < len(keys)-1 {
				b.WriteString(st.JSONPunct.Render(","))
			}
			b.WriteString("\n")
		}
		b.WriteString(ind + st.JSONPunct.Render("}"))
	case []any:
		b.WriteString(st.JSONPunct.Render("["))
		if len(t) > 0 {
			b.WriteString("\n")
		}
		for i, it := range t {
			b.WriteString(ind + "  ")
			writeJSON(b, it, st, depth+1)
			if i < len(t)-1 {
				b.WriteString(st.JSONPunct.Render(","))
			}
			b.WriteString("\n")
		}
		b.WriteString(ind + st.JSONPunct.Render("]"))
	case string:
		b.WriteString(st.JSONString.Render(strconv.Quote(t)))
	case float64:
		b.WriteString(st.JSONNumber.Render(strconv.FormatFloat(t, 'g', -1, 64)))
	case bool:
		b.WriteString(st.JSONBool.Render(strconv.FormatBool(t)))
	case nil:
		b.WriteString(st.JSONNull.Render("null"))
	default:
		b.WriteString(st.JSONString.Render(fmt.Sprint(t)))
	}
}
