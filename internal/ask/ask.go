// Package ask interprets the /ask envelope and turns it into follow-up
// actions that pre-seed the view state machine.
package ask

import (
	"fmt"

	"inquest/internal/views"
)

// DefaultAnswer is shown when the backend returns no answer text.
const DefaultAnswer = "No answer available."

// MaxSuggested caps how many suggested entities become actions.
const MaxSuggested = 6

// Result is the resolved ask payload.
type Result struct {
	Answer        string
	Evidence      []any
	PrimaryEntity string
	Suggested     []string
}

// Action is a follow-up the user can invoke: it selects Entity and
// transitions to View.
type Action struct {
	Label  string
	View   views.View
	Entity string
}

// Parse extracts the ask fields from an envelope's data, applying defaults.
func Parse(data map[string]any) Result {
	r := Result{Answer: DefaultAnswer}
	if data == nil {
		return r
	}
	if s, ok := data["answer"].(string); ok && s != "" {
		r.Answer = s
	}
	if l, ok := data["evidence"].([]any); ok {
		r.Evidence = l
	}
	if s, ok := data["primary_entity"].(string); ok {
		r.PrimaryEntity = s
	} else if f, ok := data["primary_entity"].(float64); ok {
		r.PrimaryEntity = fmt.Sprintf("%.0f", f)
	}
	if l, ok := data["suggested_entities"].([]any); ok {
		for _, it := range l {
			switch v := it.(type) {
			case string:
				r.Suggested = append(r.Suggested, v)
			case float64:
				r.Suggested = append(r.Suggested, fmt.Sprintf("%.0f", v))
			}
		}
	}
	return r
}

// Actions builds the follow-up list: at most MaxSuggested entity actions in
// their original order, then the fixed "Run flow" and "Run summary". The
// fixed actions use current, falling back to the primary entity and then the
// first suggested one; with nothing to fall back to they are omitted.
func Actions(r Result, current string) []Action {
	var out []Action
	for i, id := range r.Suggested {
		if i >= MaxSuggested {
			break
		}
		out = append(out, Action{
			Label:  fmt.Sprintf("Open summary for %s", id),
			View:   views.Summary,
			Entity: id,
		})
	}
	target := Fallback(current, r)
	if target == "" {
		return out
	}
	out = append(out,
		Action{Label: "Run flow", View: views.Flow, Entity: target},
		Action{Label: "Run summary", View: views.Summary, Entity: target},
	)
	return out
}

// Fallback resolves the entity the fixed actions act on: the current
// selection, then the primary entity, then the first suggestion.
func Fallback(current string, r Result) string {
	if current != "" {
		return current
	}
	if r.PrimaryEntity != "" {
		return r.PrimaryEntity
	}
	if len(r.Suggested) > 0 {
		return r.Suggested[0]
	}
	return ""
}
