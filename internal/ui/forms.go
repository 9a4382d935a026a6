package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"inquest/internal/views"
)

// setForm rebuilds the filter form for a view from its static field table.
// The entity field is pre-filled from the session so a selected entity flows
// into any entity-scoped view without retyping.
func (m *Model) setForm(v views.View) {
	m.fields = v.Fields()
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		in := textinput.New()
		in.Placeholder = f.Label
		in.CharLimit = 256
		in.Prompt = ""
		if f.Default != "" {
			in.SetValue(f.Default)
		}
		if f.Key == "limit" && m.cfg.PageLimit > 0 {
			in.SetValue(strconv.Itoa(m.cfg.PageLimit))
		}
		if f.Key == "entity" && m.sess.Entity != "" {
			in.SetValue(m.sess.Entity)
		}
		m.inputs[i] = in
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

// formValues reads the raw form values keyed by field key.
func (m *Model) formValues() map[string]string {
	raw := map[string]string{}
	for i, f := range m.fields {
		raw[f.Key] = m.inputs[i].Value()
	}
	return raw
}

func (m *Model) focusField(idx int) {
	if len(m.inputs) == 0 {
		return
	}
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	if idx >= len(m.inputs) {
		idx = 0
	}
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}
