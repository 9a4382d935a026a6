// Package views defines the closed set of console views and the static
// tables that drive the view state machine: per-view filter fields,
// preconditions, emptiness predicates and empty-state hints.
package views

import "inquest/internal/query"

type View int

const (
	Home View = iota
	Search
	Summary
	Storages
	Flow
	Trace
	Between
	Reports
	Ask
)

// All lists the views in sidebar order.
func All() []View {
	return []View{Home, Search, Summary, Storages, Flow, Trace, Between, Reports, Ask}
}

func (v View) Name() string {
	switch v {
	case Home:
		return "home"
	case Search:
		return "search"
	case Summary:
		return "summary"
	case Storages:
		return "storages"
	case Flow:
		return "flow"
	case Trace:
		return "trace"
	case Between:
		return "between"
	case Reports:
		return "reports"
	case Ask:
		return "ask"
	}
	return "home"
}

func (v View) Title() string {
	switch v {
	case Home:
		return "Home"
	case Search:
		return "Search"
	case Summary:
		return "Summary"
	case Storages:
		return "Storages"
	case Flow:
		return "Flow"
	case Trace:
		return "Trace"
	case Between:
		return "Between"
	case Reports:
		return "Reports"
	case Ask:
		return "Ask"
	}
	return "Home"
}

func (v View) Help() string {
	switch v {
	case Home:
		return "Pick a view or a recent entity to start."
	case Search:
		return "Find events by entity, type, or item."
	case Summary:
		return "Quick overview of totals and top partners."
	case Storages:
		return "Container balances and inventory movement."
	case Flow:
		return "Trace time-coherent chains."
	case Trace:
		return "Network adjacency within a depth."
	case Between:
		return "Find events connecting two entities."
	case Reports:
		return "Generate or open reports for an entity."
	case Ask:
		return "Ask a question in plain language."
	}
	return ""
}

// FromName maps a view name back to its enum value.
func FromName(name string) (View, bool) {
	for _, v := range All() {
		if v.Name() == name {
			return v, true
		}
	}
	return Home, false
}

// Fields returns the filter-form descriptors for the view. The collector
// reads values by Key only.
func (v View) Fields() []query.Field {
	switch v {
	case Search:
		return []query.Field{
			{Key: "entity", Label: "Entity ID"},
			{Key: "name", Label: "Name"},
			{Key: "item", Label: "Item"},
			{Key: "type", Label: "Event type"},
			{Key: "from", Label: "From (ISO)"},
			{Key: "to", Label: "To (ISO)"},
			{Key: "limit", Label: "Limit", Default: "200"},
		}
	case Summary:
		return []query.Field{
			{Key: "entity", Label: "Entity ID"},
		}
	case Storages:
		return []query.Field{
			{Key: "entity", Label: "Entity ID"},
			{Key: "container", Label: "Container"},
			{Key: "from", Label: "From (ISO)"},
			{Key: "to", Label: "To (ISO)"},
		}
	case Flow:
		return []query.Field{
			{Key: "entity", Label: "Entity ID"},
			{Key: "direction", Label: "Direction", Default: "both"},
			{Key: "depth", Label: "Depth", Default: "4"},
			{Key: "window", Label: "Window (min)", Default: "120"},
			{Key: "item", Label: "Item"},
		}
	case Trace:
		return []query.Field{
			{Key: "entity", Label: "Entity ID"},
			{Key: "depth", Label: "Depth", Default: "2"},
			{Key: "item", Label: "Item"},
		}
	case Between:
		return []query.Field{
			{Key: "a", Label: "Entity A"},
			{Key: "b", Label: "Entity B"},
			{Key: "from", Label: "From (ISO)"},
			{Key: "to", Label: "To (ISO)"},
		}
	case Ask:
		return []query.Field{
			{Key: "q", Label: "Question"},
		}
	}
	return nil
}

// RequiresEntity reports whether the view needs a current entity before a
// request may be issued. Trace additionally enforces this at view entry;
// Reports requires it just to render.
func (v View) RequiresEntity() bool {
	switch v {
	case Summary, Storages, Flow, Trace, Between, Reports:
		return true
	}
	return false
}

// EntityAtEntry reports whether the entity requirement is checked when the
// view is entered rather than at submit time.
func (v View) EntityAtEntry() bool {
	return v == Trace || v == Between || v == Reports
}

// CallsNetwork reports whether running the view issues a backend request.
func (v View) CallsNetwork() bool {
	return v != Home && v != Reports
}

// EmptyData applies the view-specific emptiness predicate to a successful
// envelope's data.
func (v View) EmptyData(data map[string]any) bool {
	switch v {
	case Search, Summary, Between:
		return emptyList(data, "events")
	case Storages:
		return emptyList(data, "containers")
	case Flow:
		return emptyList(data, "chains")
	case Trace:
		return emptyList(data, "nodes") && emptyList(data, "events")
	case Ask:
		answer, _ := data["answer"].(string)
		return answer == "" && emptyList(data, "evidence")
	}
	return false
}

// EmptyHint is shown with the "no results" state.
func (v View) EmptyHint() string {
	switch v {
	case Search:
		return "No events matched. Loosen the filters or widen the time range."
	case Summary:
		return "No events recorded for this entity."
	case Storages:
		return "No container activity for this entity."
	case Flow:
		return "No chains found. Try a larger depth or window."
	case Trace:
		return "No adjacency found within this depth."
	case Between:
		return "No events connect these two entities."
	case Ask:
		return "No answer or evidence for this question."
	}
	return "Nothing to show yet."
}

func emptyList(data map[string]any, key string) bool {
	if data == nil {
		return true
	}
	l, ok := data[key].([]any)
	return !ok || len(l) == 0
}
