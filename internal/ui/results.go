package ui

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"inquest/internal/api"
	"inquest/internal/filter"
	"inquest/internal/views"
)

// refreshResults repaints the main panel from the session's last envelope
// and the current outcome.
func (m *Model) refreshResults() {
	m.vp.SetContent(m.renderResults())
	m.vp.GotoTop()
}

func (m *Model) renderResults() string {
	switch m.outcome {
	case outcomeLoading:
		return m.spin.View() + " loading " + m.sess.View.Name() + "..."
	case outcomeNotice:
		return m.styles.Warn.Render(m.notice)
	case outcomeError:
		return m.renderError()
	case outcomeEmpty:
		return m.warningsStrip() + m.styles.Help.Render(m.notice)
	case outcomeSuccess:
		return m.warningsStrip() + m.renderData()
	}
	// Idle: view landing text
	if m.sess.View == views.Home {
		return m.renderHome()
	}
	if m.sess.View == views.Reports {
		return m.renderReports()
	}
	return m.styles.Help.Render(m.sess.View.Help() + "\n\nPress enter to set filters, r to run.")
}

func (m *Model) renderError() string {
	e := m.sess.Last.Err()
	lines := []string{
		m.styles.Err.Render(fmt.Sprintf("%s: %s", e.Code, e.Message)),
	}
	if e.Hint != "" {
		lines = append(lines, m.styles.Help.Render(e.Hint))
	}
	if e.Details != "" {
		lines = append(lines, m.styles.Status.Render(e.Details))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) warningsStrip() string {
	if m.sess.Last == nil || len(m.sess.Last.Warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range m.sess.Last.Warnings {
		line := fmt.Sprintf("! %s: %s", w.Code, w.Message)
		if w.Count > 1 {
			line += fmt.Sprintf(" (x%d)", w.Count)
		}
		b.WriteString(m.styles.Warn.Render(line) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderData() string {
	env := m.sess.Last
	switch m.sess.View {
	case views.Search:
		rows := env.List("events")
		shown := filter.Apply(rows, m.eval, m.criteria)
		out := renderRows(shown, eventColumns, m.styles)
		if len(shown) != len(rows) {
			out += "\n" + m.styles.Help.Render(fmt.Sprintf("%d of %d rows shown (refined)", len(shown), len(rows)))
		}
		return out
	case views.Summary:
		return m.renderSummary(env.Data)
	case views.Storages:
		out := renderRows(env.List("containers"), containerColumns, m.styles)
		if n, ok := env.Int("negative_storage_count"); ok && n > 0 {
			out += "\n" + m.styles.Warn.Render(fmt.Sprintf("%d containers went negative", n))
		}
		return out
	case views.Flow:
		return m.renderFlow(env.List("chains"))
	case views.Trace:
		return m.renderTrace(env.Data)
	case views.Between:
		return renderRows(env.List("events"), eventColumns, m.styles)
	case views.Ask:
		return m.renderAsk()
	}
	return colorizeJSONRoot(env.Data, m.styles)
}

var eventColumns = []string{"ts", "type", "src", "dst", "item", "qty", "container"}

var containerColumns = []string{"container", "item", "qty", "direction", "ts"}

func (m *Model) renderSummary(data map[string]any) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Events: %d\n", len(listOf(data, "events"))))
	b.WriteString(fmt.Sprintf("Money in: %s   Money out: %s\n", anyToString(data["money_in"]), anyToString(data["money_out"])))
	if counts, ok := data["event_counts"].(map[string]any); ok && len(counts) > 0 {
		b.WriteString("\n" + m.styles.TableHead.Render("Event counts") + "\n")
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  %s %s\n", pad(k, 18), anyToString(counts[k])))
		}
	}
	if partners := listOf(data, "top_partners"); len(partners) > 0 {
		b.WriteString("\n" + m.styles.TableHead.Render("Top partners") + "\n")
		b.WriteString(renderRows(partners, []string{"player_id", "name", "count"}, m.styles))
	}
	return b.String()
}

func (m *Model) renderFlow(chains []any) string {
	var b strings.Builder
	for i, c := range chains {
		b.WriteString(fmt.Sprintf("%2d. %s\n", i+1, chainText(c)))
	}
	return b.String()
}

// chainText flattens one chain into a hop arrow line. Chains arrive either
// as a bare hop list or wrapped in a map under "hops".
func chainText(c any) string {
	hops, ok := c.([]any)
	if !ok {
		if mm, mok := c.(map[string]any); mok {
			if h, hok := mm["hops"].([]any); hok {
				hops = h
			} else {
				return anyToString(mm)
			}
		} else {
			return anyToString(c)
		}
	}
	parts := make([]string, 0, len(hops))
	for _, h := range hops {
		if row, ok := h.(map[string]any); ok {
			parts = append(parts, hopText(row))
		} else {
			parts = append(parts, anyToString(h))
		}
	}
	return strings.Join(parts, " -> ")
}

func hopText(row map[string]any) string {
	for _, k := range []string{"name", "entity", "dst", "player_id"} {
		if v, ok := row[k]; ok {
			s := anyToString(v)
			if item, ok := row["item"]; ok {
				return s + "(" + anyToString(item) + ")"
			}
			return s
		}
	}
	return anyToString(row)
}

func (m *Model) renderTrace(data map[string]any) string {
	var b strings.Builder
	if nodes := listOf(data, "nodes"); len(nodes) > 0 {
		b.WriteString(m.styles.TableHead.Render("Nodes") + "\n")
		b.WriteString(renderRows(nodes, []string{"entity", "name", "depth"}, m.styles))
		b.WriteString("\n")
	}
	if events := listOf(data, "events"); len(events) > 0 {
		b.WriteString(m.styles.TableHead.Render("Events") + "\n")
		b.WriteString(renderRows(events, eventColumns, m.styles))
	}
	return b.String()
}

func (m *Model) renderAsk() string {
	var b strings.Builder
	b.WriteString(m.askResult.Answer + "\n")
	if len(m.askResult.Evidence) > 0 {
		b.WriteString("\n" + m.styles.TableHead.Render("Evidence") + "\n")
		b.WriteString(colorizeJSONRoot(m.askResult.Evidence, m.styles) + "\n")
	}
	if len(m.askActions) > 0 {
		b.WriteString("\n" + m.styles.TableHead.Render("Follow-ups") + "\n")
		for i, a := range m.askActions {
			if i == m.sel {
				b.WriteString(m.styles.Selected.Render("> "+a.Label) + "\n")
			} else {
				b.WriteString("  " + a.Label + "\n")
			}
		}
		b.WriteString("\n" + m.styles.Help.Render("[up/down]=select  [enter]=run"))
	}
	return b.String()
}

func (m *Model) renderHome() string {
	lines := []string{
		m.styles.Title.Render("Investigation console"),
		"",
		"Pick a view with 1-9, or a recent entity with up/down + enter.",
		"",
		m.styles.Help.Render("[enter]=open highlighted entity  [R]=refresh recent  [?]=help"),
	}
	if len(m.sess.Recent()) == 0 {
		lines = append(lines, "", m.styles.Help.Render("No recent entities yet. Run a search to populate them."))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderReports() string {
	return strings.Join([]string{
		fmt.Sprintf("Reports for entity %s", m.sess.Entity),
		"",
		m.styles.Help.Render("Report generation runs as an out-of-band batch process."),
		m.styles.Help.Render("Run summary, flow or trace and export them with e/E instead."),
	}, "\n")
}

func listOf(data map[string]any, key string) []any {
	l, _ := data[key].([]any)
	return l
}

// prettyEnvelope color-keys the whole envelope for the raw-payload modal.
func prettyEnvelope(env *api.Envelope, st Styles) string {
	b, err := json.Marshal(env)
	if err != nil {
		return env.PrettyJSON()
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return env.PrettyJSON()
	}
	return colorizeJSONRoot(raw, st)
}

func overlay(base, overlay string) string {
	// Draw overlay on top of base by replacing lines where overlay has content.
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(overlay, "\n")
	maxLen := len(bLines)
	if len(oLines) > maxLen {
		maxLen = len(oLines)
	}
	for len(bLines) < maxLen {
		bLines = append(bLines, "")
	}
	for len(oLines) < maxLen {
		oLines = append(oLines, "")
	}
	out := make([]string, maxLen)
	for i := 0; i < maxLen; i++ {
		// Treat whitespace-only overlay lines as transparent
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// copyToClipboard tries to copy text using OSC52 (works in many terminals).
func copyToClipboard(s string) {
	s = stripANSI(s)
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	payload := fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	// Best-effort: write to /dev/tty to avoid clobbering the app's stdout buffer
	if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		defer f.Close()
		_, _ = f.WriteString(payload)
		return
	}
	fmt.Fprint(os.Stdout, payload)
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
