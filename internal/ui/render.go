package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"inquest/internal/util/logx"
	"inquest/internal/views"
)

const sidebarWidth = 22

func (m *Model) View() string {
	v := m.renderMain()
	if m.modalActive {
		// Dim the background content while keeping it visible
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderModal())
	}
	return v
}

func (m *Model) renderMain() string {
	rows := []string{m.renderHeader()}
	if m.banner != "" {
		rows = append(rows, m.styles.Banner.Render(" "+m.banner+" "))
	}
	var content string
	if m.mode == modeEdit {
		content = m.renderForm()
	} else {
		content = m.vp.View()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", content)
	rows = append(rows, body)
	rows = append(rows, m.renderBottom(), m.styles.Status.Render(m.renderStatus()))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderHeader() string {
	api := m.styles.Good.Render("api:up")
	if !m.healthy {
		api = m.styles.Err.Render("api:down")
	}
	parts := []string{m.styles.Title.Render("inquest"), m.sess.View.Title(), api}
	if m.building {
		parts = append(parts, m.styles.Warn.Render(m.spin.View()+"building"))
	}
	if m.sess.Entity != "" {
		parts = append(parts, m.styles.Help.Render("entity:"+m.sess.Entity))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	for i, v := range views.All() {
		line := fmt.Sprintf("%d %s", i+1, v.Title())
		if v == m.sess.View {
			line = m.styles.NavActive.Render("> " + line)
		} else {
			line = m.styles.NavItem.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}
	recent := m.sess.Recent()
	if len(recent) > 0 {
		b.WriteString("\n" + m.styles.FieldLabel.Render("Recent") + "\n")
		for i, e := range recent {
			label := truncate(e.DisplayName(), sidebarWidth-4)
			if m.sess.View == views.Home && i == m.sel {
				b.WriteString(m.styles.Selected.Render("> "+label) + "\n")
			} else {
				b.WriteString(m.styles.NavItem.Render("  "+label) + "\n")
			}
		}
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

func (m *Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.sess.View.Title()+" filters") + "\n\n")
	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, m.styles.FieldLabel.Render(pad(f.Label+":", 14)), m.inputs[i].View()))
	}
	b.WriteString("\n" + m.styles.Help.Render("[tab]=next field  [enter]=run  [esc]=back"))
	return b.String()
}

func (m *Model) renderBottom() string {
	if m.refining {
		return fmt.Sprintf("refine: %s    [enter]=apply [esc]=cancel", m.refine.View())
	}
	if m.criteria.Query != "" || m.criteria.Expr != "" {
		q := m.criteria.Query
		if m.criteria.UseRegex {
			q = "/" + q + "/"
		}
		if m.criteria.Expr != "" {
			q = m.criteria.Expr
		}
		return fmt.Sprintf("refine: %s    [F]=clear", q)
	}
	if m.termWidth > 0 {
		return strings.Repeat(" ", m.termWidth)
	}
	return ""
}

func (m *Model) renderStatus() string {
	state := ""
	switch m.outcome {
	case outcomeLoading:
		state = m.spin.View() + "loading"
	case outcomeError:
		state = "error"
	case outcomeEmpty:
		state = "no results"
	case outcomeSuccess:
		state = "ok"
	default:
		state = "ready"
	}
	parts := []string{"[" + state + "]"}
	if m.sess.View == views.Search && m.outcome == outcomeSuccess {
		from, to, total := m.pager.Window()
		parts = append(parts, fmt.Sprintf("rows %d-%d of %d", from, to, total))
		nav := ""
		if m.pager.HasPrev() {
			nav += "[=prev "
		}
		if m.pager.HasNext() {
			nav += "]=next"
		}
		if nav != "" {
			parts = append(parts, strings.TrimSpace(nav))
		}
	}
	parts = append(parts, "[?]=help")
	if m.lastMsg != "" {
		parts = append(parts, m.lastMsg)
	}
	return strings.Join(parts, " | ")
}

func (m *Model) openModal(kind modalKind, title, body string) {
	m.modalActive = true
	m.modalKind = kind
	m.modalTitle = title
	m.modalBody = body
	m.resizeModal()
}

func (m *Model) openHelpModal() {
	m.openModal(modalHelp, "Help", m.helpText())
}

func (m *Model) helpText() string {
	lines := []string{
		"Views:",
		"  [1-9] switch view (home, search, summary, storages, flow, trace, between, reports, ask)",
		"  [enter] open filter form; pick recent entity (home); run follow-up (ask)",
		"",
		"Requests:",
		"  [r] re-run current view",
		"  [[/]] previous / next search page",
		"  [f] refine returned rows locally   [F] clear refinement",
		"",
		"Data:",
		"  [v] raw payload   [e] export json   [E] export txt   [c] copy",
		"",
		"Session:",
		"  [R] refresh recent entities   [B] build database   [L] application logs",
		"  [?] help   [q] quit",
	}
	return strings.Join(lines, "\n")
}

func (m *Model) resizeModal() {
	w := m.termWidth - 6
	h := m.termHeight - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.modalVP = viewport.New(w-4, h-4)
	m.modalVP.SetContent(m.modalBody)
}

func (m *Model) renderModal() string {
	content := m.modalVP.View() + "\n[esc/enter]=close  [c]=copy"
	if m.modalKind == modalHelp {
		content = m.modalVP.View() + "\n[esc/enter]=close"
	}
	boxW := m.termWidth - 6
	if boxW < 20 {
		boxW = 20
	}
	title := m.styles.PopupTitle.Render(m.modalTitle)
	body := m.styles.PopupBox.Width(boxW).Render(title + "\n" + content)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}

func logxDump() string { return logx.Dump() }
