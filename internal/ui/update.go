package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"inquest/internal/ask"
	"inquest/internal/export"
	"inquest/internal/filter"
	"inquest/internal/paging"
	"inquest/internal/query"
	"inquest/internal/util/logx"
	"inquest/internal/views"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		w := msg.Width - sidebarWidth - 3
		if w < 20 {
			w = 20
		}
		h := msg.Height - 5
		if h < 3 {
			h = 3
		}
		m.vp.Width, m.vp.Height = w, h
		m.refreshResults()
		if m.modalActive {
			m.resizeModal()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modalActive {
			return m.updateModal(msg)
		}
		if m.refining {
			return m.updateRefine(msg)
		}
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateNav(msg)

	case envelopeMsg:
		if msg.env == nil {
			return m, nil
		}
		if !m.sess.Accept(msg.gen, msg.env) {
			return m, nil
		}
		env := msg.env
		if env.EmptyDB() {
			m.banner = "Database is empty. Press B to build it from the packet logs."
		} else if env.OK {
			m.banner = ""
		}
		if msg.view != m.sess.View {
			// User already navigated away; the envelope is retained for
			// export and raw view but must not repaint the current view.
			return m, nil
		}
		if !env.OK {
			m.outcome = outcomeError
		} else {
			if msg.view == views.Search {
				m.pager.Apply(env)
			}
			if msg.view == views.Ask {
				m.askResult = ask.Parse(env.Data)
				m.askActions = ask.Actions(m.askResult, m.sess.Entity)
				m.sel = 0
			}
			if msg.view.EmptyData(env.Data) {
				m.outcome = outcomeEmpty
				m.notice = msg.view.EmptyHint()
			} else {
				m.outcome = outcomeSuccess
			}
		}
		m.refreshResults()
		return m, nil

	case recentMsg:
		if msg.env != nil && msg.env.OK {
			list := m.sess.RecentFromEnvelope(msg.env)
			logx.Debugf("ui: recent entities refreshed, %d rows", len(list))
			m.refreshResults()
		} else if msg.env != nil && msg.env.EmptyDB() {
			m.banner = "Database is empty. Press B to build it from the packet logs."
		}
		return m, nil

	case healthMsg:
		m.healthy = msg.env != nil && msg.env.OK
		if msg.env != nil && msg.env.EmptyDB() {
			m.banner = "Database is empty. Press B to build it from the packet logs."
		}
		if !m.healthy {
			logx.Warnf("ui: health check failed")
		}
		return m, nil

	case buildDoneMsg:
		m.building = false
		if msg.env != nil && msg.env.OK {
			m.lastMsg = "build finished"
			m.banner = ""
			return m, m.recentCmd()
		}
		if msg.env != nil {
			m.lastMsg = "build failed: " + msg.env.Err().Message
		}
		return m, nil

	case toastMsg:
		m.lastMsg = msg.text
		return m, nil
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m *Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits map to the sidebar order.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
		m.switchView(views.All()[msg.Runes[0]-'1'])
		return m, nil
	}

	switch {
	case keyMatches(msg, m.keymap.Quit):
		return m, tea.Quit

	case keyMatches(msg, m.keymap.Help):
		m.openHelpModal()
		return m, nil

	case keyMatches(msg, m.keymap.Edit):
		// Enter is context sensitive: it picks the highlighted recent
		// entity on home, invokes the highlighted follow-up on ask
		// results, and opens the form everywhere else.
		if m.sess.View == views.Home {
			if recent := m.sess.Recent(); len(recent) > 0 {
				if m.sel >= len(recent) {
					m.sel = len(recent) - 1
				}
				return m, m.handOff(views.Summary, recent[m.sel].ID)
			}
			return m, nil
		}
		if m.sess.View == views.Ask && m.outcome == outcomeSuccess && len(m.askActions) > 0 {
			if m.sel >= len(m.askActions) {
				m.sel = len(m.askActions) - 1
			}
			a := m.askActions[m.sel]
			return m, m.handOff(a.View, a.Entity)
		}
		// Entity-gated views never show their form without an entity.
		if m.sess.View.EntityAtEntry() && m.sess.Entity == "" {
			m.lastMsg = "select an entity first"
			return m, nil
		}
		if len(m.inputs) > 0 {
			m.mode = modeEdit
			m.focusField(0)
		}
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.selectable() > 0 {
			if m.sel > 0 {
				m.sel--
			}
			m.refreshResults()
			return m, nil
		}

	case msg.Type == tea.KeyDown:
		if n := m.selectable(); n > 0 {
			if m.sel+1 < n {
				m.sel++
			}
			m.refreshResults()
			return m, nil
		}

	case keyMatches(msg, m.keymap.Rerun):
		return m, m.submit()

	case keyMatches(msg, m.keymap.PrevPage):
		if m.sess.View == views.Search && m.pager.HasPrev() {
			return m, m.turnPage(m.pager.PrevOffset())
		}
		return m, nil

	case keyMatches(msg, m.keymap.NextPage):
		if m.sess.View == views.Search && m.pager.HasNext() {
			return m, m.turnPage(m.pager.NextOffset())
		}
		return m, nil

	case keyMatches(msg, m.keymap.ViewRaw):
		if m.sess.Last != nil {
			m.openModal(modalRaw, "Raw Payload", prettyEnvelope(m.sess.Last, m.styles))
		} else {
			m.lastMsg = "no response yet"
		}
		return m, nil

	case keyMatches(msg, m.keymap.AppLogs):
		m.openModal(modalLogs, "Application Logs", logxDump())
		return m, nil

	case keyMatches(msg, m.keymap.ExportJSON):
		m.doExport(export.FormatJSON)
		return m, nil

	case keyMatches(msg, m.keymap.ExportText):
		m.doExport(export.FormatText)
		return m, nil

	case keyMatches(msg, m.keymap.Recent):
		m.lastMsg = "refreshing recent entities"
		return m, m.recentCmd()

	case keyMatches(msg, m.keymap.Build):
		if m.building {
			m.lastMsg = "build already running"
			return m, nil
		}
		m.building = true
		m.lastMsg = "build started"
		logx.Infof("ui: build triggered")
		return m, m.buildCmd()

	case keyMatches(msg, m.keymap.Refine):
		if m.sess.View == views.Search && m.outcome == outcomeSuccess {
			m.refining = true
			m.refine.SetValue(m.criteria.Query)
			m.refine.Focus()
		}
		return m, nil

	case keyMatches(msg, m.keymap.ClearRefine):
		m.criteria = filter.Criteria{}
		m.eval = nil
		m.refreshResults()
		return m, nil

	case keyMatches(msg, m.keymap.CopyLine):
		copyToClipboard(m.vp.View())
		m.lastMsg = "copied to clipboard"
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNav
		if len(m.inputs) > 0 {
			m.inputs[m.focus].Blur()
		}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.focusField(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusField(m.focus - 1)
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNav
		if len(m.inputs) > 0 {
			m.inputs[m.focus].Blur()
		}
		return m, m.submit()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) updateRefine(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.refining = false
		m.refine.Blur()
		return m, nil
	case tea.KeyEnter:
		m.refining = false
		m.refine.Blur()
		m.applyRefine(strings.TrimSpace(m.refine.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.refine, cmd = m.refine.Update(msg)
	return m, cmd
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter || keyMatches(msg, m.keymap.Quit) {
		m.modalActive = false
		return m, nil
	}
	if keyMatches(msg, m.keymap.CopyLine) {
		copyToClipboard(m.modalBody)
		m.lastMsg = "copied to clipboard"
		return m, nil
	}
	var cmd tea.Cmd
	m.modalVP, cmd = m.modalVP.Update(msg)
	return m, cmd
}

// switchView transitions the state machine and resets per-view presentation
// state. Entity-gated views short-circuit at entry when no entity is
// selected.
func (m *Model) switchView(v views.View) {
	m.sess.SetView(v)
	m.mode = modeNav
	m.sel = 0
	m.outcome = outcomeIdle
	m.notice = ""
	m.askActions = nil
	m.criteria = filter.Criteria{}
	m.eval = nil
	m.refining = false
	m.setForm(v)
	if v.EntityAtEntry() && m.sess.Entity == "" {
		m.outcome = outcomeNotice
		m.notice = "Select an entity first."
	}
	m.refreshResults()
}

// handOff selects an entity, moves to the target view and immediately runs
// it with the form defaults.
func (m *Model) handOff(v views.View, entity string) tea.Cmd {
	m.sess.HandOff(v, entity)
	m.switchView(v)
	return m.submit()
}

// submit collects the form, checks the view's preconditions and dispatches
// the request. Views that never call the network just repaint.
func (m *Model) submit() tea.Cmd {
	v := m.sess.View
	if !v.CallsNetwork() {
		m.refreshResults()
		return nil
	}
	collected := query.Collect(m.formValues())
	if id := collected["entity"]; id != "" {
		m.sess.SelectEntity(id)
	}

	switch {
	case v == views.Ask:
		if collected["q"] == "" {
			m.outcome = outcomeNotice
			m.notice = "Type a question first."
			m.refreshResults()
			return nil
		}
	case v == views.Between:
		if collected["a"] == "" || collected["b"] == "" {
			m.outcome = outcomeNotice
			m.notice = "Both entities are required."
			m.refreshResults()
			return nil
		}
	case v.RequiresEntity():
		if collected["entity"] == "" {
			if m.sess.Entity == "" {
				m.outcome = outcomeNotice
				m.notice = "Select an entity first."
				m.refreshResults()
				return nil
			}
			collected["entity"] = m.sess.Entity
		}
	}

	// A fresh run invalidates any client-side refinement.
	m.criteria = filter.Criteria{}
	m.eval = nil

	var cmd tea.Cmd
	if v == views.Search {
		params, merged := query.BuildSearch(m.sess.SearchParams, collected, 0)
		m.sess.RetainSearch(merged)
		m.pager = paging.Controller{Limit: query.Limit(merged), Params: merged}
		cmd = m.request(v, params)
	} else {
		cmd = m.request(v, query.Build(collected))
	}
	m.outcome = outcomeLoading
	m.refreshResults()
	return tea.Batch(cmd, m.spin.Tick)
}

// turnPage re-issues the retained search filters with a new offset.
func (m *Model) turnPage(offset int) tea.Cmd {
	m.pager.Offset = offset
	params, _ := query.BuildSearch(m.pager.Params, nil, offset)
	m.outcome = outcomeLoading
	m.refreshResults()
	return tea.Batch(m.request(views.Search, params), m.spin.Tick)
}

func (m *Model) applyRefine(q string) {
	c := filter.Criteria{}
	switch {
	case q == "":
	case strings.HasPrefix(q, "/") && strings.HasSuffix(q, "/") && len(q) > 2:
		c.Query = q[1 : len(q)-1]
		c.UseRegex = true
	case strings.ContainsAny(q, "<>=!&|"):
		c.Expr = q
	default:
		c.Query = q
	}
	ev, err := filter.NewEvaluator(c)
	if err != nil {
		m.lastMsg = fmt.Sprintf("bad refinement: %v", err)
		return
	}
	m.criteria = c
	m.eval = ev
	m.refreshResults()
}

func (m *Model) doExport(format export.Format) {
	if m.sess.Last == nil {
		m.lastMsg = "no response to export"
		return
	}
	path, err := export.Write(m.cfg.ExportDir, m.sess.View.Name(), format, m.sess.Last)
	if err != nil {
		m.lastMsg = fmt.Sprintf("export failed: %v", err)
		logx.Warnf("export: %v", err)
		return
	}
	m.lastMsg = "exported " + path
	logx.Infof("export: wrote %s", path)
}

// selectable is the size of the up/down selection list in nav mode: recent
// entities on home, follow-up actions on ask results.
func (m *Model) selectable() int {
	if m.sess.View == views.Home {
		return len(m.sess.Recent())
	}
	if m.sess.View == views.Ask && m.outcome == outcomeSuccess {
		return len(m.askActions)
	}
	return 0
}
