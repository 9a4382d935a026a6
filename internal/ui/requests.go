package ui

import (
	"net/url"

	tea "github.com/charmbracelet/bubbletea"

	"inquest/internal/api"
	"inquest/internal/query"
	"inquest/internal/session"
	"inquest/internal/util/logx"
	"inquest/internal/views"
)

// request dispatches the backend call for a view. The returned command runs
// off the update goroutine; the generation captured here lets Update drop
// the completion if a newer request has been issued since.
func (m *Model) request(v views.View, params url.Values) tea.Cmd {
	gen := m.sess.NextGen()
	client := m.client
	ctx := m.ctx
	logx.Infof("ui: %s %s", v.Name(), query.Encode(params))
	return func() tea.Msg {
		var env *api.Envelope
		switch v {
		case views.Search:
			env = client.Search(ctx, params)
		case views.Summary:
			env = client.Summary(ctx, params)
		case views.Storages:
			env = client.Storages(ctx, params)
		case views.Flow:
			env = client.Flow(ctx, params)
		case views.Trace:
			env = client.Trace(ctx, params)
		case views.Between:
			env = client.Between(ctx, params)
		case views.Ask:
			env = client.Ask(ctx, params.Get("q"))
		default:
			return nil
		}
		return envelopeMsg{view: v, gen: gen, env: env}
	}
}

func (m *Model) healthCmd() tea.Cmd {
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		return healthMsg{env: client.Health(ctx)}
	}
}

func (m *Model) recentCmd() tea.Cmd {
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		return recentMsg{env: client.Entities(ctx, session.RecentCap)}
	}
}

func (m *Model) buildCmd() tea.Cmd {
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		return buildDoneMsg{env: client.Build(ctx)}
	}
}
