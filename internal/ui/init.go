package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"inquest/internal/api"
	"inquest/internal/config"
	"inquest/internal/session"
	"inquest/internal/views"
)

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		client: api.New(cfg.APIBase, time.Duration(cfg.TimeoutSec)*time.Second),
		sess:   session.New(),
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		keymap: DefaultKeyMap(),
		spin:   spinner.New(),
	}
	m.spin.Spinner = spinner.Dot
	m.vp = viewport.New(80, 20)
	m.refine = textinput.New()
	m.refine.Placeholder = "refine... (text or /regex/ or expr like qty > 10)"
	m.refine.CharLimit = 256
	m.refine.Prompt = "/"

	if cfg.Entity != "" {
		m.sess.SelectEntity(cfg.Entity)
	}
	start := m.sess.View
	if v, ok := views.FromName(cfg.View); ok {
		start = v
	}
	m.switchView(start)
	return m
}

func Run(ctx context.Context, cfg *config.Config) error {
	m := initialModel(ctx, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.healthCmd(), m.recentCmd(), m.spin.Tick)
}
