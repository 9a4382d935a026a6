package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"inquest/internal/api"
	"inquest/internal/ask"
	"inquest/internal/config"
	"inquest/internal/filter"
	"inquest/internal/paging"
	"inquest/internal/query"
	"inquest/internal/session"
	"inquest/internal/views"
)

type mode int

const (
	modeNav mode = iota
	modeEdit
)

// outcome is the render state of the main panel for the current view. Every
// dispatched request walks loading -> one of {success, empty, error}; the
// notice states never touch the network.
type outcome int

const (
	outcomeIdle outcome = iota
	outcomeLoading
	outcomeSuccess
	outcomeEmpty
	outcomeError
	outcomeNotice
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalRaw
	modalLogs
)

type Model struct {
	ctx    context.Context
	cfg    *config.Config
	client *api.Client
	sess   *session.State
	pager  paging.Controller

	mode    mode
	outcome outcome
	// notice carries the precondition/empty-state text when outcome is
	// outcomeNotice or outcomeEmpty
	notice string

	// Filter form for the current view
	fields []query.Field
	inputs []textinput.Model
	focus  int

	// Client-side refinement over returned rows
	refine   textinput.Model
	refining bool
	criteria filter.Criteria
	eval     *filter.Evaluator

	vp     viewport.Model
	spin   spinner.Model
	styles Styles
	keymap KeyMap

	termWidth  int
	termHeight int

	// banner is the persistent empty-database advisory; cleared on the next
	// successful response
	banner   string
	lastMsg  string
	healthy  bool
	building bool

	askResult  ask.Result
	askActions []ask.Action
	// sel is the cursor over recent entities (home) or ask actions (ask)
	sel int

	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string
}

// envelopeMsg delivers a completed backend call. gen is the request
// generation captured at dispatch; stale carriers are dropped in Update.
type envelopeMsg struct {
	view views.View
	gen  uint64
	env  *api.Envelope
}

type recentMsg struct{ env *api.Envelope }

type healthMsg struct{ env *api.Envelope }

type buildDoneMsg struct{ env *api.Envelope }

type toastMsg struct{ text string }
