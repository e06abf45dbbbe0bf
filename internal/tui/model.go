// MoodFlix - Mood-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomtom215/moodflix/internal/logging"
	"github.com/tomtom215/moodflix/internal/models"
	"github.com/tomtom215/moodflix/internal/page"
	"github.com/tomtom215/moodflix/internal/query"
)

// pingTimeout bounds the startup health probe.
const pingTimeout = 5 * time.Second

// PosterChecker reports whether a poster image would load. *poster.Checker implements it.
type PosterChecker interface {
	Check(ctx context.Context, url string) bool
}

// Pinger probes the recommendation service. *recommend.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) (*models.ServiceInfo, error)
}

// Options configures the terminal model.
type Options struct {
	// Context is the parent of every request issued by the model.
	Context context.Context
	// Fetcher issues recommendation requests; nil disables fetching.
	Fetcher query.Fetcher
	// Checker probes poster images; nil disables probing.
	Checker PosterChecker
	// Pinger probes the service at startup; nil skips the probe.
	Pinger Pinger
	// Page configures poster resolution for the result cards.
	Page page.Options
	// Debounce is the quiet period after a mood keystroke before a request is issued.
	// Zero issues a request on every change.
	Debounce time.Duration
}

type focus int

const (
	focusInput focus = iota
	focusBrowse
)

type serviceStatus int

const (
	serviceUnknown serviceStatus = iota
	serviceOnline
	serviceOffline
)

// Model is the root Bubble Tea model.
//
// Every page mutation happens in Update, one message at a time. Requests and
// poster probes run as commands and come back as messages tagged with the query
// sequence number, so late answers for superseded queries are dropped.
type Model struct {
	ctx      context.Context
	fetcher  query.Fetcher
	checker  PosterChecker
	pinger   Pinger
	debounce time.Duration

	page *page.Page

	input    textinput.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	focus    focus
	genreIdx int
	cursor   int

	// debounceID identifies the latest pending debounce tick.
	debounceID int

	service        serviceStatus
	serviceVersion string

	width  int
	height int
}

// New creates the model with the input focused and the genre filter set to All.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = page.InputHint
	ti.CharLimit = 200
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = BrandStyle

	h := help.New()
	h.Styles.ShortKey = PromptStyle.Bold(true)
	h.Styles.ShortDesc = MutedStyle
	h.Styles.FullKey = PromptStyle.Bold(true)
	h.Styles.FullDesc = MutedStyle

	return Model{
		ctx:      opts.Context,
		fetcher:  opts.Fetcher,
		checker:  opts.Checker,
		pinger:   opts.Pinger,
		debounce: opts.Debounce,
		page:     page.New(opts.Page),
		input:    ti,
		spinner:  s,
		help:     h,
		keys:     keys,
		focus:    focusInput,
		cursor:   -1,
	}
}

// Page returns the page the model drives.
func (m Model) Page() *page.Page { return m.page }

// Cursor returns the index of the highlighted primary card, or -1.
func (m Model) Cursor() int { return m.cursor }

// Init starts the cursor blink and the service health probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.ping())
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case debounceMsg:
		if msg.id != m.debounceID {
			return m, nil
		}
		return m, m.applyMood(msg.mood)

	case resultMsg:
		if !m.page.Settle(msg.outcome) {
			return m, nil
		}
		m.resetCursor()
		return m, m.probePosters()

	case posterMsg:
		if !msg.ok {
			m.page.MarkPosterFailed(msg.target)
		}
		return m, nil

	case pingMsg:
		if msg.err != nil {
			m.service = serviceOffline
			logging.Warn().Err(msg.err).Msg("Recommendation service unreachable")
			return m, nil
		}
		m.service = serviceOnline
		if msg.info != nil {
			m.serviceVersion = msg.info.Version
		}
		return m, nil

	case spinner.TickMsg:
		if m.page.Phase() == page.PhaseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextGenre):
		return m, m.cycleGenre(1)
	case key.Matches(msg, m.keys.PrevGenre):
		return m, m.cycleGenre(-1)
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.debounceID++
		return m, m.applyMood(m.input.Value())
	case key.Matches(msg, m.keys.Browse):
		m.focus = focusBrowse
		m.input.Blur()
		m.resetCursor()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}

	if m.debounce <= 0 {
		return m, tea.Batch(cmd, m.applyMood(after))
	}
	m.debounceID++
	id := m.debounceID
	tick := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{id: id, mood: after}
	})
	return m, tea.Batch(cmd, tick)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.focus = focusInput
		m.cursor = -1
		m.page.Hover(-1)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
	}
	return m, nil
}

// applyMood feeds mood to the page and issues the resulting request, if any.
func (m *Model) applyMood(mood string) tea.Cmd {
	ticket, ok := m.page.SetMood(mood)
	m.resetCursor()
	if !ok {
		return nil
	}
	return m.fetch(ticket)
}

// cycleGenre moves the genre filter by delta. The mood currently typed is
// applied with it, superseding any pending debounce.
func (m *Model) cycleGenre(delta int) tea.Cmd {
	genres := models.Genres()
	m.genreIdx = (m.genreIdx + delta + len(genres)) % len(genres)
	m.debounceID++

	ticket, ok, err := m.page.Set(m.input.Value(), genres[m.genreIdx])
	if err != nil {
		logging.Error().Err(err).Msg("Genre selection rejected")
		return nil
	}
	m.resetCursor()
	if !ok {
		return nil
	}
	return m.fetch(ticket)
}

func (m *Model) fetch(ticket query.Ticket) tea.Cmd {
	logging.Debug().
		Uint64("query_seq", ticket.Seq).
		Str("mood", ticket.Params.Mood).
		Str("genre", ticket.Params.Genre).
		Msg("Requesting recommendations")

	if m.fetcher == nil {
		return m.spinner.Tick
	}
	ctx, fetcher := m.ctx, m.fetcher
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return resultMsg{outcome: query.Execute(ctx, fetcher, ticket)}
	})
}

func (m Model) probePosters() tea.Cmd {
	if m.checker == nil {
		return nil
	}
	targets := m.page.PosterTargets()
	if len(targets) == 0 {
		return nil
	}

	ctx, checker := m.ctx, m.checker
	cmds := make([]tea.Cmd, len(targets))
	for i, target := range targets {
		cmds[i] = func() tea.Msg {
			return posterMsg{target: target, ok: checker.Check(ctx, target.URL)}
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) ping() tea.Cmd {
	if m.pinger == nil {
		return nil
	}
	ctx, pinger := m.ctx, m.pinger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		info, err := pinger.Ping(ctx)
		return pingMsg{info: info, err: err}
	}
}

// resetCursor places the cursor on the first card while browsing and hides it otherwise.
func (m *Model) resetCursor() {
	m.cursor = -1
	if m.focus == focusBrowse && len(m.page.Primary()) > 0 {
		m.cursor = 0
	}
	m.page.Hover(m.cursor)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.page.Primary())
	if n == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.page.Hover(m.cursor)
}
