package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/contour/internal/logging"
	"github.com/five82/contour/internal/prefs"
	"github.com/five82/contour/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewChart View = iota
	ViewPoints
	ViewLogs
)

// Controller drives reloads and refits on behalf of the UI.
type Controller interface {
	Reload(ctx context.Context) error
	Steps() int
	SetSteps(ctx context.Context, steps int) error
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Controller Controller
	Prefs      prefs.Prefs
	PrefsPath  string
	PollTick   time.Duration
	Logger     *slog.Logger
	LogFile    string // tailed by the log view
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	ctrl      Controller
	prefsPath string
	pollTick  time.Duration
	logger    *slog.Logger
	logFile   string
	keys      keyMap

	// UI state
	theme           Theme
	currentView     View
	width           int
	height          int
	ready           bool
	showHelp        bool
	showExtremities bool
	showSamples     bool

	// Data state
	snapshot state.Snapshot
	steps    int
	notice   string // last failed keyboard action

	pointsViewport viewport.Model

	// Log view state
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		ctx:             ctx,
		store:           opts.Store,
		ctrl:            opts.Controller,
		prefsPath:       prefsPath,
		pollTick:        pollTick,
		logger:          logger,
		logFile:         opts.LogFile,
		keys:            DefaultKeyMap(),
		theme:           GetTheme(opts.Prefs.Theme),
		currentView:     ViewChart,
		showExtremities: opts.Prefs.ShowExtremities,
		showSamples:     opts.Prefs.ShowSamples,
	}
	if m.ctrl != nil {
		m.steps = m.ctrl.Steps()
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initPointsViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.updatePointsViewport()
		m.updateLogViewport()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.currentView == ViewLogs {
			cmds = append(cmds, readLogCmd(m.logFile))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		changed := !state.Snapshot(msg).LastUpdated.Equal(m.snapshot.LastUpdated)
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.HasResult && m.snapshot.Result.Steps > 0 && m.ctrl == nil {
			m.steps = m.snapshot.Result.Steps
		}
		if changed && m.ready {
			m.updatePointsViewport()
		}
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case actionMsg:
		m.notice = ""
		if msg.err != nil {
			m.notice = msg.action + ": " + msg.err.Error()
		}
		if m.ctrl != nil {
			m.steps = m.ctrl.Steps()
		}
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	switch m.currentView {
	case ViewPoints:
		b.WriteString(m.renderPoints())
	case ViewLogs:
		b.WriteString(m.renderLogs())
	default:
		b.WriteString(m.renderChart())
	}
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		if m.ready {
			m.updateLogViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchView((m.currentView + 1) % 3)

	case key.Matches(msg, m.keys.ViewLogs):
		if m.currentView == ViewLogs {
			return m.switchView(ViewChart)
		}
		return m.switchView(ViewLogs)

	case key.Matches(msg, m.keys.ToggleExtremity):
		m.showExtremities = !m.showExtremities
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSamples):
		m.showSamples = !m.showSamples
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.MoreSteps):
		return m, m.setStepsCmd(nextSteps(m.steps, true))

	case key.Matches(msg, m.keys.FewerSteps):
		return m, m.setStepsCmd(nextSteps(m.steps, false))

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()
	}

	var vp *viewport.Model
	switch m.currentView {
	case ViewPoints:
		vp = &m.pointsViewport
	case ViewLogs:
		vp = &m.logViewport
	default:
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	*vp, cmd = vp.Update(msg)
	return m, cmd
}

// switchView changes the active view, loading the log tail on entry.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	if v == ViewLogs {
		return m, readLogCmd(m.logFile)
	}
	return m, nil
}

// nextSteps doubles or halves the step count within the interactive limits.
func nextSteps(current int, up bool) int {
	if up {
		return min(max(current*2, MinViewSteps), MaxViewSteps)
	}
	return min(max(current/2, MinViewSteps), MaxViewSteps)
}

// savePrefs persists the theme and overlay toggles. Failures are logged only.
func (m Model) savePrefs() {
	p := prefs.Prefs{
		Theme:           m.theme.Name,
		ShowExtremities: m.showExtremities,
		ShowSamples:     m.showSamples,
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// actionMsg reports the outcome of a keyboard-triggered reload or refit.
type actionMsg struct {
	action string
	err    error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) setStepsCmd(steps int) tea.Cmd {
	if m.ctrl == nil || steps == m.steps {
		return nil
	}
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		return actionMsg{action: "resample", err: ctrl.SetSteps(ctx, steps)}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ActionTimeout)
		defer cancel()
		return actionMsg{action: "reload", err: ctrl.Reload(ctx)}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
