package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/contour/internal/logtail"
)

// logLinesMsg carries the tail of the log file.
type logLinesMsg struct {
	lines []string
	err   error
}

func readLogCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// initLogViewport creates the scrollable log view.
func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width, max(m.height-HeaderRows, 1))
}

// handleLogLines refreshes the log view, following the tail when the view
// was already scrolled to the bottom.
func (m *Model) handleLogLines(msg logLinesMsg) {
	follow := m.logViewport.AtBottom() || len(m.logLines) == 0
	m.logLines = msg.lines
	m.logErr = msg.err
	m.updateLogViewport()
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) updateLogViewport() {
	m.logViewport.Width = m.width
	m.logViewport.Height = max(m.height-HeaderRows, 1)

	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	switch {
	case m.logErr != nil:
		m.logViewport.SetContent(bg.Render("Error: "+m.logErr.Error(), styles.DangerText))
		return
	case len(m.logLines) == 0:
		m.logViewport.SetContent(bg.Render("No log entries in "+m.logFile, styles.MutedText))
		return
	}

	lines := make([]string, len(m.logLines))
	for i, raw := range m.logLines {
		lines[i] = formatLogLine(logtail.Parse(raw), styles, bg)
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
}

// formatLogLine renders one parsed slog record: clock time, level, message
// and attributes.
func formatLogLine(e logtail.Entry, styles Styles, bg BgStyle) string {
	if e.Level == "" {
		return bg.Render(e.Raw, styles.Text)
	}
	parts := make([]string, 0, 3+len(e.Attrs))
	if clock := clockTime(e.Time); clock != "" {
		parts = append(parts, bg.Render(clock, styles.FaintText))
	}
	parts = append(parts,
		bg.Render(padRight(e.Level, 5), levelStyle(e.Level, styles)),
		bg.Render(e.Message, styles.Text),
	)
	for _, a := range e.Attrs {
		parts = append(parts, bg.Render(a.Key+"=", styles.MutedText)+bg.Render(a.Value, styles.AccentText))
	}
	return strings.Join(parts, bg.Space())
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}

// clockTime extracts HH:MM:SS from an RFC 3339 timestamp.
func clockTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	lines := strings.Split(m.logViewport.View(), "\n")
	for i, line := range lines {
		lines[i] = bg.FillLine(line, m.width)
	}
	return strings.Join(lines, "\n")
}
