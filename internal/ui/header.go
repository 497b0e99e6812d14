package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// renderHeader renders the status line: source, counts, steps, freshness.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	location := m.snapshot.Location
	if location == "" {
		location = "-"
	}
	parts := []string{
		bg.Render("contour", styles.Logo),
		bg.Render(truncateMiddle(location, max(m.width/3, 12)), styles.Text),
	}

	if m.snapshot.HasResult {
		res := m.snapshot.Result
		parts = append(parts,
			bg.Render(fmt.Sprintf("%d pts", len(res.Input)), styles.MutedText),
			bg.Render(fmt.Sprintf("%d ext", len(res.Extremities)), styles.InfoText),
		)
	}
	parts = append(parts, bg.Render(fmt.Sprintf("steps %d", m.steps), styles.AccentText))

	if m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render("never loaded", styles.FaintText))
	} else {
		parts = append(parts, bg.Render("updated "+humanize.Time(m.snapshot.LastUpdated), styles.MutedText))
	}

	switch {
	case m.notice != "":
		parts = append(parts, bg.Render(truncate(m.notice, 48), styles.WarningText))
	case m.snapshot.LastError != nil:
		style := styles.WarningText
		if m.snapshot.IsStale() {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate(m.snapshot.LastError.Error(), 48), style))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxHeight(1).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the context-sensitive key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"+/-", "Steps"},
		{"x", ternary(m.showExtremities, "Hide ext", "Show ext")},
		{"s", ternary(m.showSamples, "Hide samples", "Show samples")},
		{"r", "Reload"},
	}
	switch m.currentView {
	case ViewPoints:
		commands = append(commands, cmd{"j/k", "Scroll"}, cmd{"Tab", "Logs"})
	case ViewLogs:
		commands = []cmd{{"j/k", "Scroll"}, {"G", "Follow"}, {"l", "Chart"}, {"Tab", "Chart"}}
	default:
		commands = append(commands, cmd{"Tab", "Points"}, cmd{"l", "Logs"})
	}
	commands = append(commands, cmd{"?", "More"})

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(segments, bg.Spaces(2)))
}
