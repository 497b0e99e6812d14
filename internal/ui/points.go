package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/five82/contour/internal/curve"
)

// pointsTables renders the extremity and resampled tables as plain text.
func pointsTables(res curve.Result) string {
	kinds := res.Kinds()

	ext := table.NewWriter()
	ext.SetStyle(table.StyleLight)
	ext.SetTitle("Extremities (%d of %d samples)", len(res.Extremities), len(res.Input))
	ext.AppendHeader(table.Row{"#", "X", "Y", "Kind"})
	for _, p := range res.Extremities {
		ext.AppendRow(table.Row{strconv.Itoa(p.Index), formatExact(p.X), formatExact(p.Y), kinds[p.Index].String()})
	}

	resampled := table.NewWriter()
	resampled.SetStyle(table.StyleLight)
	resampled.SetTitle("Resampled (%d steps over [%s, %s])",
		res.Steps, formatExact(res.Domain.Min), formatExact(res.Domain.Max))
	resampled.AppendHeader(table.Row{"#", "X", "Y"})
	for _, p := range res.Resampled {
		resampled.AppendRow(table.Row{strconv.Itoa(p.Index), formatExact(p.X), formatExact(p.Y)})
	}

	return ext.Render() + "\n\n" + resampled.Render()
}

// initPointsViewport creates the scrollable points view.
func (m *Model) initPointsViewport() {
	m.pointsViewport = viewport.New(m.width, max(m.height-HeaderRows, 1))
}

// updatePointsViewport refreshes the points view content and size.
func (m *Model) updatePointsViewport() {
	m.pointsViewport.Width = m.width
	m.pointsViewport.Height = max(m.height-HeaderRows, 1)

	var content string
	switch {
	case m.snapshot.HasResult:
		content = pointsTables(m.snapshot.Result)
	case m.snapshot.LastError != nil:
		content = "Error: " + m.snapshot.LastError.Error()
	default:
		content = "Waiting for samples…"
	}
	m.pointsViewport.SetContent(content)
}

// renderPoints renders the points view.
func (m Model) renderPoints() string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	lines := strings.Split(m.pointsViewport.View(), "\n")
	for i, line := range lines {
		lines[i] = bg.FillLine(styles.Text.Render(line), m.width)
	}
	return strings.Join(lines, "\n")
}
