package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/contour/internal/curve"
)

// cellKind is what a plot cell shows. Higher kinds win when marks overlap.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellCurve
	cellSample
	cellEndpoint
	cellMinimum
	cellMaximum
)

var cellGlyphs = [...]rune{
	cellEmpty:    ' ',
	cellCurve:    '•',
	cellSample:   '·',
	cellEndpoint: '●',
	cellMinimum:  '▼',
	cellMaximum:  '▲',
}

// plotOptions control rasterization.
type plotOptions struct {
	Width           int
	Height          int
	ShowExtremities bool
	ShowSamples     bool
}

// plot is a character raster of a fitted curve.
type plot struct {
	width  int
	height int
	cells  []cellKind
	x      curve.Domain // x range mapped to columns
	y      curve.Domain // y range mapped to rows, bottom to top
}

// rasterize draws the resampled curve and optional markers into a grid.
func rasterize(res curve.Result, opts plotOptions) plot {
	p := plot{
		width:  max(opts.Width, 1),
		height: max(opts.Height, 1),
		x:      res.Domain,
		y:      valueRange(res),
	}
	p.cells = make([]cellKind, p.width*p.height)

	prevCol, prevRow := -1, -1
	for _, pt := range res.Resampled {
		col, row, ok := p.locate(pt.X, pt.Y)
		if !ok {
			continue
		}
		p.set(col, row, cellCurve)
		// Join steep segments so the line has no vertical gaps.
		if prevCol >= 0 && col-prevCol <= 1 {
			for r := min(prevRow, row) + 1; r < max(prevRow, row); r++ {
				p.set(col, r, cellCurve)
			}
		}
		prevCol, prevRow = col, row
	}

	if opts.ShowSamples {
		for _, pt := range res.Input {
			if col, row, ok := p.locate(pt.X, pt.Y); ok {
				p.set(col, row, cellSample)
			}
		}
	}

	if opts.ShowExtremities {
		kinds := res.Kinds()
		for _, pt := range res.Extremities {
			col, row, ok := p.locate(pt.X, pt.Y)
			if !ok {
				continue
			}
			p.set(col, row, markerCell(kinds[pt.Index]))
		}
	}
	return p
}

func markerCell(kind curve.Kind) cellKind {
	switch kind {
	case curve.KindMinimum:
		return cellMinimum
	case curve.KindMaximum:
		return cellMaximum
	case curve.KindStart, curve.KindEnd:
		return cellEndpoint
	default:
		return cellSample
	}
}

// valueRange is the y range covering both the samples and the spline, which
// may overshoot the samples between control points.
func valueRange(res curve.Result) curve.Domain {
	series := make(curve.Series, 0, len(res.Input)+len(res.Resampled))
	series = append(series, res.Input...)
	series = append(series, res.Resampled...)
	_, y := series.Bounds()
	return y
}

// locate maps a value pair to a cell. Values outside the x range are dropped.
func (p plot) locate(x, y float64) (col, row int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) || !p.x.Contains(x) {
		return 0, 0, false
	}
	if span := p.x.Span(); span > 0 {
		col = int(math.Round((x - p.x.Min) / span * float64(p.width-1)))
	}
	row = (p.height - 1) / 2
	if span := p.y.Span(); span > 0 {
		row = p.height - 1 - int(math.Round((y-p.y.Min)/span*float64(p.height-1)))
	}
	if col < 0 || col >= p.width || row < 0 || row >= p.height {
		return 0, 0, false
	}
	return col, row, true
}

func (p plot) set(col, row int, kind cellKind) {
	i := row*p.width + col
	if kind > p.cells[i] {
		p.cells[i] = kind
	}
}

func (p plot) at(col, row int) cellKind {
	return p.cells[row*p.width+col]
}

// lines returns the unstyled raster, one string per row.
func (p plot) lines() []string {
	out := make([]string, p.height)
	var b strings.Builder
	for row := range p.height {
		b.Reset()
		for col := range p.width {
			b.WriteRune(cellGlyphs[p.at(col, row)])
		}
		out[row] = b.String()
	}
	return out
}

// render styles the raster, grouping runs of equal cells into one segment.
func (p plot) render(styles Styles, bg BgStyle) []string {
	out := make([]string, p.height)
	for row := range p.height {
		var b strings.Builder
		for col := 0; col < p.width; {
			kind := p.at(col, row)
			end := col
			for end < p.width && p.at(end, row) == kind {
				end++
			}
			if kind == cellEmpty {
				b.WriteString(bg.Spaces(end - col))
			} else {
				run := strings.Repeat(string(cellGlyphs[kind]), end-col)
				b.WriteString(styles.CellStyle(kind).Background(bg.Color()).Render(run))
			}
			col = end
		}
		out[row] = b.String()
	}
	return out
}

// yAxisLabel returns the label for a plot row: the top, middle and bottom
// rows carry values, the rest are blank.
func yAxisLabel(y curve.Domain, row, height int) string {
	switch {
	case row == 0:
		return formatValue(y.Max)
	case row == height-1:
		return formatValue(y.Min)
	case height >= 5 && row == (height-1)/2:
		return formatValue(y.Min + y.Span()/2)
	default:
		return ""
	}
}

// xAxisLabels lays out the min, middle and max x labels across width columns.
func xAxisLabels(x curve.Domain, width int) string {
	left := formatValue(x.Min)
	right := formatValue(x.Max)
	mid := formatValue(x.Min + x.Span()/2)

	line := []rune(strings.Repeat(" ", max(width, 0)))
	place := func(label string, at int) {
		r := []rune(label)
		at = max(0, min(at, len(line)-len(r)))
		for i, c := range r {
			if at+i < len(line) {
				line[at+i] = c
			}
		}
	}
	place(left, 0)
	if width >= len([]rune(left))+len([]rune(mid))+len([]rune(right))+4 {
		place(mid, width/2-len([]rune(mid))/2)
	}
	place(right, width-len([]rune(right)))
	return string(line)
}

// renderChart renders the chart view filling the content area.
func (m Model) renderChart() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	width := m.width
	height := max(m.height-HeaderRows, 1)

	if !m.snapshot.HasResult {
		msg := "Waiting for samples…"
		style := styles.MutedText
		if m.snapshot.LastError != nil {
			msg = m.snapshot.LastError.Error()
			style = styles.DangerText
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			bg.Render(truncate(msg, width-4), style),
			lipgloss.WithWhitespaceBackground(bg.Color()))
	}

	plotWidth := max(width-AxisLabelWidth-1, MinPlotWidth)
	plotHeight := max(height-3, MinPlotHeight) // x axis, labels, legend
	p := rasterize(m.snapshot.Result, plotOptions{
		Width:           plotWidth,
		Height:          plotHeight,
		ShowExtremities: m.showExtremities,
		ShowSamples:     m.showSamples,
	})

	rows := p.render(styles, bg)
	lines := make([]string, 0, plotHeight+3)
	for row, content := range rows {
		label := padLeft(truncate(yAxisLabel(p.y, row, plotHeight), AxisLabelWidth-1), AxisLabelWidth-1) + " "
		lines = append(lines, bg.Render(label, styles.MutedText)+bg.Sep("│")+content)
	}
	lines = append(lines,
		bg.Spaces(AxisLabelWidth)+bg.Render("└"+strings.Repeat("─", plotWidth), styles.FaintText),
		bg.Spaces(AxisLabelWidth+1)+bg.Render(xAxisLabels(p.x, plotWidth), styles.MutedText),
		bg.Spaces(AxisLabelWidth+1)+m.renderLegend(styles, bg),
	)

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = bg.FillLine(line, width)
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLegend(styles Styles, bg BgStyle) string {
	type entry struct {
		kind  cellKind
		label string
		on    bool
	}
	entries := []entry{
		{cellCurve, "spline", true},
		{cellMaximum, "max", m.showExtremities},
		{cellMinimum, "min", m.showExtremities},
		{cellEndpoint, "endpoint", m.showExtremities},
		{cellSample, "sample", m.showSamples},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.on {
			continue
		}
		parts = append(parts, bg.Render(string(cellGlyphs[e.kind]), styles.CellStyle(e.kind))+bg.Space()+bg.Render(e.label, styles.FaintText))
	}
	return bg.Join(parts, "  ")
}
