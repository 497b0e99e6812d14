package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the previewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ViewLogs   key.Binding
	Reload     key.Binding

	// Curve
	MoreSteps       key.Binding
	FewerSteps      key.Binding
	ToggleExtremity key.Binding
	ToggleSamples   key.Binding

	// Navigation (points view)
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle chart/points/logs"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Log view"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload samples"),
		),

		// Curve
		MoreSteps: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Double steps"),
		),
		FewerSteps: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Halve steps"),
		),
		ToggleExtremity: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Toggle extremities"),
		),
		ToggleSamples: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle raw samples"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewLogs, k.Up, k.Down, k.Top, k.Bottom},
		{k.MoreSteps, k.FewerSteps, k.ToggleExtremity, k.ToggleSamples, k.Reload},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
