package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/rove/internal/tabnav"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Inspector  key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding

	// Tab bar
	NextTab  key.Binding
	PrevTab  key.Binding
	FirstTab key.Binding
	LastTab  key.Binding

	// Panel
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Inspector: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ARIA inspector"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus panel/tabs"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Focus tabs/panel"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous tab"),
		),
		FirstTab: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "First tab"),
		),
		LastTab: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "Last tab"),
		),

		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.FocusNext, k.Inspector, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.FirstTab, k.LastTab},
		{k.FocusNext, k.FocusPrev, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Inspector, k.CycleTheme, k.Help, k.Quit},
	}
}

// domKey translates a terminal key press into a KeyboardEvent.key value.
func (k keyMap) domKey(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.NextTab):
		return tabnav.KeyArrowRight
	case key.Matches(msg, k.PrevTab):
		return tabnav.KeyArrowLeft
	case key.Matches(msg, k.FirstTab):
		return tabnav.KeyHome
	case key.Matches(msg, k.LastTab):
		return tabnav.KeyEnd
	}

	switch msg.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyEsc:
		return "Escape"
	case tea.KeyTab, tea.KeyShiftTab:
		return "Tab"
	case tea.KeyUp:
		return "ArrowUp"
	case tea.KeyDown:
		return "ArrowDown"
	case tea.KeyRunes:
		return string(msg.Runes)
	}
	return msg.String()
}
