package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette for the community screen.
type Theme struct {
	Name string

	Background string // outside the header and footer
	Surface    string // header, footer and tab bar strip

	TabIdle         string // background of unselected tabs
	TabSelected     string // background of the aria-selected tab
	TabSelectedText string

	Border      string // panel border while the tab bar has focus
	BorderFocus string // panel border while the panel has focus

	Text      string
	Muted     string
	Faint     string
	Accent    string // titles and key names
	Highlight string // selected-tab lines in the inspector
}

// Styles contains lipgloss styles derived from a Theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text          lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	AccentText    lipgloss.Style
	HighlightText lipgloss.Style

	Header       lipgloss.Style
	Footer       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	box := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(0, 1)
	}

	return Styles{
		Background: lipgloss.NewStyle().Background(lipgloss.Color(t.Background)),
		Surface:    fg(t.Text).Background(lipgloss.Color(t.Surface)),

		Text:          fg(t.Text),
		MutedText:     fg(t.Muted),
		FaintText:     fg(t.Faint),
		AccentText:    fg(t.Accent),
		HighlightText: fg(t.Highlight),

		Header: fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Footer: fg(t.Muted).Background(lipgloss.Color(t.Surface)).Padding(0, 1),

		TabActive: fg(t.TabSelectedText).
			Background(lipgloss.Color(t.TabSelected)).
			Bold(true).
			Padding(0, 2),
		TabInactive: fg(t.Muted).
			Background(lipgloss.Color(t.TabIdle)).
			Padding(0, 2),

		Panel:        box(t.Border),
		PanelFocused: box(t.BorderFocus),
	}
}

// WithBackground returns a copy of s whose text styles paint bgColor, so
// segments joined on the header keep a continuous background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	out := s
	for _, st := range []*lipgloss.Style{
		&out.Background, &out.Surface, &out.Text, &out.MutedText, &out.FaintText,
		&out.AccentText, &out.HighlightText, &out.Header, &out.Footer,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": {
		Name:            "Nightfox",
		Background:      "#131a24",
		Surface:         "#192330",
		TabIdle:         "#212e3f",
		TabSelected:     "#2b3b51",
		TabSelectedText: "#cdcecf",
		Border:          "#39506d",
		BorderFocus:     "#719cd6",
		Text:            "#cdcecf",
		Muted:           "#738091",
		Faint:           "#71839b",
		Accent:          "#719cd6",
		Highlight:       "#dbc074",
	},
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": {
		Name:            "Kanagawa",
		Background:      "#16161D",
		Surface:         "#1F1F28",
		TabIdle:         "#2A2A37",
		TabSelected:     "#2D4F67",
		TabSelectedText: "#DCD7BA",
		Border:          "#54546D",
		BorderFocus:     "#7E9CD8",
		Text:            "#DCD7BA",
		Muted:           "#C8C093",
		Faint:           "#727169",
		Accent:          "#7E9CD8",
		Highlight:       "#E6C384",
	},
	// Tailwind slate and sky.
	"Slate": {
		Name:            "Slate",
		Background:      "#020617",
		Surface:         "#0f172a",
		TabIdle:         "#1e293b",
		TabSelected:     "#0284c7",
		TabSelectedText: "#f8fafc",
		Border:          "#334155",
		BorderFocus:     "#38bdf8",
		Text:            "#f1f5f9",
		Muted:           "#94a3b8",
		Faint:           "#64748b",
		Accent:          "#38bdf8",
		Highlight:       "#f59e0b",
	},
}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names in cycle order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}
