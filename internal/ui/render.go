package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/rove/internal/tabnav"
)

// renderMain renders the header, tab bar, active panel and footer.
func (m Model) renderMain() string {
	parts := []string{
		m.renderHeader(),
		m.renderTabBar(),
		m.renderPanel(),
	}
	if m.showInspector {
		parts = append(parts, m.renderInspector())
	}
	parts = append(parts, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	focus := "tabs"
	if m.focus == focusPanel {
		focus = "panel"
	}
	segments := []string{
		bg.Render("Community", styles.AccentText.Bold(true)),
		bg.Render("focus", styles.MutedText) + bg.Sep(":") + bg.Render(focus, styles.Text),
		bg.Render("T", styles.AccentText) + bg.Sep(":") + bg.Render(m.theme.Name, styles.FaintText),
	}
	snap := m.store.Snapshot()
	segments = append(segments, bg.Render(fmt.Sprintf("moves:%d", snap.Changes), styles.MutedText))
	if !snap.LastChanged.IsZero() {
		segments = append(segments, bg.Render("last:"+snap.LastChanged.Format("15:04:05"), styles.FaintText))
	}
	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderTabBar renders one label per tab from the declarative tab props.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles()
	compact := m.width > 0 && m.width < LayoutCompactWidth

	tabs := m.ctrl.Tabs()
	labels := make([]string, 0, len(tabs))
	for _, id := range tabs {
		props := m.ctrl.TabProps(id)
		label := m.tabLabel(id)
		if compact {
			label = truncate(label, 8)
		}
		style := styles.TabInactive
		if props.AriaSelected {
			style = styles.TabActive
			if m.focus == focusTabs && props.TabIndex == 0 {
				style = style.Underline(true)
			}
		}
		labels = append(labels, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderPanel renders the active tab's panel from its props.
func (m Model) renderPanel() string {
	styles := m.theme.Styles()
	active := m.ctrl.Active()

	box := styles.Panel
	if m.focus == focusPanel {
		box = styles.PanelFocused
	}

	if !m.store.Snapshot().HasActive() {
		return box.Width(m.panelWidth()).Render(styles.MutedText.Render("No tab selected"))
	}

	props := m.ctrl.PanelProps(active)
	title := styles.FaintText.Render(fmt.Sprintf("#%s  labelledby %s", props.ID, props.AriaLabelledBy))
	return box.Width(m.panelWidth()).Render(title + "\n" + m.panelViewport.View())
}

// renderInspector lists the ARIA attributes written to each element.
func (m Model) renderInspector() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("ARIA"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.keyboard.markup()))
	for i := range m.tabEls {
		b.WriteString("\n  ")
		line := m.tabEls[i].markup()
		if m.tabEls[i].attr("aria-selected") == "true" {
			b.WriteString(styles.HighlightText.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
	}
	for i := range m.panelEls {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(m.panelEls[i].markup()))
	}
	return lipgloss.NewStyle().MaxHeight(LayoutInspectorMaxHeight).Render(b.String())
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

func (m Model) tabLabel(id tabnav.TabID) string {
	if tab, ok := m.config.Tab(id); ok && tab.Label != "" {
		return tab.Label
	}
	return string(id)
}

func (m Model) panelWidth() int {
	w := m.width - 4 // border + padding
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) panelHeight() int {
	h := m.height - LayoutChromeHeight
	if m.showInspector {
		h -= LayoutInspectorMaxHeight
	}
	if h < LayoutMinPanelHeight {
		h = LayoutMinPanelHeight
	}
	return h
}

func (m *Model) resizePanel() {
	if !m.ready {
		return
	}
	m.panelViewport.Width = m.panelWidth()
	m.panelViewport.Height = m.panelHeight()
}

// refreshPanel loads the active tab's body into the viewport, scrolling to
// the top when the active tab changed.
func (m *Model) refreshPanel() {
	if !m.ready {
		return
	}
	active := m.ctrl.Active()
	body := ""
	if tab, ok := m.config.Tab(active); ok {
		body = tab.Body
	}
	wrapped := lipgloss.NewStyle().Width(m.panelWidth()).Render(body)
	m.panelViewport.SetContent(wrapped)
	if active != m.panelFor {
		m.panelViewport.GotoTop()
		m.panelFor = active
	}
}

// truncate truncates a string to max runes with ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
