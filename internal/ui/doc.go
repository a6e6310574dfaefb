// Package ui provides the terminal community screen for rove.
//
// # Architecture Overview
//
// The screen is a Bubble Tea program. It renders a tab bar and the active
// tab's panel, and drives tab selection through a tabnav.Controller:
//
//	tea.KeyMsg ──> keyMap.domKey ──> keyboard.Dispatch ──> Controller listener
//	                                                            │
//	                                                  state.Store.SetActive
//	                                                            │
//	View() <── TabProps/PanelProps <── Controller.Initialize(snapshot)
//
// # Package Structure
//
//   - app.go: Model, Update loop, focus handling and Run
//   - keyboard.go: tab bar container and in-memory elements the controller syncs
//   - keys.go: key bindings and terminal-to-DOM key translation
//   - render.go: header, tab bar, panel, ARIA inspector and footer
//   - help.go: help overlay
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//
// # Focus Model
//
// The tab bar is a single tab stop. While it has focus, arrow/Home/End keys
// (and h/l/g/G) are dispatched to the controller; keys the controller does not
// handle fall through to the global bindings. Tab and Shift+Tab move focus
// between the tab bar and the panel, where up/down/pgup/pgdown scroll.
//
// # Declarative Rendering
//
// The tab bar and panel are rendered only from TabProps and PanelProps. The
// elements written by the controller's ARIA sync feed the inspector overlay
// (toggled with "a"), which makes the attribute contract visible.
//
// # Key Bindings
//
//   - →/l, ←/h: Next/previous tab (wraps)
//   - home/g, end/G: First/last tab
//   - tab, shift+tab: Toggle focus between tab bar and panel
//   - a: ARIA inspector
//   - T: Cycle theme (persisted to prefs)
//   - ?: Help
//   - q or Ctrl+C: Exit
package ui
