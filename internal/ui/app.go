package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/rove/internal/config"
	"github.com/five82/rove/internal/prefs"
	"github.com/five82/rove/internal/state"
	"github.com/five82/rove/internal/tabnav"
)

// focusZone is the widget holding keyboard focus. The tab bar is a single
// tab stop, so Tab only moves between the bar and the active panel.
type focusZone int

const (
	focusTabs focusZone = iota
	focusPanel
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	Config    *config.Config
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	config    *config.Config
	prefsPath string
	logger    *slog.Logger

	// Navigation
	ctrl     *tabnav.Controller
	keyboard *keyboard
	tabEls   []*element
	panelEls []*element

	// UI state
	keys          keyMap
	help          help.Model
	theme         Theme
	width         int
	height        int
	ready         bool
	focus         focusZone
	showHelp      bool
	showInspector bool

	// Panel state
	panelViewport viewport.Model
	panelFor      tabnav.TabID
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg := opts.Config
	if cfg == nil {
		defaults := config.Defaults()
		cfg = &defaults
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
		store.Reset(cfg.TabIDs(), cfg.DefaultTab)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:     store,
		config:    cfg,
		prefsPath: prefsPath,
		logger:    logger,
		ctrl:      tabnav.New(tabnav.WithLogger(logger)),
		keyboard:  newKeyboard(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(opts.ThemeName),
	}
	m.syncNavigation()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.panelViewport = viewport.New(m.panelWidth(), m.panelHeight())
		}
		m.ready = true
		m.resizePanel()
		m.refreshPanel()
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
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.focus == focusTabs {
		if k := m.keys.domKey(msg); tabnav.IsNavigationKey(k) && m.keyboard.Dispatch(k) {
			m.syncNavigation()
			m.refreshPanel()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Inspector):
		m.showInspector = !m.showInspector
		m.resizePanel()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		m.toggleFocus()
		return m, nil
	}

	if m.focus == focusPanel && m.ready {
		var cmd tea.Cmd
		m.panelViewport, cmd = m.panelViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.focus == focusTabs {
		m.focus = focusPanel
		return
	}
	m.focus = focusTabs
}

// syncNavigation re-initializes the controller from a fresh store snapshot.
// The tab elements are rebuilt only when the tab count changes.
func (m *Model) syncNavigation() {
	snap := m.store.Snapshot()
	if len(m.tabEls) != len(snap.Tabs) {
		m.tabEls = make([]*element, len(snap.Tabs))
		m.panelEls = make([]*element, len(snap.Tabs))
		for i := range snap.Tabs {
			m.tabEls[i] = newElement("button")
			m.panelEls[i] = newElement("section")
		}
	}
	m.ctrl.Initialize(m.layout(), snap.Tabs, snap.Active, m.store.SetActive)
}

func (m *Model) layout() tabnav.Layout {
	layout := tabnav.Layout{Container: m.keyboard}
	for _, el := range m.tabEls {
		layout.Tabs = append(layout.Tabs, el)
	}
	for _, el := range m.panelEls {
		layout.Panels = append(layout.Panels, el)
	}
	return layout
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LastTab: string(m.store.Snapshot().Active)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Debug("save prefs failed", slog.Any("error", err))
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return errors.New("ui requires a tab store")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.ctrl.Teardown()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
