package tabnav

import (
	"log/slog"
	"reflect"
	"slices"
)

// KeyEvent is the subset of a DOM keydown event the controller reads.
type KeyEvent interface {
	Key() string
	PreventDefault()
}

// KeyListener receives keydown events from a Container.
type KeyListener func(KeyEvent)

// Element is anything that can carry DOM attributes.
type Element interface {
	SetAttribute(name, value string)
}

// Container is the tablist element. AddKeyListener subscribes fn to keydown
// events and returns the function that removes the subscription.
//
// Implementations must be comparable; pointer types are the norm. A nil
// pointer wrapped in the interface counts as no container.
type Container interface {
	Element
	AddKeyListener(fn KeyListener) (remove func())
}

// Layout names the elements one controller manages. Tabs and Panels are
// ordered to match the tab list passed to Initialize.
type Layout struct {
	Container Container
	Tabs      []Element
	Panels    []Element
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller translates keydown events on a tablist into calls to the
// caller's setter. It is not safe for concurrent use.
type Controller struct {
	logger *slog.Logger

	// Inputs from the most recent Initialize. The listener reads these on
	// every event.
	tabs   []TabID
	active TabID
	set    func(TabID)

	bound  Container
	remove func()
	gen    uint64
}

// New returns an unbound Controller.
func New(opts ...Option) *Controller {
	c := &Controller{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize refreshes the controller's inputs, binds the keydown listener to
// layout.Container and applies the ARIA attributes. A nil container (typed or
// untyped) releases any existing binding and skips the sync.
func (c *Controller) Initialize(layout Layout, tabs []TabID, active TabID, set func(TabID)) {
	c.tabs = slices.Clone(tabs)
	c.active = active
	c.set = set

	if isNil(layout.Container) {
		c.unbind()
		return
	}
	if c.bound != layout.Container {
		c.unbind()
		c.bind(layout.Container)
	}
	Sync(layout, c.tabs, c.active)
}

// Teardown removes the keydown listener. Calling it again is a no-op.
func (c *Controller) Teardown() {
	c.unbind()
}

// Bound reports whether a keydown listener is currently attached.
func (c *Controller) Bound() bool {
	return c.bound != nil
}

// Tabs returns a copy of the current tab list.
func (c *Controller) Tabs() []TabID {
	return slices.Clone(c.tabs)
}

// Active returns the current active tab.
func (c *Controller) Active() TabID {
	return c.active
}

// TabProps returns the props of tab against the current active tab.
func (c *Controller) TabProps(tab TabID) TabProps {
	return TabPropsFor(tab, c.active)
}

// PanelProps returns the props of the panel for tab.
func (c *Controller) PanelProps(tab TabID) PanelProps {
	return PanelPropsFor(tab)
}

func (c *Controller) bind(container Container) {
	c.gen++
	gen := c.gen
	c.remove = container.AddKeyListener(func(ev KeyEvent) {
		if gen != c.gen {
			return
		}
		c.handle(ev)
	})
	c.bound = container
	c.logger.Debug("tablist listener bound", slog.Int("tabs", len(c.tabs)))
}

func (c *Controller) unbind() {
	if c.bound == nil {
		return
	}
	if c.remove != nil {
		c.remove()
	}
	c.gen++
	c.bound = nil
	c.remove = nil
	c.logger.Debug("tablist listener removed")
}

func (c *Controller) handle(ev KeyEvent) {
	key := ev.Key()
	next, ok := HandleKey(key, c.tabs, c.active)
	if !ok {
		return
	}
	ev.PreventDefault()
	c.logger.Debug("tab navigation",
		slog.String("key", key),
		slog.String("from", string(c.active)),
		slog.String("to", string(next)))
	if c.set != nil {
		c.set(next)
	}
}

// Sync writes the ARIA attribute contract onto the layout. Only the first
// min(len(tabs), len(elements)) tabs and panels are touched.
func Sync(layout Layout, tabs []TabID, active TabID) {
	if isNil(layout.Container) {
		return
	}
	layout.Container.SetAttribute("role", RoleTabList)

	for i, el := range layout.Tabs {
		if i >= len(tabs) {
			break
		}
		apply(el, TabPropsFor(tabs[i], active).Attributes())
	}
	for i, el := range layout.Panels {
		if i >= len(tabs) {
			break
		}
		apply(el, PanelPropsFor(tabs[i]).Attributes())
	}
}

func apply(el Element, attrs []Attr) {
	if isNil(el) {
		return
	}
	for _, a := range attrs {
		el.SetAttribute(a.Name, a.Value)
	}
}

// isNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
