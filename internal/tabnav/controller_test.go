package tabnav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	attrs  map[string]string
	writes int
}

func newFakeElement() *fakeElement {
	return &fakeElement{attrs: make(map[string]string)}
}

func (e *fakeElement) SetAttribute(name, value string) {
	e.attrs[name] = value
	e.writes++
}

type fakeContainer struct {
	fakeElement
	listeners map[int]KeyListener
	nextID    int
	added     int
}

func newFakeContainer() *fakeContainer {
	return &fakeContainer{
		fakeElement: fakeElement{attrs: make(map[string]string)},
		listeners:   make(map[int]KeyListener),
	}
}

func (c *fakeContainer) AddKeyListener(fn KeyListener) func() {
	id := c.nextID
	c.nextID++
	c.added++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

type fakeEvent struct {
	key       string
	prevented bool
}

func (e *fakeEvent) Key() string     { return e.key }
func (e *fakeEvent) PreventDefault() { e.prevented = true }

func (c *fakeContainer) press(key string) *fakeEvent {
	ev := &fakeEvent{key: key}
	for _, fn := range c.listeners {
		fn(ev)
	}
	return ev
}

type fixture struct {
	container *fakeContainer
	tabs      []*fakeElement
	panels    []*fakeElement
}

func newFixture(n int) fixture {
	f := fixture{container: newFakeContainer()}
	for i := 0; i < n; i++ {
		f.tabs = append(f.tabs, newFakeElement())
		f.panels = append(f.panels, newFakeElement())
	}
	return f
}

func (f fixture) layout() Layout {
	l := Layout{Container: f.container}
	for _, el := range f.tabs {
		l.Tabs = append(l.Tabs, el)
	}
	for _, el := range f.panels {
		l.Panels = append(l.Panels, el)
	}
	return l
}

type recorder struct {
	calls []TabID
}

func (r *recorder) set(id TabID) {
	r.calls = append(r.calls, id)
}

func TestController_KeyCallsSetter(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)

	ev := f.container.press(KeyArrowRight)
	require.True(t, ev.prevented)
	require.Equal(t, []TabID{"volunteer"}, rec.calls)
}

func TestController_UnknownKeyNotSuppressed(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)

	ev := f.container.press("Enter")
	require.False(t, ev.prevented)
	require.Empty(t, rec.calls)
}

func TestController_ReinitializeKeepsSingleListener(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)
	c.Initialize(f.layout(), communityTabs, "volunteer", rec.set)
	c.Initialize(f.layout(), communityTabs, "volunteer", rec.set)

	require.Len(t, f.container.listeners, 1)
	require.Equal(t, 1, f.container.added)

	f.container.press(KeyArrowRight)
	require.Equal(t, []TabID{"achievements"}, rec.calls, "listener must read the latest inputs")
}

func TestController_ReadsSetterFromLatestInitialize(t *testing.T) {
	f := newFixture(3)
	first, second := &recorder{}, &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", first.set)
	c.Initialize(f.layout(), communityTabs, "events", second.set)

	f.container.press(KeyEnd)
	require.Empty(t, first.calls)
	require.Equal(t, []TabID{"achievements"}, second.calls)
}

func TestController_RapidKeysUseSuppliedState(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)

	// The owner has not re-initialized between presses, so both are
	// computed from "events".
	f.container.press(KeyArrowRight)
	f.container.press(KeyArrowRight)
	require.Equal(t, []TabID{"volunteer", "volunteer"}, rec.calls)
}

func TestController_SwitchContainerMovesListener(t *testing.T) {
	oldF, newF := newFixture(3), newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(oldF.layout(), communityTabs, "events", rec.set)
	c.Initialize(newF.layout(), communityTabs, "events", rec.set)

	require.Empty(t, oldF.container.listeners)
	require.Len(t, newF.container.listeners, 1)

	oldF.container.press(KeyEnd)
	require.Empty(t, rec.calls)
	newF.container.press(KeyEnd)
	require.Equal(t, []TabID{"achievements"}, rec.calls)
}

func TestController_NilContainerSkipsAndReleases(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)
	require.True(t, c.Bound())

	writesBefore := f.tabs[0].writes
	c.Initialize(Layout{Tabs: f.layout().Tabs}, communityTabs, "volunteer", rec.set)
	require.False(t, c.Bound())
	require.Empty(t, f.container.listeners)
	require.Equal(t, writesBefore, f.tabs[0].writes)
	require.Equal(t, TabID("volunteer"), c.Active())

	c.Initialize(f.layout(), communityTabs, "volunteer", rec.set)
	require.True(t, c.Bound())
	require.Equal(t, "0", f.tabs[1].attrs["tabindex"])
}

func TestController_TeardownIsIdempotent(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)

	c.Teardown()
	c.Teardown()
	require.False(t, c.Bound())
	require.Empty(t, f.container.listeners)

	f.container.press(KeyArrowRight)
	require.Empty(t, rec.calls)
}

func TestController_StaleListenerIgnoredAfterTeardown(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)

	// Keep a reference to the listener as a leaky container would.
	var stale KeyListener
	for _, fn := range f.container.listeners {
		stale = fn
	}
	c.Teardown()

	stale(&fakeEvent{key: KeyHome})
	require.Empty(t, rec.calls)
}

func TestController_SyncsAriaContract(t *testing.T) {
	f := newFixture(3)
	c := New()
	c.Initialize(f.layout(), communityTabs, "volunteer", func(TabID) {})

	require.Equal(t, "tablist", f.container.attrs["role"])
	for i, tab := range communityTabs {
		tabAttrs := f.tabs[i].attrs
		require.Equal(t, "tab", tabAttrs["role"])
		require.Equal(t, string(tab)+"-tab", tabAttrs["id"])
		require.Equal(t, string(tab)+"-panel", tabAttrs["aria-controls"])

		panelAttrs := f.panels[i].attrs
		require.Equal(t, "tabpanel", panelAttrs["role"])
		require.Equal(t, string(tab)+"-panel", panelAttrs["id"])
		require.Equal(t, string(tab)+"-tab", panelAttrs["aria-labelledby"])
		require.Equal(t, "0", panelAttrs["tabindex"])
	}
	require.Equal(t, "false", f.tabs[0].attrs["aria-selected"])
	require.Equal(t, "true", f.tabs[1].attrs["aria-selected"])
	require.Equal(t, "-1", f.tabs[0].attrs["tabindex"])
	require.Equal(t, "0", f.tabs[1].attrs["tabindex"])
	require.Equal(t, "-1", f.tabs[2].attrs["tabindex"])
}

func TestController_SyncMatchesDeclarativeProps(t *testing.T) {
	f := newFixture(3)
	c := New()
	c.Initialize(f.layout(), communityTabs, "achievements", nil)

	for i, tab := range communityTabs {
		for _, a := range c.TabProps(tab).Attributes() {
			require.Equal(t, a.Value, f.tabs[i].attrs[a.Name], "tab %s attr %s", tab, a.Name)
		}
		for _, a := range c.PanelProps(tab).Attributes() {
			require.Equal(t, a.Value, f.panels[i].attrs[a.Name], "panel %s attr %s", tab, a.Name)
		}
	}
}

func TestController_InitializeIsIdempotent(t *testing.T) {
	f := newFixture(3)
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", nil)
	first := make(map[string]string)
	for k, v := range f.tabs[0].attrs {
		first[k] = v
	}
	c.Initialize(f.layout(), communityTabs, "events", nil)
	require.Equal(t, first, f.tabs[0].attrs)
}

func TestSync_ShorterElementListIsPartial(t *testing.T) {
	f := newFixture(2)
	Sync(f.layout(), communityTabs, "events")
	require.Equal(t, "volunteer-tab", f.tabs[1].attrs["id"])

	extra := newFixture(3)
	Sync(extra.layout(), communityTabs[:1], "events")
	require.Empty(t, extra.tabs[1].attrs)
}

func TestController_NilSetterDoesNotPanic(t *testing.T) {
	f := newFixture(3)
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", nil)
	ev := f.container.press(KeyArrowLeft)
	require.True(t, ev.prevented)
}

func TestController_TabsReturnsCopy(t *testing.T) {
	tabs := []TabID{"a", "b"}
	c := New()
	c.Initialize(Layout{}, tabs, "a", nil)
	got := c.Tabs()
	got[0] = "z"
	require.Equal(t, []TabID{"a", "b"}, c.Tabs())
}

func TestController_TypedNilContainerIsAbsent(t *testing.T) {
	f := newFixture(3)
	rec := &recorder{}
	c := New()
	c.Initialize(f.layout(), communityTabs, "events", rec.set)
	require.True(t, c.Bound())

	var missing *fakeContainer
	require.NotPanics(t, func() {
		c.Initialize(Layout{Container: missing, Tabs: f.layout().Tabs}, communityTabs, "volunteer", rec.set)
	})
	require.False(t, c.Bound())
	require.Empty(t, f.container.listeners)
	require.NotPanics(t, func() { Sync(Layout{Container: missing}, communityTabs, "events") })
}

func TestSync_SkipsTypedNilElements(t *testing.T) {
	f := newFixture(3)
	var hole *fakeElement
	layout := f.layout()
	layout.Tabs[1] = hole
	layout.Panels[0] = hole

	require.NotPanics(t, func() { Sync(layout, communityTabs, "volunteer") })
	require.Equal(t, "events-tab", f.tabs[0].attrs["id"])
	require.Equal(t, "achievements-tab", f.tabs[2].attrs["id"])
	require.Equal(t, "volunteer-panel", f.panels[1].attrs["id"])
}
