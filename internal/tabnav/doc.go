// Package tabnav implements roving-tabindex keyboard navigation for a single
// accessible tab list.
//
// # Overview
//
// A Controller never owns tab state. Callers hand it the ordered tab list, the
// active tab, and a setter every time they render, and the controller:
//
//   - listens for keydown events on the tablist container
//   - maps ArrowRight, ArrowLeft, Home and End to the next active tab
//   - calls the setter with that tab and suppresses the default action
//   - writes the ARIA attribute contract onto the container, tabs and panels
//
// # Roving Tabindex
//
// Exactly one tab is reachable with the Tab key (tabindex 0). Every other tab
// carries tabindex -1 and is reached with the arrow keys:
//
//	tablist ──┬── events-tab        aria-selected=true   tabindex=0
//	          ├── volunteer-tab     aria-selected=false  tabindex=-1
//	          └── achievements-tab  aria-selected=false  tabindex=-1
//
//	events-panel        aria-labelledby=events-tab        tabindex=0
//	volunteer-panel     aria-labelledby=volunteer-tab     tabindex=0
//	achievements-panel  aria-labelledby=achievements-tab  tabindex=0
//
// # Declarative and Imperative Output
//
// TabPropsFor and PanelPropsFor are pure and can be consumed by any rendering
// layer. Sync writes the same values through the Element interface; the
// attribute values come from the props, so both outputs always agree.
//
// # Listener Lifecycle
//
// The controller binds one listener per container. Initialize with the same
// container only refreshes the inputs the listener reads; a different
// container releases the old subscription before binding the new one.
// Teardown releases it synchronously and is safe to call repeatedly.
//
// # Usage Example
//
//	ctrl := tabnav.New(tabnav.WithLogger(logger))
//	ctrl.Initialize(layout, tabs, store.Snapshot().Active, store.SetActive)
//	defer ctrl.Teardown()
package tabnav
