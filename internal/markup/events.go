package markup

import "github.com/five82/rove/internal/tabnav"

// KeyboardEvent is a synthetic keydown event.
type KeyboardEvent struct {
	key       string
	prevented bool
}

// Key returns the KeyboardEvent.key value.
func (e *KeyboardEvent) Key() string { return e.key }

// PreventDefault marks the event's default action as cancelled.
func (e *KeyboardEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *KeyboardEvent) DefaultPrevented() bool { return e.prevented }

type subscription struct {
	id int
	fn tabnav.KeyListener
}

// Container is a tablist element that accepts keydown listeners.
type Container struct {
	Element
	subs   []subscription
	nextID int
}

// AddKeyListener subscribes fn and returns its remover. Removing twice is a
// no-op.
func (c *Container) AddKeyListener(fn tabnav.KeyListener) func() {
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Container) listeners() int {
	return len(c.subs)
}

// Dispatch delivers a keydown event for key to every listener in
// subscription order and reports whether the default action was prevented.
func (c *Container) Dispatch(key string) bool {
	ev := &KeyboardEvent{key: key}
	subs := append([]subscription(nil), c.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
	return ev.DefaultPrevented()
}
