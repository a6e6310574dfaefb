package ui

import (
	"strings"

	"github.com/five82/rove/internal/tabnav"
)

// element is an in-memory attribute set standing in for one DOM node of the
// screen. The ARIA inspector renders these.
type element struct {
	tag   string
	names []string
	attrs map[string]string
}

func newElement(tag string) *element {
	return &element{tag: tag, attrs: make(map[string]string)}
}

// SetAttribute implements tabnav.Element.
func (e *element) SetAttribute(name, value string) {
	if _, ok := e.attrs[name]; !ok {
		e.names = append(e.names, name)
	}
	e.attrs[name] = value
}

func (e *element) attr(name string) string {
	return e.attrs[name]
}

// markup renders the element as an empty start tag with attributes in the
// order they were first set.
func (e *element) markup() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)
	for _, name := range e.names {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(e.attrs[name])
		b.WriteString(`"`)
	}
	b.WriteString(">")
	return b.String()
}

// keyEvent is a keydown delivered by the keyboard container.
type keyEvent struct {
	key       string
	prevented bool
}

func (e *keyEvent) Key() string     { return e.key }
func (e *keyEvent) PreventDefault() { e.prevented = true }

// keyboard is the tab bar container. Terminal key presses reach the
// controller through Dispatch while the tab bar has focus.
type keyboard struct {
	element
	listener tabnav.KeyListener
	token    int
}

func newKeyboard() *keyboard {
	return &keyboard{element: element{tag: "div", attrs: make(map[string]string)}}
}

// AddKeyListener implements tabnav.Container. The tab bar only ever has one
// listener; a new subscription replaces the old one.
func (k *keyboard) AddKeyListener(fn tabnav.KeyListener) func() {
	k.token++
	token := k.token
	k.listener = fn
	return func() {
		if k.token == token {
			k.listener = nil
		}
	}
}

// Dispatch delivers key and reports whether the default action was prevented.
func (k *keyboard) Dispatch(key string) bool {
	if k.listener == nil {
		return false
	}
	ev := &keyEvent{key: key}
	k.listener(ev)
	return ev.prevented
}

func (k *keyboard) bound() bool {
	return k.listener != nil
}
