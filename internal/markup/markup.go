package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/five82/rove/internal/tabnav"
)

var (
	// ErrContainerNotFound is returned when no tablist container matches.
	ErrContainerNotFound = errors.New("tablist container not found")
	// ErrInvalidTablist is wrapped when the tab buttons do not yield one
	// unique, non-empty id each.
	ErrInvalidTablist = errors.New("invalid tablist")
)

// Document is a parsed HTML document.
type Document struct {
	root       *html.Node
	containers map[*html.Node]*Container
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root, containers: make(map[*html.Node]*Container)}, nil
}

// Render writes the document, including any attributes set since Parse.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Tablist is the set of elements one controller manages.
type Tablist struct {
	Container *Container
	Tabs      []*Element
	Panels    []*Element
}

// Tablist locates the container with the given id, or the first element with
// role="tablist" when containerID is empty. Tabs are the container's direct
// <button> children; panels are the element siblings that follow it.
//
// Repeated calls for the same container return the same *Container, so a
// controller re-initialized from a fresh Tablist keeps its listener.
func (d *Document) Tablist(containerID string) (*Tablist, error) {
	node := findElement(d.root, func(n *html.Node) bool {
		if containerID == "" {
			v, _ := attr(n, "role")
			return v == tabnav.RoleTabList
		}
		v, _ := attr(n, "id")
		return v == containerID
	})
	if node == nil {
		if containerID == "" {
			return nil, ErrContainerNotFound
		}
		return nil, fmt.Errorf("%w: id %q", ErrContainerNotFound, containerID)
	}

	container, ok := d.containers[node]
	if !ok {
		container = &Container{Element: Element{node: node}}
		d.containers[node] = container
	}

	tl := &Tablist{Container: container}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Button {
			tl.Tabs = append(tl.Tabs, &Element{node: c})
		}
	}
	for s := node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			tl.Panels = append(tl.Panels, &Element{node: s})
		}
	}
	return tl, nil
}

// Layout converts the tablist to the controller's structural descriptor.
func (t *Tablist) Layout() tabnav.Layout {
	layout := tabnav.Layout{Container: t.Container}
	for _, el := range t.Tabs {
		layout.Tabs = append(layout.Tabs, el)
	}
	for _, el := range t.Panels {
		layout.Panels = append(layout.Panels, el)
	}
	return layout
}

// TabIDs derives one id per tab button: the data-tab attribute, then an
// existing "{id}-tab" id, then a slug of the button text. A button that yields
// an empty id, or an id already taken by an earlier button, fails with
// ErrInvalidTablist.
func (t *Tablist) TabIDs() ([]tabnav.TabID, error) {
	ids := make([]tabnav.TabID, 0, len(t.Tabs))
	seen := make(map[tabnav.TabID]int, len(t.Tabs))
	for i, el := range t.Tabs {
		id := tabID(el)
		if id == "" {
			return nil, fmt.Errorf("%w: tab %d has no data-tab, id or text to derive an id from", ErrInvalidTablist, i)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: tabs %d and %d share id %q; set data-tab to disambiguate", ErrInvalidTablist, prev, i, id)
		}
		seen[id] = i
		ids = append(ids, id)
	}
	return ids, nil
}

func tabID(el *Element) tabnav.TabID {
	if v, ok := el.Attribute("data-tab"); ok && strings.TrimSpace(v) != "" {
		return tabnav.TabID(strings.TrimSpace(v))
	}
	if v, ok := el.Attribute("id"); ok && strings.HasSuffix(v, "-tab") && len(v) > len("-tab") {
		return tabnav.TabID(strings.TrimSuffix(v, "-tab"))
	}
	return tabnav.TabID(slug(el.Text()))
}

// Element wraps an element node.
type Element struct {
	node *html.Node
}

// SetAttribute sets or replaces an attribute. Names are lowercased.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	return attr(e.node, strings.ToLower(name))
}

// Text returns the trimmed text content of the element.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.Join(strings.Fields(b.String()), " ")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func slug(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
