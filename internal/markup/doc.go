// Package markup adapts an HTML document to the tabnav element interfaces.
//
// Parse builds a golang.org/x/net/html tree; Tablist locates one tablist
// container, its direct <button> children and the panels that follow it, and
// hands them to a tabnav.Controller. Container.Dispatch replays keydown events
// so the controller can be driven without a browser, and Render writes the
// synchronized markup back out.
package markup
