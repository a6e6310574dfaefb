package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/five82/rove/internal/config"
	"github.com/five82/rove/internal/markup"
	"github.com/five82/rove/internal/tabnav"
)

// MarkupOptions configure a markup replay.
type MarkupOptions struct {
	ContainerID string   // empty selects the first role="tablist" element
	Active      string   // empty selects the first tab
	Keys        []string // KeyboardEvent.key values replayed in order
	Logger      *slog.Logger
}

// MarkupResult summarizes a replay.
type MarkupResult struct {
	Tabs    []tabnav.TabID
	Active  tabnav.TabID
	Handled int // keys whose default action was prevented
}

// RunMarkup parses an HTML document, binds a controller to its tablist,
// replays the keys through the container and writes the synchronized markup
// to w.
func RunMarkup(r io.Reader, w io.Writer, opts MarkupOptions) (MarkupResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	doc, err := markup.Parse(r)
	if err != nil {
		return MarkupResult{}, err
	}

	tl, err := doc.Tablist(opts.ContainerID)
	if err != nil {
		return MarkupResult{}, fmt.Errorf("locate tablist: %w", err)
	}
	tabs, err := tl.TabIDs()
	if err != nil {
		return MarkupResult{}, fmt.Errorf("derive tab ids: %w", err)
	}
	if len(tabs) == 0 {
		return MarkupResult{}, fmt.Errorf("locate tablist: no <button> tabs in container")
	}

	active := tabs[0]
	if v := strings.TrimSpace(opts.Active); v != "" {
		if tabnav.FocusIndex(tabs, tabnav.TabID(v)) < 0 {
			return MarkupResult{}, fmt.Errorf("active tab %q not in tablist %v%s", v, tabs, config.Hint(tabnav.TabID(v), tabs))
		}
		active = tabnav.TabID(v)
	}

	ctrl := tabnav.New(tabnav.WithLogger(logger))
	defer ctrl.Teardown()

	set := func(id tabnav.TabID) { active = id }
	ctrl.Initialize(tl.Layout(), tabs, active, set)

	result := MarkupResult{Tabs: tabs}
	for _, key := range opts.Keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if tl.Container.Dispatch(key) {
			result.Handled++
		}
		// Re-render with the new active tab, as the owning screen would.
		ctrl.Initialize(tl.Layout(), tabs, active, set)
	}
	result.Active = active

	if err := doc.Render(w); err != nil {
		return MarkupResult{}, err
	}
	return result, nil
}
