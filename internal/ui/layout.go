package ui

// Terminal size thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which tab labels are shortened.
	LayoutCompactWidth = 60

	// LayoutMinPanelHeight is the smallest panel viewport height.
	LayoutMinPanelHeight = 3

	// LayoutChromeHeight is the number of rows used by header, tab bar,
	// panel border and footer.
	LayoutChromeHeight = 7

	// LayoutInspectorMaxHeight caps the ARIA inspector when it is shown.
	LayoutInspectorMaxHeight = 12
)
