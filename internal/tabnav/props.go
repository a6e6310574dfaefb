package tabnav

import "strconv"

// ARIA roles written by the controller.
const (
	RoleTabList  = "tablist"
	RoleTab      = "tab"
	RoleTabPanel = "tabpanel"
)

// TabProps are the attributes a rendering layer applies to one tab button.
type TabProps struct {
	Role         string
	AriaSelected bool
	AriaControls string
	ID           string
	TabIndex     int
}

// PanelProps are the attributes a rendering layer applies to one tab panel.
type PanelProps struct {
	Role           string
	AriaLabelledBy string
	ID             string
	TabIndex       int
}

// Attr is a single DOM attribute.
type Attr struct {
	Name  string
	Value string
}

// TabElementID returns the element id of the tab button for t.
func TabElementID(t TabID) string {
	return string(t) + "-tab"
}

// PanelElementID returns the element id of the panel for t.
func PanelElementID(t TabID) string {
	return string(t) + "-panel"
}

// TabPropsFor derives the props of tab given the active tab.
func TabPropsFor(tab, active TabID) TabProps {
	selected := tab == active
	tabIndex := -1
	if selected {
		tabIndex = 0
	}
	return TabProps{
		Role:         RoleTab,
		AriaSelected: selected,
		AriaControls: PanelElementID(tab),
		ID:           TabElementID(tab),
		TabIndex:     tabIndex,
	}
}

// PanelPropsFor derives the props of the panel for tab.
func PanelPropsFor(tab TabID) PanelProps {
	return PanelProps{
		Role:           RoleTabPanel,
		AriaLabelledBy: TabElementID(tab),
		ID:             PanelElementID(tab),
		TabIndex:       0,
	}
}

// Attributes returns the props as DOM attributes in a stable order.
func (p TabProps) Attributes() []Attr {
	return []Attr{
		{Name: "role", Value: p.Role},
		{Name: "id", Value: p.ID},
		{Name: "aria-controls", Value: p.AriaControls},
		{Name: "aria-selected", Value: strconv.FormatBool(p.AriaSelected)},
		{Name: "tabindex", Value: strconv.Itoa(p.TabIndex)},
	}
}

// Attributes returns the props as DOM attributes in a stable order.
func (p PanelProps) Attributes() []Attr {
	return []Attr{
		{Name: "role", Value: p.Role},
		{Name: "id", Value: p.ID},
		{Name: "aria-labelledby", Value: p.AriaLabelledBy},
		{Name: "tabindex", Value: strconv.Itoa(p.TabIndex)},
	}
}
