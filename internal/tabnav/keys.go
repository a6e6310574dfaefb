package tabnav

// TabID identifies a tab. It must be unique within a tab list.
type TabID string

// Key names as reported by KeyboardEvent.key.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// HandleKey returns the tab a key press moves to. The boolean is false when
// the key does not navigate or tabs is empty; callers must then leave the
// event alone.
//
// When active is not in tabs, ArrowRight and Home land on the first tab and
// ArrowLeft and End land on the last.
func HandleKey(key string, tabs []TabID, active TabID) (TabID, bool) {
	n := len(tabs)
	if n == 0 {
		return "", false
	}

	idx := FocusIndex(tabs, active)
	switch key {
	case KeyArrowRight:
		if idx < 0 {
			return tabs[0], true
		}
		return tabs[(idx+1)%n], true
	case KeyArrowLeft:
		if idx < 0 {
			return tabs[n-1], true
		}
		return tabs[(idx-1+n)%n], true
	case KeyHome:
		return tabs[0], true
	case KeyEnd:
		return tabs[n-1], true
	}
	return "", false
}

// FocusIndex returns the position of active in tabs, or -1.
func FocusIndex(tabs []TabID, active TabID) int {
	for i, t := range tabs {
		if t == active {
			return i
		}
	}
	return -1
}

// IsNavigationKey reports whether key is one HandleKey acts on.
func IsNavigationKey(key string) bool {
	switch key {
	case KeyArrowRight, KeyArrowLeft, KeyHome, KeyEnd:
		return true
	}
	return false
}
