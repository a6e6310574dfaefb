package config

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/five82/rove/internal/tabnav"
)

// Suggest returns the tab id closest to want by edit distance, ignoring case.
// Candidates further than a third of want's length (minimum 2) are rejected.
func Suggest(want tabnav.TabID, tabs []tabnav.TabID) (tabnav.TabID, bool) {
	needle := strings.ToLower(strings.TrimSpace(string(want)))
	if needle == "" {
		return "", false
	}
	limit := max(len(needle)/3, 2)

	var best tabnav.TabID
	bestDist := limit + 1
	for _, id := range tabs {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(string(id)))
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist <= limit
}

// Hint formats a " (did you mean ...?)" suffix for error messages, or returns
// "" when no tab is close enough.
func Hint(want tabnav.TabID, tabs []tabnav.TabID) string {
	if s, ok := Suggest(want, tabs); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
