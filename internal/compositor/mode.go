package compositor

import "strings"

// Mode selects how the two panes share the canvas.
type Mode int

const (
	// Split shows both videos over the same area, pane 0 left of the border
	// and pane 1 right of it.
	Split Mode = iota
	// SideBySide shows pane 0 in the left half and pane 1 in the right half.
	SideBySide
)

func (m Mode) String() string {
	switch m {
	case Split:
		return "split"
	case SideBySide:
		return "sidebyside"
	default:
		return "unknown"
	}
}

// ParseMode returns the mode for a name, accepting a few common spellings.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "split":
		return Split, true
	case "sidebyside", "side-by-side", "side_by_side", "sbs":
		return SideBySide, true
	default:
		return Split, false
	}
}
