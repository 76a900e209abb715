package components

// UIState represents the current interaction state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIPressed indicates the UI element is being pressed (mouse button or finger down).
	UIPressed
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// String returns a short name for logging.
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIPressed:
		return "pressed"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// StateFor derives the interaction state from pointer flags.
// Pressed takes priority over hovered.
func StateFor(enabled, hovered, pressed bool) UIState {
	switch {
	case !enabled:
		return UIDisabled
	case pressed:
		return UIPressed
	case hovered:
		return UIHovered
	default:
		return UINormal
	}
}
