package braciole

import (
	"github.com/veandco/go-sdl2/sdl"
)

// InteractionState is the pointer feedback state of one item. It is derived
// live from pointer events over the item's bounds and never persisted across
// renders.
type InteractionState int

const (
	StateIdle    InteractionState = iota // No pointer over the item
	StateHovered                         // Pointer inside bounds, button up
	StatePressed                         // Pointer inside bounds, button down
)

func (s InteractionState) String() string {
	switch s {
	case StateHovered:
		return "hovered"
	case StatePressed:
		return "pressed"
	default:
		return "idle"
	}
}

// PointerTracker is the per-item interaction state machine. Each mounted
// item owns exactly one tracker; it is discarded on unmount. A tracker for
// a disabled item never leaves StateIdle.
type PointerTracker struct {
	state   InteractionState
	enabled bool
}

func NewPointerTracker(enabled bool) *PointerTracker {
	return &PointerTracker{enabled: enabled}
}

// State returns the current interaction state.
func (t *PointerTracker) State() InteractionState {
	return t.state
}

// PointerEnter handles the pointer entering the item's bounds.
func (t *PointerTracker) PointerEnter() {
	if !t.enabled {
		return
	}
	if t.state == StateIdle {
		t.state = StateHovered
	}
}

// PointerLeave handles the pointer leaving the item's bounds. An in-progress
// press is abandoned.
func (t *PointerTracker) PointerLeave() {
	t.state = StateIdle
}

// PointerDown handles a button or touch press inside the item's bounds.
// Touch input presses without a prior hover, so Idle transitions directly
// to Pressed.
func (t *PointerTracker) PointerDown() {
	if !t.enabled {
		return
	}
	t.state = StatePressed
}

// PointerUp handles release inside the item's bounds. Returns true when the
// release completes a press, which is the activation signal.
func (t *PointerTracker) PointerUp() bool {
	if t.state != StatePressed {
		return false
	}
	t.state = StateHovered
	return true
}

// HandleMotion feeds a pointer position sample, deriving enter/leave from
// the item's bounds.
func (t *PointerTracker) HandleMotion(x, y int32, bounds sdl.Rect) {
	if pointInRect(x, y, bounds) {
		t.PointerEnter()
	} else {
		t.PointerLeave()
	}
}

// HandleButton feeds a button transition at the given position. Returns true
// when the transition activates the item.
func (t *PointerTracker) HandleButton(down bool, x, y int32, bounds sdl.Rect) bool {
	inside := pointInRect(x, y, bounds)

	if down {
		if inside {
			t.PointerDown()
		}
		return false
	}

	if !inside {
		t.PointerLeave()
		return false
	}
	return t.PointerUp()
}

// TextColorFor selects the text color variant for an interaction state.
func (s ResolvedStyle) TextColorFor(state InteractionState) sdl.Color {
	if state == StateHovered || state == StatePressed {
		return s.HoveredTextColor
	}
	return s.TextColor
}

// BackgroundFor returns the row tint for an interaction state. The zero
// alpha color for StateIdle means no tint is drawn.
func (s ResolvedStyle) BackgroundFor(state InteractionState) sdl.Color {
	switch state {
	case StatePressed:
		return s.PressedColor
	case StateHovered:
		return s.HoverColor
	default:
		return sdl.Color{}
	}
}

func pointInRect(x, y int32, r sdl.Rect) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
