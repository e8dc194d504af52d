package braciole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPointerTrackerTransitions(t *testing.T) {
	tracker := NewPointerTracker(true)
	assert.Equal(t, StateIdle, tracker.State())

	tracker.PointerEnter()
	assert.Equal(t, StateHovered, tracker.State())

	tracker.PointerDown()
	assert.Equal(t, StatePressed, tracker.State())

	activated := tracker.PointerUp()
	assert.True(t, activated, "release without leaving activates")
	assert.Equal(t, StateHovered, tracker.State())

	tracker.PointerLeave()
	assert.Equal(t, StateIdle, tracker.State())
}

func TestPointerTrackerLeaveAbandonsPress(t *testing.T) {
	tracker := NewPointerTracker(true)

	tracker.PointerEnter()
	tracker.PointerDown()
	tracker.PointerLeave()

	assert.Equal(t, StateIdle, tracker.State())
	assert.False(t, tracker.PointerUp(), "release after leaving does not activate")
}

func TestPointerTrackerTouchPressesWithoutHover(t *testing.T) {
	tracker := NewPointerTracker(true)

	tracker.PointerDown()
	assert.Equal(t, StatePressed, tracker.State())
}

func TestDisabledTrackerStaysIdle(t *testing.T) {
	tracker := NewPointerTracker(false)

	tracker.PointerEnter()
	assert.Equal(t, StateIdle, tracker.State())

	tracker.PointerDown()
	assert.Equal(t, StateIdle, tracker.State())

	assert.False(t, tracker.PointerUp())
}

func TestHandleMotionDerivesEnterLeave(t *testing.T) {
	tracker := NewPointerTracker(true)
	bounds := sdl.Rect{X: 10, Y: 10, W: 100, H: 40}

	tracker.HandleMotion(50, 20, bounds)
	assert.Equal(t, StateHovered, tracker.State())

	tracker.HandleMotion(5, 5, bounds)
	assert.Equal(t, StateIdle, tracker.State())
}

func TestHandleButtonActivatesOnReleaseInside(t *testing.T) {
	tracker := NewPointerTracker(true)
	bounds := sdl.Rect{X: 0, Y: 0, W: 100, H: 40}

	assert.False(t, tracker.HandleButton(true, 50, 20, bounds))
	assert.Equal(t, StatePressed, tracker.State())

	assert.True(t, tracker.HandleButton(false, 50, 20, bounds))
	assert.Equal(t, StateHovered, tracker.State())
}

func TestHandleButtonReleaseOutsideCancels(t *testing.T) {
	tracker := NewPointerTracker(true)
	bounds := sdl.Rect{X: 0, Y: 0, W: 100, H: 40}

	tracker.HandleButton(true, 50, 20, bounds)
	assert.False(t, tracker.HandleButton(false, 200, 20, bounds))
	assert.Equal(t, StateIdle, tracker.State())
}

func TestStyleVariantSelection(t *testing.T) {
	style := testStyle()

	assert.Equal(t, style.TextColor, style.TextColorFor(StateIdle))
	assert.Equal(t, style.HoveredTextColor, style.TextColorFor(StateHovered))
	assert.Equal(t, style.HoveredTextColor, style.TextColorFor(StatePressed))

	assert.Equal(t, sdl.Color{}, style.BackgroundFor(StateIdle))
	assert.Equal(t, style.HoverColor, style.BackgroundFor(StateHovered))
	assert.Equal(t, style.PressedColor, style.BackgroundFor(StatePressed))
}
