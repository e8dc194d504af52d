package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// MenuItem is the composition root for one selectable row in an overlay
// menu. It wires the style cascade, variant layout, interaction tracking,
// and tap dispatch together per render pass.
//
// Spec and Group are read-only for the item's mounted lifetime. The only
// state carried across renders is the pointer tracker; everything else is
// rebuilt by Build each pass.
type MenuItem struct {
	Spec     ItemSpec
	Group    GroupContext
	Position sdl.Point // Top-left corner assigned by the enclosing menu

	tracker *PointerTracker
	pending *PendingInvoke
	cache   *internal.TextureCache
	layout  *ItemLayout
}

// NewMenuItem mounts an item with its spec and group context.
func NewMenuItem(spec ItemSpec, group GroupContext) *MenuItem {
	return &MenuItem{
		Spec:    spec,
		Group:   group,
		tracker: NewPointerTracker(spec.Enabled),
		cache:   internal.NewTextureCache(),
	}
}

// Build runs the resolution pipeline for one render pass: style cascade,
// variant layout, semantics. The result is positioned at the item's assigned
// origin.
func (mi *MenuItem) Build() *ItemLayout {
	style := ResolveItemStyle(mi.Spec.Style, AmbientItemStyle(), DefaultItemStyle(), mi.Spec.Enabled, mi.Spec.Destructive)
	layout := BuildItemLayout(mi.Group.SizeClass, mi.Spec, style, mi.Group)
	layout.translate(mi.Position.X, mi.Position.Y)

	mi.layout = &layout
	return mi.layout
}

func (l *ItemLayout) translate(dx, dy int32) {
	l.Bounds.X += dx
	l.Bounds.Y += dy
	if l.Icon != nil {
		l.Icon.Rect.X += dx
		l.Icon.Rect.Y += dy
	}
	if l.Title != nil {
		l.Title.Rect.X += dx
		l.Title.Rect.Y += dy
	}
	if l.Indicator != nil {
		l.Indicator.Rect.X += dx
		l.Indicator.Rect.Y += dy
	}
}

// State returns the item's current interaction state.
func (mi *MenuItem) State() InteractionState {
	return mi.tracker.State()
}

// Layout returns the most recently built layout, building one if needed.
func (mi *MenuItem) Layout() *ItemLayout {
	if mi.layout == nil {
		return mi.Build()
	}
	return mi.layout
}

// Pending returns the handle of an in-flight delayed dispatch, or nil.
func (mi *MenuItem) Pending() *PendingInvoke {
	return mi.pending
}

// HandleEvent feeds an SDL event into the item's interaction machine.
// Returns true when the event activated the item.
func (mi *MenuItem) HandleEvent(event sdl.Event) bool {
	bounds := mi.Layout().Bounds

	switch e := event.(type) {
	case *sdl.MouseMotionEvent:
		mi.tracker.HandleMotion(e.X, e.Y, bounds)
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return false
		}
		down := e.Type == sdl.MOUSEBUTTONDOWN
		if mi.tracker.HandleButton(down, e.X, e.Y, bounds) {
			mi.activate()
			return true
		}
	}

	return false
}

// HandleTouch feeds a touchscreen pointer sample into the interaction
// machine. Returns true when the sample activated the item.
func (mi *MenuItem) HandleTouch(ev internal.PointerEvent) bool {
	bounds := mi.Layout().Bounds

	if ev.Down {
		mi.tracker.HandleButton(true, ev.X, ev.Y, bounds)
		return false
	}
	if ev.Up {
		if mi.tracker.HandleButton(false, ev.X, ev.Y, bounds) {
			mi.activate()
			return true
		}
		return false
	}

	mi.tracker.HandleMotion(ev.X, ev.Y, bounds)
	return false
}

func (mi *MenuItem) activate() {
	if !mi.Spec.Enabled || mi.Spec.OnTap == nil {
		return
	}

	internal.GetInternalLogger().Debug("Menu item activated",
		"title", mi.Spec.Title,
		"policy", int(mi.Spec.TapPolicy),
		"hosted", mi.Group.Host != nil,
	)

	mi.pending = Activate(mi.Group.Host, mi.Spec.OnTap, mi.Spec.TapPolicy)
}

// Render draws the item. The layout is rebuilt every call so ambient theme
// changes take effect on the next frame.
func (mi *MenuItem) Render(renderer *sdl.Renderer) {
	layout := mi.Build()
	drawItem(renderer, layout, mi.tracker.State(), mi.cache)
}

// Unmount releases the item's cached textures. A pending delayed dispatch is
// deliberately left running: its callback is a value-capturing closure that
// needs no live item. Callers that must suppress it can Cancel through
// Pending first.
func (mi *MenuItem) Unmount() {
	mi.cache.Destroy()
	mi.layout = nil
	mi.tracker.PointerLeave()
}
