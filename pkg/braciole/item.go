package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/overlay"
)

// TapPolicy controls how an item's action is dispatched relative to the
// enclosing overlay closing.
type TapPolicy int

const (
	// TapPolicyImmediate invokes the action synchronously without touching
	// the overlay.
	TapPolicyImmediate TapPolicy = iota

	// TapPolicyPopThenInvoke closes the overlay first, handing the action to
	// the overlay host to invoke after closing. Without a host it behaves
	// like TapPolicyImmediate.
	TapPolicyPopThenInvoke

	// TapPolicyPopThenDelayedInvoke closes the overlay, then invokes the
	// action after the overlay's close animation duration has elapsed.
	// Without a host it behaves like TapPolicyImmediate.
	TapPolicyPopThenDelayedInvoke
)

// SizeClass selects which layout variant a menu item renders with.
// It is supplied by the enclosing row or group context.
type SizeClass int

const (
	// SizeClassFull is the zero value: a full row with indicator, title, and
	// trailing icon. It is the only variant without an icon requirement, so a
	// zero SizeClass is always contract-safe.
	SizeClassFull SizeClass = iota
	// SizeClassCompact renders only the icon, no title.
	SizeClassCompact
	// SizeClassStandard stacks the icon above a single-line title.
	SizeClassStandard
)

func (sc SizeClass) String() string {
	switch sc {
	case SizeClassCompact:
		return "compact"
	case SizeClassStandard:
		return "standard"
	case SizeClassFull:
		return "full"
	default:
		return "unknown"
	}
}

// IconContent is the visual content of an item's icon slot. Exactly one of
// the two implementations is used per item; a nil IconContent means the item
// has no icon. The closed set of implementations makes an item with both a
// glyph and custom content unrepresentable.
type IconContent interface {
	isIconContent()
}

// Glyph is an icon font code point, typically one of the constants package
// glyphs, rendered with the theme's icon font.
type Glyph struct {
	Code string
}

func (Glyph) isIconContent() {}

// CustomIcon is an arbitrary SVG document rasterized at the resolved icon
// size in place of a font glyph.
type CustomIcon struct {
	SVG []byte
}

func (CustomIcon) isIconContent() {}

// ItemSpec describes one menu item. It is immutable for the lifetime of a
// render pass; the framework never mutates it.
type ItemSpec struct {
	Title       string             // Row label text
	Icon        IconContent        // Glyph or CustomIcon; required for Compact/Standard variants
	Enabled     bool               // Gates interaction and dims the resolved style
	Destructive bool               // Forces the destructive color for text and icon
	Selected    *bool              // nil = not a selectable item; otherwise checkmark state
	Style       *ItemStyleOverride // Per-item top layer of the style cascade
	TapPolicy   TapPolicy          // Dispatch strategy on activation
	OnTap       func()             // Action callback; nil items render but never dispatch
}

// DefaultItemSpec returns an enabled item with the given title and the
// immediate tap policy.
func DefaultItemSpec(title string) ItemSpec {
	return ItemSpec{
		Title:   title,
		Enabled: true,
	}
}

// GroupContext carries the ambient signals an item consumes from the
// enclosing menu: sizing, text scale, group selectability, and the overlay
// host it is presented in. A zero GroupContext renders a Full-variant item
// at scale 1.0 outside any overlay.
type GroupContext struct {
	SizeClass  SizeClass    // Layout variant for items in this group
	TextScale  float32      // Accessibility text scale; 0 means 1.0
	Selectable bool         // Group reserves indicator space for all Full items
	Width      int32        // Row width available to Full items; 0 uses the default
	Host       overlay.Host // nil when not presented inside an overlay
}

func (g GroupContext) textScale() float32 {
	if g.TextScale <= 0 {
		return 1.0
	}
	return g.TextScale
}

// LargeText reports whether the context's text scale exceeds the large-text
// threshold, switching Full items to their large-text layout.
func (g GroupContext) LargeText() bool {
	return g.textScale() > largeTextScale
}

// Semantics is the single merged accessibility node emitted for one item.
// The flags are never split across sub-elements.
type Semantics struct {
	Label    string
	IsButton bool
	Enabled  bool
	Selected *bool // nil when the item is not selectable
}

// Description returns a localized, human-readable summary of the node for
// screen reader emission.
func (s Semantics) Description() string {
	out := s.Label
	if s.Selected != nil {
		if *s.Selected {
			out += ", " + internal.Localize("MenuItemSelected")
		} else {
			out += ", " + internal.Localize("MenuItemNotSelected")
		}
	}
	if !s.Enabled {
		out += ", " + internal.Localize("MenuItemDisabled")
	}
	out += ", " + internal.Localize("MenuItemRole")
	return out
}
