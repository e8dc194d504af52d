package overlay

import (
	"errors"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
)

// ErrDismissed is the result a route resolves with when the user closes the
// overlay without choosing an item. This is normal flow control, not a
// failure; OnResult callbacks should treat it as "no selection".
var ErrDismissed = errors.New("menu dismissed by user")

// Host is the capability a menu item needs from the overlay system that
// presented it: a way to close the overlay with a result value, and the
// length of the close animation for deferred dispatch.
//
// Components receive a Host explicitly through their group context. A nil
// Host means the component is not presented inside an overlay, and pop-based
// behavior degrades to direct invocation.
type Host interface {
	// Pop closes the topmost overlay and resolves its route with result.
	// If result is a func(), the host invokes it once the route has closed.
	Pop(result any)

	// CloseDuration returns the close animation length of the topmost overlay.
	CloseDuration() time.Duration
}

// Route describes one presented overlay.
type Route struct {
	// Name identifies the route in logs.
	Name string

	// Close is the close animation length. Zero means the framework default.
	Close time.Duration

	// OnResult is called with the value the route resolved with when the
	// overlay closes. May be nil.
	OnResult func(result any)
}

// Overlay manages a stack of presented overlay routes and implements Host
// for the components rendered inside them.
type Overlay struct {
	stack *Stack
}

var _ Host = (*Overlay)(nil)

// New creates an empty overlay host.
func New() *Overlay {
	return &Overlay{
		stack: NewStack(),
	}
}

// Present pushes a route onto the overlay stack.
func (o *Overlay) Present(route *Route) {
	o.stack.Push(route)
}

// Pop removes the topmost route and resolves it with result.
// The route is gone from the host's perspective as soon as Pop returns; the
// close animation that follows is purely visual. Result values of type
// func() are invoked after the route's OnResult callback runs.
func (o *Overlay) Pop(result any) {
	route := o.stack.Pop()
	if route == nil {
		return
	}

	if route.OnResult != nil {
		route.OnResult(result)
	}

	if fn, ok := result.(func()); ok {
		fn()
	}
}

// Dismiss closes the topmost route without a selection, resolving it with
// ErrDismissed. Bound to scrim taps and back gestures by the enclosing menu.
func (o *Overlay) Dismiss() {
	o.Pop(ErrDismissed)
}

// CloseDuration returns the close animation length of the topmost route,
// or the framework default when the stack is empty or the route does not
// set one.
func (o *Overlay) CloseDuration() time.Duration {
	route := o.stack.Peek()
	if route == nil || route.Close <= 0 {
		return constants.DefaultCloseDuration
	}
	return route.Close
}

// Depth returns the number of presented routes.
func (o *Overlay) Depth() int {
	return o.stack.Len()
}
