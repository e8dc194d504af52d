// Package overlay provides the route host that transient menus are presented in.
//
// An overlay is a modal surface layered above the current screen, such as a
// pull-down menu. Components rendered inside an overlay receive a Host handle
// through their group context and use it to close the overlay with a result
// value. Pop semantics are explicit: the component decides what the route
// resolves with, and the host decides when resolved callbacks run.
//
// # Basic Usage
//
//	o := overlay.New()
//
//	o.Present(&overlay.Route{
//	    Name: "context-menu",
//	    OnResult: func(result any) {
//	        // result is whatever the item popped with
//	    },
//	})
//
//	// Inside a menu item's tap handling:
//	o.Pop(func() {
//	    // runs after the route resolves
//	})
//
// # Result Values
//
// Pop accepts any value. Values of type func() are treated as deferred
// actions: the host invokes them after the route's OnResult callback has
// run. Menu items rely on this to hand their action callback back to the
// host instead of running it while the overlay is still open.
//
// Closing without a selection goes through Dismiss, which resolves the route
// with ErrDismissed so OnResult callbacks can tell "user backed out" apart
// from an item result.
//
// # Nil Hosts
//
// Host is an interface so that components can be used outside any overlay.
// Components treat a nil Host as "not presented in an overlay" and fall back
// to invoking their callbacks directly.
package overlay
