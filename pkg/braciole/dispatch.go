package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/overlay"
	"go.uber.org/atomic"
)

// PendingInvoke is the handle for a delayed action dispatch. The underlying
// timer is fire-and-forget; the handle exists so hosts with teardown hooks
// can suppress a callback that would otherwise fire after the item is gone.
type PendingInvoke struct {
	timer     *time.Timer
	fired     *atomic.Bool
	cancelled *atomic.Bool
}

func newPendingInvoke() *PendingInvoke {
	return &PendingInvoke{
		fired:     atomic.NewBool(false),
		cancelled: atomic.NewBool(false),
	}
}

func (p *PendingInvoke) schedule(delay time.Duration, onTap func()) {
	p.timer = time.AfterFunc(delay, func() {
		if p.cancelled.Load() {
			return
		}
		p.fired.Store(true)
		onTap()
	})
}

// Cancel suppresses the pending invocation. Returns false when the callback
// already ran.
func (p *PendingInvoke) Cancel() bool {
	if p.fired.Load() {
		return false
	}
	p.cancelled.Store(true)
	if p.timer != nil {
		p.timer.Stop()
	}
	return true
}

// Fired reports whether the delayed callback has run.
func (p *PendingInvoke) Fired() bool {
	return p.fired.Load()
}

// Activate dispatches an item's action according to its tap policy. Callers
// only invoke it for enabled items with a non-nil callback; a nil callback
// is a no-op regardless of policy.
//
// The pop-based policies require an overlay host; without one they degrade
// to immediate dispatch. Activation is fire-and-forget: it never awaits the
// callback and never recovers panics it raises.
//
// The returned handle is non-nil only for TapPolicyPopThenDelayedInvoke with
// a live host.
func Activate(host overlay.Host, onTap func(), policy TapPolicy) *PendingInvoke {
	if onTap == nil {
		return nil
	}

	if host == nil || policy == TapPolicyImmediate {
		onTap()
		return nil
	}

	switch policy {
	case TapPolicyPopThenInvoke:
		// The host invokes func() results once the route has closed.
		host.Pop(onTap)
		return nil

	case TapPolicyPopThenDelayedInvoke:
		pending := newPendingInvoke()
		delay := host.CloseDuration()
		host.Pop(func() {
			pending.schedule(delay, onTap)
		})
		return pending

	default:
		onTap()
		return nil
	}
}
