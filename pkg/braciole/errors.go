package braciole

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/overlay"
)

// ErrDismissed indicates the user dismissed the menu without choosing an
// item. This is normal flow control, not an infrastructure failure. It is
// the value overlay.(*Overlay).Dismiss resolves routes with.
var ErrDismissed = overlay.ErrDismissed

// InfrastructureError represents a framework-level error that indicates
// something is wrong with braciole itself (rendering failed, SDL crashed,
// font missing, etc.). These errors are typically fatal or require
// framework-level recovery.
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("braciole: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("braciole: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsDismissed checks if an error indicates the menu was dismissed.
func IsDismissed(err error) bool {
	return errors.Is(err, ErrDismissed)
}
