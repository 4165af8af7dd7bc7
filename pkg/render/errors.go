package render

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when a capture is requested while the engine is
// not in the ready state, either because Initialize was never called, the
// browser failed to launch, or Cleanup already ran.
var ErrUnavailable = errors.New("render: engine unavailable")

// CaptureError wraps a browser-side failure for a single viewport capture.
type CaptureError struct {
	Viewport string
	Cause    error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("render: capture failed for viewport %q: %v", e.Viewport, e.Cause)
}

func (e *CaptureError) Unwrap() error { return e.Cause }
