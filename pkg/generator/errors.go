package generator

import "fmt"

// GenerationError reports a failed generation call. The completion provider
// failure (or empty output) is carried as the cause; no partial Result ever
// accompanies it.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }
