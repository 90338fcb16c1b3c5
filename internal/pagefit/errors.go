// Package pagefit converts rendered HTML into a paginated PDF artifact and
// measures how the content fills the requested page target.
package pagefit

import "fmt"

// EngineError represents a rendering-engine failure: acquiring an instance,
// navigation, measurement, printing, or a timeout on any of those.
type EngineError struct {
	Op    string
	Cause error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render engine %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("render engine %s failed", e.Op)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}
