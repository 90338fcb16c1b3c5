package content

import "fmt"

// GenerationError represents a failure to obtain tailored content from the
// upstream content source.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("content generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
