package core

import "fmt"

// ValidationError reports caller input that can never succeed as sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// UpstreamError wraps a failed call to the generation service. Err carries
// the provider detail, which is logged but not shown to callers.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

var (
	ErrMissingPrompt = &ValidationError{Reason: "missing prompt"}
	ErrPromptTooLong = &ValidationError{Reason: "prompt too long"}
)
