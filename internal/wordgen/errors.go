package wordgen

import "fmt"

// GenerationError indicates a batch could not be produced: the upstream call
// failed, the response was unparseable, the batch was empty, or an item was
// malformed. It is surfaced to the caller and never recovered internally.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("word batch generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// genErrf builds a *GenerationError from a format string.
func genErrf(format string, args ...any) *GenerationError {
	return &GenerationError{Err: fmt.Errorf(format, args...)}
}
