package braciole

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (closed the
	// window, etc.). This is normal flow control, not an infrastructure
	// failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNoChoices indicates a choice page was constructed with an empty
	// item sequence. The controller requires at least one item; supplying
	// none is a programming defect surfaced at construction.
	ErrNoChoices = errors.New("choice page requires at least one item")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with braciole itself (rendering failed, SDL crashed,
// font missing, input device unavailable). These errors are typically fatal
// or require framework-level recovery.
//
// Use this for errors that the consuming application cannot reasonably
// handle or recover from at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font", "open_input")
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
