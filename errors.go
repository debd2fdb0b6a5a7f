package chatsy

import (
	"errors"
	"fmt"
)

// Sentinel errors for chatsy. Use errors.Is to check.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrInvalidRole  = errors.New("invalid message role")
	ErrRoundLimit   = errors.New("tool-call round limit exceeded")
)

// ToolNotFoundError reports a dispatch for a name absent from the registry.
// It matches ErrToolNotFound via errors.Is.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// Unwrap supports errors.Is(err, ErrToolNotFound).
func (e *ToolNotFoundError) Unwrap() error { return ErrToolNotFound }

// BindingError reports arguments that could not be bound to a tool's
// declared parameters: malformed argument JSON, unexpected keys, or missing
// required parameters. Err carries the underlying cause.
type BindingError struct {
	ToolName string
	Err      error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("tool %s: cannot bind arguments: %v", e.ToolName, e.Err)
}

func (e *BindingError) Unwrap() error { return e.Err }

// InvalidRoleError reports a history entry whose role is not one of the four
// conversation roles. It matches ErrInvalidRole via errors.Is.
type InvalidRoleError struct {
	Role Role
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid message role: %q", string(e.Role))
}

// Unwrap supports errors.Is(err, ErrInvalidRole).
func (e *InvalidRoleError) Unwrap() error { return ErrInvalidRole }

// IsBindingError returns true if err is or wraps a BindingError.
func IsBindingError(err error) bool {
	var be *BindingError
	return errors.As(err, &be)
}

// panicError wraps a recovered panic value; used by the WithRecovery middleware.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
