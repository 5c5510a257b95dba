// Package errors provides structured error handling for the cellkit render cycle.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-drift/cellkit/pkg/layout"
)

// ErrContextClosed is the panic value raised when a context is used after
// the call that received it returned.
var ErrContextClosed = stderrors.New("cellkit: context used after its call returned")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBuild indicates a failure during the build phase.
	KindBuild
	// KindLayout indicates a failure during the layout phase.
	KindLayout
	// KindDraw indicates a failure during the draw phase.
	KindDraw
	// KindCollision indicates two stateful components claimed one identity.
	KindCollision
	// KindDepth indicates the tree exceeded the configured maximum depth.
	KindDepth
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates invalid configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindLayout:
		return "layout"
	case KindDraw:
		return "draw"
	case KindCollision:
		return "collision"
	case KindDepth:
		return "depth"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error raised while rendering a frame.
type Error struct {
	// Op is the operation that failed (e.g., "core.Renderer.Frame").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Identity is the state identity involved, if any.
	Identity string
	// Frame is the frame number the error occurred in.
	Frame uint64
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Identity != "" {
		return fmt.Sprintf("%s [%s] identity=%s: %v", e.Op, e.Kind, e.Identity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Renderer.layout").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IdentityCollisionError reports two stateful components resolving to the
// same identity within one build pass. Sharing state between them would
// corrupt both, so the frame is aborted.
type IdentityCollisionError struct {
	// Identity is the colliding key.
	Identity string
	// Frame is the frame number of the aborted build.
	Frame uint64
	// First and Second are the state type names of the two claimants.
	First  string
	Second string
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("identity %q claimed twice in frame %d (%s, %s)", e.Identity, e.Frame, e.First, e.Second)
}

// ConstraintViolation records a component that returned a size outside the
// bounds it was given. The parent clamps and carries on; the violation is
// only ever reported, never returned.
type ConstraintViolation struct {
	// Component is the type name of the offending component.
	Component string
	Bounds    layout.Bounds
	Got       layout.Size
	Clamped   layout.Size
}

func (v *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s returned %v outside %v, clamped to %v", v.Component, v.Got, v.Bounds, v.Clamped)
}

// ErrorHandler receives errors reported by the render cycle.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleViolation is called when a layout result had to be clamped.
	HandleViolation(v *ConstraintViolation)
}

// New, Is and As forward to the standard library so callers importing this
// package need not alias it.
func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
