// Package errors provides structured error handling for the Scenic framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRegistry indicates a type-name resolution failure.
	KindRegistry
	// KindConstruct indicates a native constructor failure.
	KindConstruct
	// KindProp indicates a property application failure.
	KindProp
	// KindRender indicates a render-callback failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindParse indicates a scene-document parsing failure.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegistry:
		return "registry"
	case KindConstruct:
		return "construct"
	case KindProp:
		return "prop"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// SceneError represents a structured error in the Scenic framework.
type SceneError struct {
	// Op is the operation that failed (e.g., "core.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// TypeName is the declarative type name involved, if applicable.
	TypeName string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SceneError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("%s [%s] type=%s: %v", e.Op, e.Kind, e.TypeName, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SceneError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.tick").
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

// UnknownTypeError reports a declarative type name that does not resolve
// in the registry. Mounting the node fails fast and the parent mount aborts.
type UnknownTypeError struct {
	// TypeName is the unresolvable declarative type name.
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown scene type %q", e.TypeName)
}

// ConstructionError reports a native constructor failure for a given
// argument list. The mount is fatal for that node and is not retried.
type ConstructionError struct {
	// TypeName is the declarative type whose constructor failed.
	TypeName string
	// Args is the construction argument list that was rejected.
	Args []any
	// Err is the underlying constructor error.
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing %s with args %v: %v", e.TypeName, e.Args, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// PropError reports a property application failure. It is warning-class:
// the instance keeps its previous value at that path and other properties
// in the same batch still apply.
type PropError struct {
	// TypeName is the declarative type the property was applied to.
	TypeName string
	// Path is the (possibly dotted) property path.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *PropError) Error() string {
	return fmt.Sprintf("applying prop %q on %s: %v", e.Path, e.TypeName, e.Err)
}

func (e *PropError) Unwrap() error {
	return e.Err
}

// TickError reports a render-callback failure during a frame tick. The
// frame loop reports it and continues scheduling; a bad frame must not
// stop rendering forever.
type TickError struct {
	// Frame is the tick counter at the time of the failure.
	Frame uint64
	// Err is the error or recovered panic from the render callback.
	Err error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
}

func (e *TickError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Scenic framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SceneError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
