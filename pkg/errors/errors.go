// Package errors provides structured error handling for the settings library.
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
	// KindStore indicates a backing-store access or format error.
	KindStore
	// KindHandler indicates a per-control handler failure.
	KindHandler
	// KindCodec indicates a custom-data serialization failure.
	KindCodec
	// KindConfig indicates a configuration error at registration time.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStore:
		return "store"
	case KindHandler:
		return "handler"
	case KindCodec:
		return "codec"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SettingsError represents a structured error in the settings library.
type SettingsError struct {
	// Op is the operation that failed (e.g., "settings.LoadFromFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Control is the declared name of the control involved, if applicable.
	Control string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SettingsError) Error() string {
	if e.Control != "" {
		return fmt.Sprintf("%s [%s] control=%s: %v", e.Op, e.Kind, e.Control, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "settings.walk/compare").
	Op string
	// Value is the value passed to panic().
	Value any
	// Control is the declared name of the control involved, if applicable.
	Control string
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
