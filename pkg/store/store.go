// Package store provides the persistent key-value namespace backing
// widget-state save and load.
//
// Keys are slash-separated paths ("window/geometry/x"). A group stack pushed
// with BeginGroup/EndGroup prefixes every key, mirroring hierarchical
// namespacing in desktop settings formats. Two implementations are provided:
// FileStore persists to an INI-style text file, MemoryStore holds values in a
// map and is intended for tests and transient snapshots.
package store

import "strings"

// Status reports the health of a store.
type Status int

const (
	// StatusOK indicates the store is readable and writable.
	StatusOK Status = iota
	// StatusAccessError indicates the backing medium could not be read.
	StatusAccessError
	// StatusFormatError indicates the backing data is malformed or written
	// by an incompatible format version.
	StatusFormatError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAccessError:
		return "access-error"
	case StatusFormatError:
		return "format-error"
	default:
		return "unknown"
	}
}

// Store is a persistent key-value namespace with hierarchical grouping.
//
// Every Get accepts a default returned when the key is absent or the stored
// value cannot be coerced to the requested type. Implementations must be
// tolerant readers: a bad value is never an error, only the default.
type Store interface {
	// GetString returns the string value for key, or def when absent.
	GetString(key, def string) string
	// GetBool returns the boolean value for key, or def when absent.
	GetBool(key string, def bool) bool
	// GetInt returns the integer value for key, or def when absent.
	GetInt(key string, def int) int
	// GetFloat returns the float value for key, or def when absent.
	GetFloat(key string, def float64) float64
	// GetBytes returns the byte-blob value for key, or def when absent.
	GetBytes(key string, def []byte) []byte

	// Set writes a value under key. Supported value types are bool, string,
	// integer and float scalars, and []byte.
	Set(key string, value any)
	// Contains reports whether key holds a value.
	Contains(key string) bool
	// Remove deletes key if present.
	Remove(key string)

	// BeginGroup pushes a prefix onto the group stack.
	BeginGroup(name string)
	// EndGroup pops the most recent prefix. Unbalanced pops are ignored.
	EndGroup()

	// AllKeys returns every stored key as an absolute slash path.
	AllKeys() []string

	// Sync flushes pending writes to the durable medium.
	Sync() error
	// Status reports the current health of the store.
	Status() Status
}

// joinKey resolves key against the group stack into an absolute slash path.
func joinKey(groups []string, key string) string {
	if len(groups) == 0 {
		return key
	}
	return strings.Join(groups, "/") + "/" + key
}
