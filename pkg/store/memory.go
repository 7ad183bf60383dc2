package store

import (
	"sort"

	"github.com/spf13/cast"
)

// MemoryStore is a map-backed Store with no durable medium.
// It backs tests and ad-hoc state snapshots. Sync is a no-op.
type MemoryStore struct {
	values map[string]any
	groups []string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

func (s *MemoryStore) lookup(key string) (any, bool) {
	v, ok := s.values[joinKey(s.groups, key)]
	return v, ok
}

func (s *MemoryStore) GetString(key, def string) string {
	if v, ok := s.lookup(key); ok {
		if str, err := cast.ToStringE(v); err == nil {
			return str
		}
	}
	return def
}

func (s *MemoryStore) GetBool(key string, def bool) bool {
	if v, ok := s.lookup(key); ok {
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}
	return def
}

func (s *MemoryStore) GetInt(key string, def int) int {
	if v, ok := s.lookup(key); ok {
		if n, err := cast.ToIntE(v); err == nil {
			return n
		}
	}
	return def
}

func (s *MemoryStore) GetFloat(key string, def float64) float64 {
	if v, ok := s.lookup(key); ok {
		if f, err := cast.ToFloat64E(v); err == nil {
			return f
		}
	}
	return def
}

func (s *MemoryStore) GetBytes(key string, def []byte) []byte {
	if v, ok := s.lookup(key); ok {
		if b, isBytes := v.([]byte); isBytes {
			return b
		}
	}
	return def
}

func (s *MemoryStore) Set(key string, value any) {
	s.values[joinKey(s.groups, key)] = value
}

func (s *MemoryStore) Contains(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

func (s *MemoryStore) Remove(key string) {
	delete(s.values, joinKey(s.groups, key))
}

func (s *MemoryStore) BeginGroup(name string) {
	s.groups = append(s.groups, name)
}

func (s *MemoryStore) EndGroup() {
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

func (s *MemoryStore) AllKeys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *MemoryStore) Sync() error {
	return nil
}

func (s *MemoryStore) Status() Status {
	return StatusOK
}
