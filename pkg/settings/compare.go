package settings

import (
	"github.com/go-drift/settings/pkg/store"
)

// HasUnsavedChanges reports whether the live control tree differs from the
// default store. This is the ground-truth recomputation, independent of the
// touched flag, which can go stale (loading a file whose contents happen to
// equal the in-memory state leaves touched clean but says nothing about the
// default store).
func (m *Manager) HasUnsavedChanges() bool {
	return m.compareAgainst(m.store)
}

// HasUnsavedChangesFile compares the live tree against the snapshot at
// path. An unreadable or malformed comparison target is "no detectable
// difference", not an error: it is logged and false is returned.
func (m *Manager) HasUnsavedChangesFile(path string) bool {
	st := store.OpenFile(path)
	if status := st.Status(); status != store.StatusOK {
		m.log.Warn().Str("path", path).Stringer("status", status).
			Msg("cannot compare against settings file")
		return false
	}
	return m.compareAgainst(st)
}

// HasUnsavedChangesStore compares the live tree against an already-open
// store.
func (m *Manager) HasUnsavedChangesStore(st store.Store) bool {
	return m.compareAgainst(st)
}

func (m *Manager) compareAgainst(st store.Store) bool {
	if m.root == nil {
		m.log.Warn().Msg("no root control to compare")
		return false
	}
	diff := m.walk(m.root, st, opCompare, nil)
	m.log.Debug().Bool("different", diff).Msg("comparison finished")
	return diff
}
