package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/settings/pkg/errors"
	"github.com/go-drift/settings/pkg/store"
)

// customDataGroup namespaces arbitrary application payloads away from
// control state.
const customDataGroup = "customData"

// SaveCustomData serializes data and stores it under key in the default
// store, then flushes. A write marks the document touched; a serialization
// failure writes nothing and leaves the touched flag alone.
//
// Payloads round-trip through YAML: strings, numbers, booleans and nested
// map/sequence structures are preserved. Unsupported values (functions,
// channels) fail with a codec error.
func (m *Manager) SaveCustomData(key string, data any) error {
	if err := writeCustomData(m.store, key, data); err != nil {
		return err
	}
	if err := m.store.Sync(); err != nil {
		errors.Report(&errors.SettingsError{
			Op:   "settings.SaveCustomData",
			Kind: errors.KindStore,
			Err:  err,
		})
	}
	m.MarkTouched()
	return nil
}

// LoadCustomData retrieves and deserializes the payload stored under key.
// A missing key yields (nil, nil); reading never marks the document
// touched.
func (m *Manager) LoadCustomData(key string) (any, error) {
	return readCustomData(m.store, key)
}

// SaveCustomDataToFile is SaveCustomData against a transient store at path.
// It does not affect the touched flag: file-scoped payloads are snapshots,
// not edits of the default document.
func (m *Manager) SaveCustomDataToFile(path, key string, data any) error {
	st := store.OpenFile(path)
	if err := writeCustomData(st, key, data); err != nil {
		return err
	}
	return st.Sync()
}

// LoadCustomDataFromFile is LoadCustomData against a transient store at
// path.
func (m *Manager) LoadCustomDataFromFile(path, key string) (any, error) {
	st := store.OpenFile(path)
	if status := st.Status(); status != store.StatusOK {
		return nil, &errors.SettingsError{
			Op:   "settings.LoadCustomDataFromFile",
			Kind: errors.KindStore,
			Err:  fmt.Errorf("store %q unusable: %s", path, status),
		}
	}
	return readCustomData(st, key)
}

func writeCustomData(st store.Store, key string, data any) error {
	blob, err := marshalCustomData(key, data)
	if err != nil {
		errors.Report(&errors.SettingsError{
			Op:   "settings.SaveCustomData",
			Kind: errors.KindCodec,
			Err:  err,
		})
		return err
	}
	st.Set(customDataGroup+"/"+key, blob)
	return nil
}

// marshalCustomData isolates yaml.Marshal because it panics on some
// unsupported payloads instead of returning an error.
func marshalCustomData(key string, data any) (blob []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot serialize custom data for key %q: %v", key, r)
		}
	}()
	blob, err = yaml.Marshal(data)
	if err != nil {
		err = fmt.Errorf("cannot serialize custom data for key %q: %w", key, err)
	}
	return blob, err
}

func readCustomData(st store.Store, key string) (any, error) {
	fullKey := customDataGroup + "/" + key
	if !st.Contains(fullKey) {
		return nil, nil
	}
	blob := st.GetBytes(fullKey, nil)
	if len(blob) == 0 {
		return nil, nil
	}
	var out any
	if err := yaml.Unmarshal(blob, &out); err != nil {
		wrapped := &errors.SettingsError{
			Op:   "settings.LoadCustomData",
			Kind: errors.KindCodec,
			Err:  fmt.Errorf("cannot deserialize custom data for key %q: %w", key, err),
		}
		errors.Report(wrapped)
		return nil, wrapped
	}
	return out, nil
}
