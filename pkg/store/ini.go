package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/mod/semver"
	"gopkg.in/ini.v1"
)

// FormatVersion is the on-disk format version recorded by FileStore.Sync.
// Opening a file recorded under a different major version reports
// StatusFormatError rather than guessing at key layout.
const FormatVersion = "v1.0.0"

const (
	metaSection = "meta"
	versionKey  = "version"
)

// FileStore is an INI-backed Store bound to a single file path.
//
// Slash-separated key paths map to dotted INI section names, so
// "window/geometry/x" is stored as key "x" in section [window.geometry].
// Byte blobs are base64-encoded. A missing file opens as an empty store
// with StatusOK; Sync creates it.
type FileStore struct {
	path   string
	file   *ini.File
	groups []string
	status Status
}

// OpenFile opens (or prepares to create) the INI store at path.
// The returned store always exists; check Status for access or format
// problems before trusting reads.
func OpenFile(path string) *FileStore {
	s := &FileStore{path: path, status: StatusOK}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		s.file = ini.Empty()
	case err != nil:
		s.file = ini.Empty()
		s.status = StatusAccessError
	default:
		f, perr := ini.Load(data)
		if perr != nil {
			s.file = ini.Empty()
			s.status = StatusFormatError
		} else {
			s.file = f
			s.checkVersion()
		}
	}
	return s
}

// checkVersion flags a format error when the recorded format major version
// does not match FormatVersion's major.
func (s *FileStore) checkVersion() {
	sec, err := s.file.GetSection(metaSection)
	if err != nil {
		return
	}
	v := sec.Key(versionKey).String()
	if v == "" {
		return
	}
	if !semver.IsValid(v) || semver.Major(v) != semver.Major(FormatVersion) {
		s.status = StatusFormatError
	}
}

// Path returns the file path the store is bound to.
func (s *FileStore) Path() string {
	return s.path
}

// splitKey maps an absolute slash path to an INI section and key name.
func splitKey(abs string) (section, name string) {
	if i := strings.LastIndex(abs, "/"); i >= 0 {
		return strings.ReplaceAll(abs[:i], "/", "."), abs[i+1:]
	}
	return "", abs
}

func (s *FileStore) lookup(key string) (string, bool) {
	section, name := splitKey(joinKey(s.groups, key))
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(name) {
		return "", false
	}
	return sec.Key(name).String(), true
}

func (s *FileStore) GetString(key, def string) string {
	if v, ok := s.lookup(key); ok {
		return v
	}
	return def
}

func (s *FileStore) GetBool(key string, def bool) bool {
	if v, ok := s.lookup(key); ok {
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}
	return def
}

func (s *FileStore) GetInt(key string, def int) int {
	if v, ok := s.lookup(key); ok {
		if n, err := cast.ToIntE(v); err == nil {
			return n
		}
	}
	return def
}

func (s *FileStore) GetFloat(key string, def float64) float64 {
	if v, ok := s.lookup(key); ok {
		if f, err := cast.ToFloat64E(v); err == nil {
			return f
		}
	}
	return def
}

func (s *FileStore) GetBytes(key string, def []byte) []byte {
	if v, ok := s.lookup(key); ok {
		if b, err := base64.StdEncoding.DecodeString(v); err == nil {
			return b
		}
	}
	return def
}

func (s *FileStore) Set(key string, value any) {
	section, name := splitKey(joinKey(s.groups, key))
	s.file.Section(section).Key(name).SetValue(encodeValue(value))
}

func (s *FileStore) Contains(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

func (s *FileStore) Remove(key string) {
	section, name := splitKey(joinKey(s.groups, key))
	sec, err := s.file.GetSection(section)
	if err != nil {
		return
	}
	sec.DeleteKey(name)
}

func (s *FileStore) BeginGroup(name string) {
	s.groups = append(s.groups, name)
}

func (s *FileStore) EndGroup() {
	if len(s.groups) > 0 {
		s.groups = s.groups[:len(s.groups)-1]
	}
}

func (s *FileStore) AllKeys() []string {
	var keys []string
	for _, sec := range s.file.Sections() {
		if sec.Name() == metaSection {
			continue
		}
		prefix := ""
		if sec.Name() != ini.DefaultSection {
			prefix = strings.ReplaceAll(sec.Name(), ".", "/") + "/"
		}
		for _, k := range sec.KeyStrings() {
			keys = append(keys, prefix+k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Sync writes the file to disk, recording the format version.
func (s *FileStore) Sync() error {
	s.file.Section(metaSection).Key(versionKey).SetValue(FormatVersion)
	if err := s.file.SaveTo(s.path); err != nil {
		s.status = StatusAccessError
		return fmt.Errorf("store: sync %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Status() Status {
	return s.status
}

// encodeValue renders a scalar or byte blob into INI text form.
func encodeValue(value any) string {
	if b, ok := value.([]byte); ok {
		return base64.StdEncoding.EncodeToString(b)
	}
	return cast.ToString(value)
}
