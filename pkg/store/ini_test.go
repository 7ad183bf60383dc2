package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileOpensEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	s := OpenFile(path)
	if s.Status() != StatusOK {
		t.Fatalf("missing file should open with StatusOK, got %s", s.Status())
	}
	if s.Contains("anything") {
		t.Error("empty store should contain no keys")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")

	s := OpenFile(path)
	s.Set("enabled", true)
	s.Set("title", "hello world")
	s.Set("count", 42)
	s.Set("ratio", 2.5)
	s.Set("blob", []byte{0x00, 0x01, 0xff})
	if err := s.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	r := OpenFile(path)
	if r.Status() != StatusOK {
		t.Fatalf("reopen status = %s", r.Status())
	}
	if got := r.GetBool("enabled", false); !got {
		t.Error("GetBool: expected true")
	}
	if got := r.GetString("title", ""); got != "hello world" {
		t.Errorf("GetString = %q", got)
	}
	if got := r.GetInt("count", 0); got != 42 {
		t.Errorf("GetInt = %d", got)
	}
	if got := r.GetFloat("ratio", 0); got != 2.5 {
		t.Errorf("GetFloat = %v", got)
	}
	blob := r.GetBytes("blob", nil)
	if len(blob) != 3 || blob[0] != 0x00 || blob[1] != 0x01 || blob[2] != 0xff {
		t.Errorf("GetBytes = %v", blob)
	}
}

func TestFileStoreNestedKeysAndGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")

	s := OpenFile(path)
	s.Set("combo/currentIndex", 2)
	s.BeginGroup("window")
	s.Set("geometry/x", 10)
	s.Set("geometry/y", 20)
	s.EndGroup()
	if err := s.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	r := OpenFile(path)
	if got := r.GetInt("combo/currentIndex", -1); got != 2 {
		t.Errorf("nested key = %d, want 2", got)
	}
	r.BeginGroup("window")
	if got := r.GetInt("geometry/x", -1); got != 10 {
		t.Errorf("grouped key x = %d, want 10", got)
	}
	r.EndGroup()
	if got := r.GetInt("window/geometry/y", -1); got != 20 {
		t.Errorf("absolute key y = %d, want 20", got)
	}
}

func TestFileStoreDefaults(t *testing.T) {
	s := OpenFile(filepath.Join(t.TempDir(), "settings.ini"))
	if got := s.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := s.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	// A value that cannot coerce to the requested type also yields the default.
	s.Set("text", "not a number")
	if got := s.GetInt("text", 9); got != 9 {
		t.Errorf("uncoercible GetInt = %d, want 9", got)
	}
}

func TestFileStoreRemove(t *testing.T) {
	s := OpenFile(filepath.Join(t.TempDir(), "settings.ini"))
	s.Set("key", "value")
	if !s.Contains("key") {
		t.Fatal("expected key present after Set")
	}
	s.Remove("key")
	if s.Contains("key") {
		t.Error("expected key absent after Remove")
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte("[unterminated\nnot=ini at all ]]]\x00"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	s := OpenFile(path)
	if s.Status() != StatusFormatError {
		t.Errorf("corrupt file status = %s, want %s", s.Status(), StatusFormatError)
	}
}

func TestFileStoreVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte("[meta]\nversion = v2.0.0\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	s := OpenFile(path)
	if s.Status() != StatusFormatError {
		t.Errorf("major version mismatch status = %s, want %s", s.Status(), StatusFormatError)
	}
}

func TestFileStoreSyncWritesVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	s := OpenFile(path)
	s.Set("k", "v")
	if err := s.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	r := OpenFile(path)
	if r.Status() != StatusOK {
		t.Errorf("same-version reopen status = %s", r.Status())
	}
}

func TestFileStoreAllKeysExcludesMeta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	s := OpenFile(path)
	s.Set("a", 1)
	s.Set("group/b", 2)
	if err := s.Sync(); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	keys := OpenFile(path).AllKeys()
	want := []string{"a", "group/b"}
	if len(keys) != len(want) {
		t.Fatalf("AllKeys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("AllKeys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestFileStoreSyncFailure(t *testing.T) {
	dir := t.TempDir()
	s := OpenFile(dir) // a directory path cannot be written as a file
	s.Set("k", "v")
	if err := s.Sync(); err == nil {
		t.Fatal("expected Sync error when target is a directory")
	}
	if s.Status() != StatusAccessError {
		t.Errorf("status after failed Sync = %s, want %s", s.Status(), StatusAccessError)
	}
}
