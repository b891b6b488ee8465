package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/markstorm/internal/engine/word"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Editor.WordBoundaryChars != word.DefaultBoundaryChars {
		t.Errorf("WordBoundaryChars = %q, want %q", s.Editor.WordBoundaryChars, word.DefaultBoundaryChars)
	}
	if s.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", s.Log.Level)
	}
}

func TestNewUsesDefaults(t *testing.T) {
	c := New()

	if got := c.BoundaryChars(); got != word.DefaultBoundaryChars {
		t.Errorf("BoundaryChars() = %q, want default", got)
	}
	if c.Keymap() == nil {
		t.Fatal("Keymap() = nil")
	}
	if _, ok := c.Keymap().Lookup("C-s"); !ok {
		t.Error("default keymap has no C-s binding")
	}
	if err := c.Reload(); err != nil {
		t.Errorf("Reload() on dir-less config = %v, want nil", err)
	}
}

func TestLoadMissingFilesFallBack(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := c.BoundaryChars(); got != word.DefaultBoundaryChars {
		t.Errorf("BoundaryChars() = %q, want default", got)
	}
	if _, ok := c.Keymap().Lookup("C-y"); !ok {
		t.Error("default keymap has no C-y binding")
	}
}

func TestLoadReadsSettings(t *testing.T) {
	dir := t.TempDir()
	content := "[editor]\nword_boundary_chars = \" \\\\t\\\\n_-\"\nscroll_margin = 5\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := c.BoundaryChars(); got != ` \t\n_-` {
		t.Errorf("BoundaryChars() = %q, want %q", got, ` \t\n_-`)
	}
	if got := c.Settings().Editor.ScrollMargin; got != 5 {
		t.Errorf("ScrollMargin = %d, want 5", got)
	}
	if got := c.Settings().Log.Level; got != "debug" {
		t.Errorf("Log.Level = %q, want debug", got)
	}
}

func TestLoadRejectsMalformedSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("[editor\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() with malformed TOML succeeded, want error")
	}
}

func TestReloadSeesNewBoundaryChars(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	content := "[editor]\nword_boundary_chars = \" .,\"\n"
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if got := c.BoundaryChars(); got != " .," {
		t.Errorf("BoundaryChars() after reload = %q, want %q", got, " .,")
	}
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	c := New()

	var got []Settings
	unsubscribe := c.Subscribe(func(s Settings) {
		got = append(got, s)
	})

	s := c.Settings()
	s.Editor.ScrollMargin = 9
	c.SetSettings(s)

	if len(got) != 1 || got[0].Editor.ScrollMargin != 9 {
		t.Fatalf("subscriber saw %v, want one notification with margin 9", got)
	}

	// Unchanged settings do not notify.
	c.SetSettings(s)
	if len(got) != 1 {
		t.Errorf("unchanged SetSettings notified, count = %d", len(got))
	}

	unsubscribe()
	s.Editor.ScrollMargin = 3
	c.SetSettings(s)
	if len(got) != 1 {
		t.Errorf("unsubscribed observer notified, count = %d", len(got))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := c.Settings()
	s.Editor.WordBoundaryChars = ` \t\n_()`
	c.SetSettings(s)
	if err := c.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	if got := reloaded.BoundaryChars(); got != ` \t\n_()` {
		t.Errorf("BoundaryChars() after round trip = %q, want %q", got, ` \t\n_()`)
	}
	if _, ok := reloaded.Keymap().Lookup("C-k"); !ok {
		t.Error("keymap lost across save/load round trip")
	}
}

func TestSaveWithoutDirFails(t *testing.T) {
	c := New()
	if err := c.Save(); err != ErrNoConfigDir {
		t.Errorf("Save() error = %v, want ErrNoConfigDir", err)
	}
}
