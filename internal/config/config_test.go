package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file: got %+v, want defaults", cfg)
	}
}

func TestLoadPartialFileKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.toml")
	body := "[layout]\nper_wall_target = 4\n\n[nav]\nfriction = 0.9\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.PerWallTarget != 4 {
		t.Errorf("per_wall_target = %d, want 4", cfg.Layout.PerWallTarget)
	}
	if cfg.Nav.Friction != 0.9 {
		t.Errorf("friction = %v, want 0.9", cfg.Nav.Friction)
	}
	if cfg.Room != Default().Room {
		t.Errorf("room section changed by unrelated overrides: %+v", cfg.Room)
	}
	if cfg.Layout.AttemptsPerWall != Default().Layout.AttemptsPerWall {
		t.Errorf("attempts_per_wall lost its default: %d", cfg.Layout.AttemptsPerWall)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.toml")
	if err := os.WriteFile(path, []byte("[room\nwidth = oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed TOML must be an error, not silent defaults")
	}
}
