package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the prefs file location, relative to the process working directory.
const Path = "config/prefs.json"

// Prefs holds viewer preferences persisted across runs (overlay toggles,
// window mode, the last seed used). Gallery layout itself is never persisted;
// a seed is enough to reproduce it.
type Prefs struct {
	ShowFPS      bool  `json:"show_fps"`
	ShowMemAlloc bool  `json:"show_memalloc"`
	Windowed     bool  `json:"windowed"`
	LastSeed     int64 `json:"last_seed,omitempty"`
}

// Default returns default preferences: overlays off, fullscreen.
func Default() Prefs {
	return Prefs{}
}

// Load reads preferences from the prefs file. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to the prefs file, creating the config directory if
// needed.
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
