// Package config loads the gallery configuration from a TOML file. Missing
// file means defaults; a malformed file is an error so a typo never silently
// produces a default gallery.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the gallery config is looked up when no --config flag
// is given, relative to the process working directory.
const DefaultPath = "config/gallery.toml"

// Room dimensions and wall inset.
type Room struct {
	Width     float32 `toml:"width"`
	Depth     float32 `toml:"depth"`
	Height    float32 `toml:"height"`
	WallInset float32 `toml:"wall_inset"`
}

// Layout controls the wall packer.
type Layout struct {
	PerWallTarget   int     `toml:"per_wall_target"`
	AttemptsPerWall int     `toml:"attempts_per_wall"`
	SampleRetries   int     `toml:"sample_retries"`
	StaggerStep     float32 `toml:"stagger_step"`
}

// Nav controls first-person movement. All rates are per tick at the fixed
// target frame rate.
type Nav struct {
	Acceleration float32 `toml:"acceleration"`
	MaxSpeed     float32 `toml:"max_speed"`
	Friction     float32 `toml:"friction"`
	Sensitivity  float32 `toml:"sensitivity"`
	EyeHeight    float32 `toml:"eye_height"`
}

// Video controls the procedural screen loops.
type Video struct {
	FrameCount int     `toml:"frame_count"`
	FrameRate  float32 `toml:"frame_rate"`
	Resolution int     `toml:"resolution"`
}

// Config is the full gallery configuration.
type Config struct {
	Room   Room   `toml:"room"`
	Layout Layout `toml:"layout"`
	Nav    Nav    `toml:"nav"`
	Video  Video  `toml:"video"`
}

// Default returns the standard gallery: 15x15x8 room, 10 exhibits per wall
// with a 100-attempt budget, and movement tuned for 60 ticks per second.
func Default() Config {
	return Config{
		Room:   Room{Width: 15, Depth: 15, Height: 8, WallInset: 0.3},
		Layout: Layout{PerWallTarget: 10, AttemptsPerWall: 100, SampleRetries: 20, StaggerStep: 0.35},
		Nav:    Nav{Acceleration: 0.012, MaxSpeed: 0.08, Friction: 0.95, Sensitivity: 0.0025, EyeHeight: 1.7},
		Video:  Video{FrameCount: 24, FrameRate: 12, Resolution: 64},
	}
}

// Load reads the config at path. A missing file returns Default(); any other
// read or parse failure is an error. Unset fields fall back to their defaults
// so a partial file only overrides what it names.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
