// Package video provides the looping screen content the televisions play.
// There is no codec here: each loop is a short procedurally generated frame
// sequence (static, color bars, or a checker test card) cycled at a fixed
// frame rate. Frames are tiny textures, one set per TV, so forty screens can
// run out of sync without sharing state.
package video

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidLoop is returned by Start when the loop was built with unusable
// parameters and can produce no frames.
var ErrInvalidLoop = errors.New("video: invalid loop parameters")

// Style selects the kind of procedural screen content a loop shows.
type Style int

const (
	StyleStatic Style = iota // white-noise snow
	StyleBars                // rolling vertical color bars
	StyleChecker             // alternating checker test card
)

// StyleCount is the number of styles a factory can draw from.
const StyleCount = 3

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case StyleStatic:
		return "static"
	case StyleBars:
		return "bars"
	case StyleChecker:
		return "checker"
	}
	return "unknown"
}

// barPalette is the color-bar test pattern, brightest to darkest.
var barPalette = []rl.Color{
	{R: 192, G: 192, B: 192, A: 255},
	{R: 192, G: 192, B: 0, A: 255},
	{R: 0, G: 192, B: 192, A: 255},
	{R: 0, G: 192, B: 0, A: 255},
	{R: 192, G: 0, B: 192, A: 255},
	{R: 192, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 192, A: 255},
}

// Loop is one television's screen content: a fixed frame sequence played back
// on repeat after a staggered start delay. GPU resources are created lazily on
// the first Texture call so loops can be built before the window exists, and
// are released by Stop.
type Loop struct {
	style      Style
	frameCount int
	frameRate  float32
	resolution int

	frames  []rl.Texture2D
	loaded  bool
	started bool
	delay   float32
	clock   float32
}

// NewLoop returns a loop with the given style, frame count, playback rate
// (frames per second), and square frame resolution in pixels. The loop holds
// no GPU resources until its texture is first requested.
func NewLoop(style Style, frameCount int, frameRate float32, resolution int) *Loop {
	return &Loop{style: style, frameCount: frameCount, frameRate: frameRate, resolution: resolution}
}

// Start schedules playback to begin after delay seconds. Returns
// ErrInvalidLoop if the loop can produce no frames; the screen then stays
// dark but the television remains on the wall.
func (l *Loop) Start(delay float32) error {
	if l.frameCount <= 0 || l.resolution <= 0 || l.frameRate <= 0 {
		return fmt.Errorf("%w: frames=%d rate=%v res=%d", ErrInvalidLoop, l.frameCount, l.frameRate, l.resolution)
	}
	l.started = true
	l.delay = delay
	l.clock = 0
	return nil
}

// Stop releases the loop's GPU textures and halts playback. Idempotent; also
// the disposal path for candidates the layout rejected before they ever drew.
func (l *Loop) Stop() {
	l.started = false
	if !l.loaded {
		return
	}
	for _, t := range l.frames {
		rl.UnloadTexture(t)
	}
	l.frames = nil
	l.loaded = false
}

// Update advances the playback clock by dt seconds.
func (l *Loop) Update(dt float32) {
	if l.started {
		l.clock += dt
	}
}

// Playing reports whether the loop has started and its stagger delay has
// elapsed.
func (l *Loop) Playing() bool {
	return l.started && l.clock >= l.delay
}

// Texture returns the current frame texture. The second result is false while
// the loop is not yet playing (not started, invalid, or still inside its
// stagger delay); the caller should draw a dark screen then. Must be called
// with a live window, since the first call uploads the frames to the GPU.
func (l *Loop) Texture() (rl.Texture2D, bool) {
	if !l.Playing() {
		return rl.Texture2D{}, false
	}
	l.ensureLoaded()
	if !l.loaded {
		return rl.Texture2D{}, false
	}
	idx := int((l.clock-l.delay)*l.frameRate) % len(l.frames)
	return l.frames[idx], true
}

// ensureLoaded generates and uploads the frame sequence on first use, after
// the window and GL context exist.
func (l *Loop) ensureLoaded() {
	if l.loaded || l.frameCount <= 0 || l.resolution <= 0 {
		return
	}
	l.frames = make([]rl.Texture2D, 0, l.frameCount)
	for i := 0; i < l.frameCount; i++ {
		img := l.renderFrame(i)
		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		l.frames = append(l.frames, tex)
	}
	l.loaded = true
}

// renderFrame builds one CPU-side frame image for the loop's style.
func (l *Loop) renderFrame(i int) *rl.Image {
	res := int32(l.resolution)
	switch l.style {
	case StyleBars:
		img := rl.GenImageColor(int(res), int(res), rl.Black)
		barW := l.resolution / len(barPalette)
		if barW < 1 {
			barW = 1
		}
		// Bars roll one bar width per frame.
		for b := 0; b < len(barPalette)+1; b++ {
			x := (b*barW + i*barW) % (l.resolution + barW)
			rl.ImageDrawRectangle(img, int32(x-barW), 0, int32(barW), res, barPalette[b%len(barPalette)])
		}
		return img
	case StyleChecker:
		cell := l.resolution / 8
		if cell < 1 {
			cell = 1
		}
		a, b := rl.DarkGray, rl.RayWhite
		if i%2 == 1 {
			a, b = b, a
		}
		return rl.GenImageChecked(int(res), int(res), cell, cell, a, b)
	default:
		return rl.GenImageWhiteNoise(int(res), int(res), 0.5)
	}
}
