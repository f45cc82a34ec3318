package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay holds the runtime diagnostics drawn in the top-right corner: FPS,
// heap allocation, and a gallery status line (exhibit count, capture state).
// All overlays are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool

	exhibits int
	captured bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetStatus updates the gallery status shown when ShowStatus is on: how many
// exhibits were placed and whether the pointer is currently captured.
func (o *Overlay) SetStatus(exhibits int, captured bool) {
	o.exhibits = exhibits
	o.captured = captured
}

// Draw renders any enabled overlays. Call after the 3D scene in the draw loop.
// FPS and memory text are only recomputed every updateInterval frames.
func (o *Overlay) Draw() {
	o.frameCount++
	update := (o.frameCount % updateInterval) == 0
	if o.ShowFPS && o.lastFpsText == "" {
		update = true
	}
	if o.ShowMemAlloc && o.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if update {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(o.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if o.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&o.lastMemStats)
			mb := float64(o.lastMemStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(o.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if o.ShowStatus {
		state := "released"
		if o.captured {
			state = "captured"
		}
		drawRight(fmt.Sprintf("TVs: %d  pointer: %s", o.exhibits, state), screenW, y, rl.SkyBlue)
	}
}

// drawRight draws text right-aligned at the given baseline.
func drawRight(text string, screenW, y int32, col rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, col)
}
