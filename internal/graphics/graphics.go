package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// targetFPS fixes the tick cadence. The camera integrator uses per-tick units,
// so this is also what the movement constants are tuned against.
const targetFPS = 60

// TickSeconds is the nominal duration of one tick at the target frame rate,
// for callers that advance clocks (e.g. screen loops) per tick.
const TickSeconds = float32(1.0 / targetFPS)

// windowedW/H are the window dimensions when not fullscreen.
const (
	windowedW = 1600
	windowedH = 900
)

// Run opens the window and drives the main loop: update (input polling, camera
// tick, screen loops), then clear, then draw. Returns when the window closes.
// ESC is left to the input layer (it releases pointer capture); the window
// closes via its close button.
func Run(title string, windowed bool, update, draw func()) {
	if windowed {
		rl.InitWindow(windowedW, windowedH, title)
	} else {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC releases capture, it must not quit
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
