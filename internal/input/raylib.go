package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBinding maps a raylib key to a normalized movement key. Two host keys may
// map to the same movement key (WASD + arrows).
type keyBinding struct {
	host int32
	key  Key
}

// bindings is the fixed key map: WASD/arrows to move, E/space up, Q/shift down.
var bindings = []keyBinding{
	{rl.KeyW, KeyForward},
	{rl.KeyUp, KeyForward},
	{rl.KeyS, KeyBack},
	{rl.KeyDown, KeyBack},
	{rl.KeyA, KeyLeft},
	{rl.KeyLeft, KeyLeft},
	{rl.KeyD, KeyRight},
	{rl.KeyRight, KeyRight},
	{rl.KeyE, KeyUp},
	{rl.KeySpace, KeyUp},
	{rl.KeyQ, KeyDown},
	{rl.KeyLeftShift, KeyDown},
}

// Adapter polls raylib input once per frame and feeds the machine normalized
// signals. A left click while Released requests capture (raylib grants cursor
// capture synchronously via DisableCursor); ESC releases it. The adapter owns
// the cursor lock so Close can always give the cursor back.
type Adapter struct {
	m *Machine
}

// NewAdapter wraps a machine with raylib polling.
func NewAdapter(m *Machine) *Adapter {
	return &Adapter{m: m}
}

// Poll reads host input for this frame. Key state is updated regardless of
// capture state; pointer deltas are only forwarded while captured.
func (a *Adapter) Poll() {
	for _, b := range bindings {
		if rl.IsKeyDown(b.host) {
			a.m.KeyDown(b.key)
		} else {
			a.m.KeyUp(b.key)
		}
	}

	switch a.m.State() {
	case Released:
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			rl.DisableCursor()
			a.m.Granted()
		}
	case Captured:
		if rl.IsKeyPressed(rl.KeyEscape) {
			rl.EnableCursor()
			a.m.Release()
			return
		}
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			a.m.PointerDelta(d.X, d.Y)
		}
	}
}

// Close releases the cursor lock if held and forces the machine to Released.
// Must run before the window closes so the desktop cursor comes back.
func (a *Adapter) Close() {
	if a.m.Captured() {
		rl.EnableCursor()
	}
	a.m.Close()
}
