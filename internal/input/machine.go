// Package input tracks the pointer-capture lifecycle and low-level key state.
// The Machine only ever sees normalized signals (key pressed/released, pointer
// delta, capture granted/revoked); mapping host events onto those signals is
// the adapter's job, so the core never touches host event types.
package input

import "errors"

// ErrCaptureRejected is recorded when the host denies a capture request. The
// machine stays Released; movement and look remain disabled until the user
// retries.
var ErrCaptureRejected = errors.New("input: pointer capture rejected by host")

// State is the pointer-capture state.
type State int

const (
	// Released: the cursor is free; pointer deltas are ignored.
	Released State = iota
	// Captured: the cursor is exclusively captured; motion arrives as relative
	// deltas and feeds the camera.
	Captured
)

// Key is a normalized movement key, decoupled from host key codes.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Machine owns capture state, the held-key set, and the pointer delta
// accumulated since the last consume. It is driven by one logical thread:
// listeners write signals in, the camera tick reads state out.
type Machine struct {
	state   State
	held    map[Key]bool
	dx, dy  float32
	lastErr error
}

// NewMachine returns a machine in Released with no keys held.
func NewMachine() *Machine {
	return &Machine{held: make(map[Key]bool)}
}

// State returns the current capture state.
func (m *Machine) State() State { return m.state }

// Captured reports whether the pointer is currently captured.
func (m *Machine) Captured() bool { return m.state == Captured }

// LastErr returns the most recent capture rejection, or nil. Cleared by a
// successful grant.
func (m *Machine) LastErr() error { return m.lastErr }

// KeyDown marks a key held. Key state is tracked regardless of capture state;
// whether it has any effect is the camera's call.
func (m *Machine) KeyDown(k Key) { m.held[k] = true }

// KeyUp marks a key released.
func (m *Machine) KeyUp(k Key) { delete(m.held, k) }

// Held reports whether a key is currently held.
func (m *Machine) Held(k Key) bool { return m.held[k] }

// PointerDelta accumulates relative pointer motion for the current frame.
// Ignored while Released.
func (m *Machine) PointerDelta(dx, dy float32) {
	if m.state != Captured {
		return
	}
	m.dx += dx
	m.dy += dy
}

// ConsumeDelta returns the accumulated pointer delta and resets it. Called once
// per tick by the camera.
func (m *Machine) ConsumeDelta() (dx, dy float32) {
	dx, dy = m.dx, m.dy
	m.dx, m.dy = 0, 0
	return dx, dy
}

// Granted transitions Released -> Captured after the host grants a capture
// request. A grant while already Captured is a no-op.
func (m *Machine) Granted() {
	m.state = Captured
	m.lastErr = nil
}

// Rejected records that the host denied a capture request. The machine remains
// Released.
func (m *Machine) Rejected() {
	m.lastErr = ErrCaptureRejected
}

// Release transitions to Released, whether host-initiated (capture revoked) or
// explicit. Releasing while already Released is a no-op and never an error.
// Any pending pointer delta is dropped so a stale delta can't turn the camera
// on the next capture.
func (m *Machine) Release() {
	m.state = Released
	m.dx, m.dy = 0, 0
}

// Close forces the machine to Released. Idempotent; safe to call during
// teardown regardless of state.
func (m *Machine) Close() {
	m.Release()
}
