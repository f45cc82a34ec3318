// Package nav is the first-person camera controller: per tick it turns held
// keys into acceleration, integrates velocity with friction, clamps speed, and
// confines the position to the room bounds. Look rotation comes from relative
// pointer deltas with clamped pitch and unbounded yaw.
package nav

import (
	"github.com/chewxy/math32"

	"tv-gallery/internal/input"
	"tv-gallery/internal/room"
)

// Config holds the movement constants. Units are per tick: the integrator uses
// a fixed per-tick step rather than elapsed time, relying on the render loop's
// fixed target frame rate for a roughly constant cadence.
type Config struct {
	Acceleration float32 // velocity gained per tick per held direction
	MaxSpeed     float32 // velocity magnitude clamp
	Friction     float32 // per-tick velocity multiplier, < 1
	Sensitivity  float32 // radians of look rotation per pointer unit
}

// DefaultConfig returns movement constants tuned for a 15-unit room at 60
// ticks per second.
func DefaultConfig() Config {
	return Config{
		Acceleration: 0.012,
		MaxSpeed:     0.08,
		Friction:     0.95,
		Sensitivity:  0.0025,
	}
}

// pitchLimit keeps pitch short of +-pi/2 rotation extremes. Clamping prevents
// the camera rolling over the vertical; yaw is left unbounded and wraps through
// the trig functions.
const pitchLimit = math32.Pi / 2

// Controller owns the mutable navigation state: position, yaw, pitch, and
// velocity. It reads key and pointer state from the input machine each tick and
// is a no-op while the pointer is not captured.
type Controller struct {
	cfg    Config
	in     *input.Machine
	bounds room.Bounds

	pos   [3]float32
	vel   [3]float32
	yaw   float32
	pitch float32
}

// New returns a controller at the given starting position, confined to bounds.
func New(cfg Config, in *input.Machine, start [3]float32, bounds room.Bounds) *Controller {
	return &Controller{cfg: cfg, in: in, bounds: bounds, pos: bounds.Clamp(start)}
}

// Position returns the current camera position.
func (c *Controller) Position() [3]float32 { return c.pos }

// Velocity returns the current velocity.
func (c *Controller) Velocity() [3]float32 { return c.vel }

// Yaw returns the current yaw in radians (unbounded).
func (c *Controller) Yaw() float32 { return c.yaw }

// Pitch returns the current pitch in radians, always within [-pi/2, pi/2].
func (c *Controller) Pitch() float32 { return c.pitch }

// SetBounds applies a partial bounds update at runtime. Velocity and position
// are left alone; the position is pulled inside the new bounds on the next
// tick's clamp.
func (c *Controller) SetBounds(p room.BoundsPatch) {
	c.bounds.Apply(p)
}

// LookDir returns the unit view direction derived from yaw then pitch.
func (c *Controller) LookDir() [3]float32 {
	cp := math32.Cos(c.pitch)
	return [3]float32{
		math32.Sin(c.yaw) * cp,
		math32.Sin(c.pitch),
		math32.Cos(c.yaw) * cp,
	}
}

// Tick advances the camera one simulation step. Called once per rendered
// frame; does nothing while the pointer is not captured.
func (c *Controller) Tick() {
	if !c.in.Captured() {
		return
	}

	// Look: yaw then pitch, pitch clamped, yaw free.
	dx, dy := c.in.ConsumeDelta()
	c.yaw -= dx * c.cfg.Sensitivity
	c.pitch -= dy * c.cfg.Sensitivity
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}

	// Movement basis: forward and right projected onto the horizontal plane,
	// so looking up or down never changes horizontal travel speed.
	fwd := [3]float32{math32.Sin(c.yaw), 0, math32.Cos(c.yaw)}
	right := [3]float32{math32.Cos(c.yaw), 0, -math32.Sin(c.yaw)}

	var wish [3]float32
	if c.in.Held(input.KeyForward) {
		wish[0] += fwd[0]
		wish[2] += fwd[2]
	}
	if c.in.Held(input.KeyBack) {
		wish[0] -= fwd[0]
		wish[2] -= fwd[2]
	}
	if c.in.Held(input.KeyRight) {
		wish[0] += right[0]
		wish[2] += right[2]
	}
	if c.in.Held(input.KeyLeft) {
		wish[0] -= right[0]
		wish[2] -= right[2]
	}
	if c.in.Held(input.KeyUp) {
		wish[1]++
	}
	if c.in.Held(input.KeyDown) {
		wish[1]--
	}

	c.vel[0] += wish[0] * c.cfg.Acceleration
	c.vel[1] += wish[1] * c.cfg.Acceleration
	c.vel[2] += wish[2] * c.cfg.Acceleration

	// Clamp speed, then apply friction so velocity decays exponentially toward
	// rest once no key is held.
	if speed := math32.Sqrt(c.vel[0]*c.vel[0] + c.vel[1]*c.vel[1] + c.vel[2]*c.vel[2]); speed > c.cfg.MaxSpeed {
		k := c.cfg.MaxSpeed / speed
		c.vel[0] *= k
		c.vel[1] *= k
		c.vel[2] *= k
	}
	c.vel[0] *= c.cfg.Friction
	c.vel[1] *= c.cfg.Friction
	c.vel[2] *= c.cfg.Friction

	// Integrate and confine. Each axis clamps independently and a clamp does
	// not zero the velocity component: position, not velocity, is the rendered
	// state, so velocity may keep pushing against a wall.
	c.pos[0] += c.vel[0]
	c.pos[1] += c.vel[1]
	c.pos[2] += c.vel[2]
	c.pos = c.bounds.Clamp(c.pos)
}
