// Package layout packs exhibits onto the four walls of a gallery room. The
// placer is a random greedy packer: it samples anchors uniformly and keeps the
// first one that overlaps nothing already on the wall. It trades packing
// optimality for constant per-candidate cost, accepting a probabilistic chance
// of under-filling a dense wall.
package layout

import (
	"errors"
	"math/rand"
)

// ErrNoFit is returned when the placer's attempt budget runs out before a
// non-overlapping anchor is found. Non-fatal: the wall simply hosts fewer
// exhibits.
var ErrNoFit = errors.New("layout: no non-overlapping anchor found")

// Extent is a wall's usable 2D extent, centered on the wall midpoint: legal
// anchor x values lie in [-Width/2, Width/2] shrunk by the candidate's
// half-width, and likewise for y.
type Extent struct {
	Width  float32
	Height float32
}

// Size is a candidate footprint's width and height in wall-local units.
type Size struct {
	Width  float32
	Height float32
}

// Anchor is the 2D center of a footprint in wall-local coordinates.
type Anchor struct {
	X float32
	Y float32
}

// Footprint is an axis-aligned rectangle an accepted exhibit occupies on a
// wall, centered at its anchor.
type Footprint struct {
	Anchor Anchor
	Size   Size
}

// Overlaps reports whether two footprints overlap. Two footprints are disjoint
// exactly when they are separated on at least one axis:
// |x1-x2| >= (w1+w2)/2 or |y1-y2| >= (h1+h2)/2.
func Overlaps(a, b Footprint) bool {
	dx := abs(a.Anchor.X - b.Anchor.X)
	dy := abs(a.Anchor.Y - b.Anchor.Y)
	return dx < (a.Size.Width+b.Size.Width)/2 && dy < (a.Size.Height+b.Size.Height)/2
}

// Fits reports whether a candidate of the given size at the given anchor
// overlaps none of the existing footprints.
func Fits(a Anchor, s Size, existing []Footprint) bool {
	cand := Footprint{Anchor: a, Size: s}
	for _, f := range existing {
		if Overlaps(cand, f) {
			return false
		}
	}
	return true
}

// TryPlace samples up to maxAttempts uniformly random anchors inside the legal
// region of the extent (half the candidate size in from each edge) and returns
// the first one whose footprint overlaps none of the existing footprints.
// Returns ErrNoFit when the budget is exhausted, including the degenerate case
// of a candidate larger than the extent, which can never fit and burns the
// whole budget. There is no backtracking: a failure leaves existing footprints
// untouched.
//
// With no existing footprints and a candidate that fits the extent, the first
// attempt always succeeds.
func TryPlace(extent Extent, existing []Footprint, size Size, maxAttempts int, rng *rand.Rand) (Anchor, error) {
	spanX := (extent.Width - size.Width) / 2
	spanY := (extent.Height - size.Height) / 2
	for i := 0; i < maxAttempts; i++ {
		if spanX < 0 || spanY < 0 {
			continue
		}
		a := Anchor{
			X: (rng.Float32()*2 - 1) * spanX,
			Y: (rng.Float32()*2 - 1) * spanY,
		}
		if Fits(a, size, existing) {
			return a, nil
		}
	}
	return Anchor{}, ErrNoFit
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
