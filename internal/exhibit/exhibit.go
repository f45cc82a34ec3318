// Package exhibit defines the exhibit contract between the wall layout builder
// and the things it hangs on walls. The layout side only sees a footprint
// (width x height in wall-local units) and a lifecycle; what an exhibit looks
// like is the payload's business.
package exhibit

import (
	"math/rand"

	"github.com/google/uuid"
)

// Class is a discrete exhibit size category. The class fixes both the wall
// footprint the placer packs with and the uniform render scale, so the two can
// never drift apart.
type Class int

const (
	ClassSmall Class = iota
	ClassMedium
	ClassLarge
)

// classCount is the number of size classes RandomClass draws from.
const classCount = 3

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case ClassSmall:
		return "small"
	case ClassMedium:
		return "medium"
	case ClassLarge:
		return "large"
	}
	return "unknown"
}

// Footprint returns the wall-local width and height a member of this class
// occupies. These are the sizes the placer packs with.
func (c Class) Footprint() (width, height float32) {
	switch c {
	case ClassSmall:
		return 1.0, 0.8
	case ClassMedium:
		return 1.6, 1.2
	default:
		return 2.4, 1.8
	}
}

// Scale returns the uniform render scale factor for this class.
func (c Class) Scale() float32 {
	switch c {
	case ClassSmall:
		return 0.8
	case ClassMedium:
		return 1.0
	default:
		return 1.4
	}
}

// RandomClass draws a class uniformly from the given source.
func RandomClass(rng *rand.Rand) Class {
	return Class(rng.Intn(classCount))
}

// Payload is the visual side of an exhibit. Activate starts whatever the
// payload plays (e.g. a screen loop) after the given delay in seconds; it is
// called once per placed exhibit, after layout completes. Deactivate releases
// the payload's resources and is also called on candidates the placer rejected,
// so a discarded attempt never leaks a playback resource.
type Payload interface {
	Activate(delay float32) error
	Deactivate()
}

// Spec is a candidate to place: a footprint plus an opaque payload. Specs are
// created by a Factory before placement is attempted, so a Spec may well end up
// discarded.
type Spec struct {
	ID      uuid.UUID
	Class   Class
	Width   float32
	Height  float32
	Payload Payload
}

// Factory produces exhibit candidates. New draws size and styling from rng so a
// seeded source reproduces the same stream of candidates.
type Factory interface {
	New(rng *rand.Rand) Spec
}
