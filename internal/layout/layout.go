package layout

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"tv-gallery/internal/exhibit"
	"tv-gallery/internal/room"
)

// Options controls the layout build.
// PerWallTarget is how many exhibits each wall aims to host. AttemptsPerWall is
// the shared per-wall attempt budget; every candidate drawn from the factory
// consumes one unit whether or not it ends up placed. SampleRetries is the
// placer's anchor-sampling budget for a single candidate. StaggerStep is the
// activation delay in seconds between consecutive placed exhibits.
type Options struct {
	PerWallTarget   int
	AttemptsPerWall int
	SampleRetries   int
	StaggerStep     float32
}

// DefaultOptions returns the standard gallery build: 10 exhibits per wall,
// 100 attempts per wall, 20 anchor samples per candidate, 0.35s stagger.
func DefaultOptions() Options {
	return Options{
		PerWallTarget:   10,
		AttemptsPerWall: 100,
		SampleRetries:   20,
		StaggerStep:     0.35,
	}
}

// Placed is an exhibit bound to a wall anchor, with its derived world
// transform. Created only after the placer accepted a non-overlapping anchor.
type Placed struct {
	Spec     exhibit.Spec
	Wall     room.Wall
	Anchor   Anchor
	Position [3]float32
	Yaw      float32
	Scale    float32
}

// Build packs exhibits onto all four walls of the room and returns the placed
// exhibits in placement order.
//
// Each wall is handled independently: candidates are drawn from the factory one
// at a time and handed to the placer; a rejected candidate is deactivated so
// any playback resource its payload already allocated is released, and the next
// attempt draws a fresh candidate. There is no cross-candidate backtracking. A
// wall that exhausts its attempt budget before reaching the target simply hosts
// fewer exhibits; that is logged, not an error.
//
// After layout completes, every placed payload is activated with a delay
// proportional to its placement index so the screens don't all start in sync.
// Activation failures are logged and leave the exhibit visible but inert.
func Build(r room.Room, factory exhibit.Factory, opts Options, rng *rand.Rand, logger *log.Logger) []Placed {
	if logger == nil {
		logger = log.Default()
	}
	if opts.PerWallTarget <= 0 || opts.AttemptsPerWall <= 0 {
		return nil
	}
	if opts.SampleRetries <= 0 {
		opts.SampleRetries = DefaultOptions().SampleRetries
	}

	var placed []Placed
	for _, wall := range r.Walls() {
		w, h := wall.Extent()
		extent := Extent{Width: w, Height: h}
		var footprints []Footprint

		count := 0
		for attempt := 0; attempt < opts.AttemptsPerWall && count < opts.PerWallTarget; attempt++ {
			spec := factory.New(rng)
			size := Size{Width: spec.Width, Height: spec.Height}
			anchor, err := TryPlace(extent, footprints, size, opts.SampleRetries, rng)
			if err != nil {
				// Discarded attempt: release whatever the payload allocated.
				if spec.Payload != nil {
					spec.Payload.Deactivate()
				}
				continue
			}
			footprints = append(footprints, Footprint{Anchor: anchor, Size: size})
			placed = append(placed, Placed{
				Spec:     spec,
				Wall:     wall,
				Anchor:   anchor,
				Position: wall.Transform(anchor.X, anchor.Y),
				Yaw:      wall.Yaw(),
				Scale:    spec.Class.Scale(),
			})
			count++
		}
		if count < opts.PerWallTarget {
			logger.Warn("wall attempt budget exhausted",
				"wall", wall.Side, "placed", count, "target", opts.PerWallTarget)
		}
	}

	for i, p := range placed {
		if p.Spec.Payload == nil {
			continue
		}
		delay := float32(i) * opts.StaggerStep
		if err := p.Spec.Payload.Activate(delay); err != nil {
			logger.Warn("exhibit activation failed",
				"id", p.Spec.ID, "wall", p.Wall.Side, "err", err)
		}
	}
	return placed
}
