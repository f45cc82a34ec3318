package layout

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tv-gallery/internal/exhibit"
	"tv-gallery/internal/room"
)

// fakePayload records lifecycle calls so tests can verify that rejected
// candidates are disposed and placed ones are activated with staggered delays.
type fakePayload struct {
	activated   bool
	delay       float32
	deactivated int
	failOnce    bool
}

func (p *fakePayload) Activate(delay float32) error {
	if p.failOnce {
		p.failOnce = false
		return errors.New("fake activation failure")
	}
	p.activated = true
	p.delay = delay
	return nil
}

func (p *fakePayload) Deactivate() { p.deactivated++ }

// fakeFactory produces fixed-size candidates and keeps every payload it handed
// out so tests can audit the whole lifecycle.
type fakeFactory struct {
	width, height float32
	class         exhibit.Class
	payloads      []*fakePayload
	failFirst     bool
}

func (f *fakeFactory) New(rng *rand.Rand) exhibit.Spec {
	p := &fakePayload{failOnce: f.failFirst && len(f.payloads) == 0}
	f.payloads = append(f.payloads, p)
	return exhibit.Spec{
		ID:      uuid.New(),
		Class:   f.class,
		Width:   f.width,
		Height:  f.height,
		Payload: p,
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestBuildNoOverlapPerWall(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	f := &fakeFactory{width: 1.6, height: 1.2, class: exhibit.ClassMedium}
	placed := Build(room.Default(), f, DefaultOptions(), rng, quietLogger())
	if len(placed) == 0 {
		t.Fatal("expected placements in a default room")
	}

	byWall := make(map[room.Side][]Footprint)
	for _, p := range placed {
		byWall[p.Wall.Side] = append(byWall[p.Wall.Side], Footprint{
			Anchor: p.Anchor,
			Size:   Size{Width: p.Spec.Width, Height: p.Spec.Height},
		})
	}
	for side, fps := range byWall {
		for i := 0; i < len(fps); i++ {
			for j := i + 1; j < len(fps); j++ {
				if Overlaps(fps[i], fps[j]) {
					t.Errorf("wall %v: footprints %d and %d overlap", side, i, j)
				}
			}
		}
	}
}

func TestBuildRespectsPerWallTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	f := &fakeFactory{width: 1.0, height: 0.8, class: exhibit.ClassSmall}
	opts := DefaultOptions()
	opts.PerWallTarget = 3
	placed := Build(room.Default(), f, opts, rng, quietLogger())

	counts := make(map[room.Side]int)
	for _, p := range placed {
		counts[p.Wall.Side]++
	}
	for side, n := range counts {
		if n > opts.PerWallTarget {
			t.Errorf("wall %v hosts %d exhibits, target is %d", side, n, opts.PerWallTarget)
		}
	}
	// Small exhibits on a 15x8 wall comfortably hit a target of 3.
	if len(placed) != 4*opts.PerWallTarget {
		t.Errorf("placed %d exhibits, want %d", len(placed), 4*opts.PerWallTarget)
	}
}

func TestBuildOversizedCandidateYieldsNoPlacements(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	// Candidate bigger than any wall: every attempt fails, every payload must
	// still be disposed.
	f := &fakeFactory{width: 20, height: 10, class: exhibit.ClassLarge}
	opts := DefaultOptions()
	opts.AttemptsPerWall = 5
	placed := Build(room.Default(), f, opts, rng, quietLogger())
	if len(placed) != 0 {
		t.Fatalf("placed %d oversized exhibits, want 0", len(placed))
	}
	if len(f.payloads) != 4*opts.AttemptsPerWall {
		t.Fatalf("factory drew %d candidates, want %d (attempt budget per wall, all four walls)",
			len(f.payloads), 4*opts.AttemptsPerWall)
	}
	for i, p := range f.payloads {
		if p.deactivated != 1 {
			t.Errorf("rejected payload %d: deactivated %d times, want 1", i, p.deactivated)
		}
		if p.activated {
			t.Errorf("rejected payload %d was activated", i)
		}
	}
}

func TestBuildStaggersActivation(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	f := &fakeFactory{width: 1.0, height: 0.8, class: exhibit.ClassSmall}
	opts := DefaultOptions()
	opts.PerWallTarget = 2
	opts.StaggerStep = 0.5
	placed := Build(room.Default(), f, opts, rng, quietLogger())

	for i, p := range placed {
		fp, ok := p.Spec.Payload.(*fakePayload)
		if !ok {
			t.Fatal("unexpected payload type")
		}
		if !fp.activated {
			t.Fatalf("placed exhibit %d never activated", i)
		}
		want := float32(i) * opts.StaggerStep
		if fp.delay != want {
			t.Errorf("exhibit %d activation delay = %v, want %v", i, fp.delay, want)
		}
	}
}

func TestBuildActivationFailureIsNonFatal(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	f := &fakeFactory{width: 1.0, height: 0.8, class: exhibit.ClassSmall, failFirst: true}
	opts := DefaultOptions()
	opts.PerWallTarget = 2
	placed := Build(room.Default(), f, opts, rng, quietLogger())
	if len(placed) != 8 {
		t.Fatalf("placed %d exhibits, want 8; an activation failure must not drop the exhibit", len(placed))
	}
}

func TestBuildTransformsMatchWallPlanes(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	f := &fakeFactory{width: 1.0, height: 0.8, class: exhibit.ClassSmall}
	r := room.Default()
	placed := Build(r, f, DefaultOptions(), rng, quietLogger())

	for _, p := range placed {
		pos := p.Position
		switch p.Wall.Side {
		case room.SideBack:
			if want := -r.Depth/2 + r.WallInset; pos[2] != want {
				t.Errorf("back wall exhibit at Z=%v, want %v", pos[2], want)
			}
		case room.SideFront:
			if want := r.Depth/2 - r.WallInset; pos[2] != want {
				t.Errorf("front wall exhibit at Z=%v, want %v", pos[2], want)
			}
		case room.SideLeft:
			if want := -r.Width/2 + r.WallInset; pos[0] != want {
				t.Errorf("left wall exhibit at X=%v, want %v", pos[0], want)
			}
		case room.SideRight:
			if want := r.Width/2 - r.WallInset; pos[0] != want {
				t.Errorf("right wall exhibit at X=%v, want %v", pos[0], want)
			}
		}
		// Vertical anchor maps to world Y on every wall.
		if want := r.Height/2 + p.Anchor.Y; pos[1] != want {
			t.Errorf("wall %v: exhibit at Y=%v, want %v", p.Wall.Side, pos[1], want)
		}
		if p.Yaw != p.Wall.Yaw() {
			t.Errorf("wall %v: exhibit yaw %v, want wall yaw %v", p.Wall.Side, p.Yaw, p.Wall.Yaw())
		}
	}
}

func TestBuildDeterministicForSeed(t *testing.T) {
	build := func() []Placed {
		f := &fakeFactory{width: 1.6, height: 1.2, class: exhibit.ClassMedium}
		return Build(room.Default(), f, DefaultOptions(), rand.New(rand.NewSource(77)), quietLogger())
	}
	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("same seed produced %d vs %d placements", len(a), len(b))
	}
	for i := range a {
		if a[i].Anchor != b[i].Anchor || a[i].Wall.Side != b[i].Wall.Side {
			t.Fatalf("same seed diverged at placement %d: %+v vs %+v", i, a[i].Anchor, b[i].Anchor)
		}
	}
}
