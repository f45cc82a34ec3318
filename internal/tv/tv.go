// Package tv implements the vintage television exhibit: the payload the wall
// layout hangs, and the raylib rendering for its cabinet and screen.
package tv

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"tv-gallery/internal/exhibit"
	"tv-gallery/internal/video"
)

// cabinetPalette holds the wood-and-bakelite tones cabinets are drawn in.
var cabinetPalette = []rl.Color{
	{R: 92, G: 64, B: 40, A: 255},   // walnut
	{R: 120, G: 84, B: 52, A: 255},  // teak
	{R: 60, G: 56, B: 52, A: 255},   // charcoal
	{R: 140, G: 116, B: 84, A: 255}, // birch
	{R: 84, G: 44, B: 36, A: 255},   // mahogany
}

// TV is one television: a cabinet color, a size class, and a screen loop.
// It satisfies exhibit.Payload; activation starts the screen loop and
// deactivation releases it, whether the TV was placed or rejected.
type TV struct {
	Class   exhibit.Class
	Cabinet rl.Color
	Screen  *video.Loop
}

// Activate starts the screen loop after the given stagger delay.
func (t *TV) Activate(delay float32) error {
	if err := t.Screen.Start(delay); err != nil {
		return fmt.Errorf("tv %s screen: %w", t.Class, err)
	}
	return nil
}

// Deactivate stops the screen loop and releases its textures. Safe to call on
// a TV that never activated.
func (t *TV) Deactivate() {
	t.Screen.Stop()
}

// Update advances the screen loop clock. Called once per frame per TV.
func (t *TV) Update(dt float32) {
	t.Screen.Update(dt)
}

// Factory builds randomly sized and styled televisions. Size class, screen
// style, and cabinet color are drawn from the injected random source so a
// seed reproduces the same candidate stream.
type Factory struct {
	frameCount int
	frameRate  float32
	resolution int
}

// NewFactory returns a factory whose screens play loops of frameCount frames
// at frameRate fps, each frame resolution x resolution pixels.
func NewFactory(frameCount int, frameRate float32, resolution int) *Factory {
	return &Factory{frameCount: frameCount, frameRate: frameRate, resolution: resolution}
}

// New draws one television candidate. The candidate allocates its screen loop
// up front, so if placement fails the layout must deactivate it.
func (f *Factory) New(rng *rand.Rand) exhibit.Spec {
	class := exhibit.RandomClass(rng)
	w, h := class.Footprint()
	t := &TV{
		Class:   class,
		Cabinet: cabinetPalette[rng.Intn(len(cabinetPalette))],
		Screen:  video.NewLoop(video.Style(rng.Intn(video.StyleCount)), f.frameCount, f.frameRate, f.resolution),
	}
	return exhibit.Spec{
		ID:      uuid.New(),
		Class:   class,
		Width:   w,
		Height:  h,
		Payload: t,
	}
}
