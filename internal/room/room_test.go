package room

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestWallExtents(t *testing.T) {
	r := Default()
	tests := []struct {
		side       Side
		wantWidth  float32
		wantHeight float32
	}{
		{SideBack, r.Width, r.Height},
		{SideFront, r.Width, r.Height},
		{SideLeft, r.Depth, r.Height},
		{SideRight, r.Depth, r.Height},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			w, h := r.Wall(tt.side).Extent()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("extent = %vx%v, want %vx%v", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestWallTransformPlanes(t *testing.T) {
	r := Default()
	// The anchor (0,0) is every wall's midpoint: world Y = Height/2, and the
	// fixed axis sits one inset inside the structural wall.
	tests := []struct {
		side Side
		want [3]float32
	}{
		{SideBack, [3]float32{0, 4, -7.2}},
		{SideFront, [3]float32{0, 4, 7.2}},
		{SideLeft, [3]float32{-7.2, 4, 0}},
		{SideRight, [3]float32{7.2, 4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			if got := r.Wall(tt.side).Transform(0, 0); got != tt.want {
				t.Errorf("Transform(0,0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWallTransformVerticalAxisIsWorldY(t *testing.T) {
	r := Default()
	for _, w := range r.Walls() {
		lo := w.Transform(0, -1)
		hi := w.Transform(0, 1)
		if hi[1]-lo[1] != 2 {
			t.Errorf("wall %v: wall-local y must map 1:1 onto world Y", w.Side)
		}
	}
}

func TestWallYawFacesIntoRoom(t *testing.T) {
	r := Default()
	for _, w := range r.Walls() {
		// Facing direction for yaw about Y with +Z forward at yaw 0.
		dir := [3]float32{math32.Sin(w.Yaw()), 0, math32.Cos(w.Yaw())}
		pos := w.Transform(0, 0)
		// Stepping from the wall along its facing direction must move toward
		// the room center.
		stepped := [3]float32{pos[0] + dir[0], pos[1], pos[2] + dir[2]}
		if abs(stepped[0])+abs(stepped[2]) >= abs(pos[0])+abs(pos[2]) {
			t.Errorf("wall %v: yaw %v does not face into the room", w.Side, w.Yaw())
		}
	}
}

func TestNavBoundsInsideRoom(t *testing.T) {
	r := Default()
	b := r.NavBounds()
	if b.MinX <= -r.Width/2 || b.MaxX >= r.Width/2 {
		t.Error("nav bounds must sit strictly inside the walls on X")
	}
	if b.MinZ <= -r.Depth/2 || b.MaxZ >= r.Depth/2 {
		t.Error("nav bounds must sit strictly inside the walls on Z")
	}
	if b.MinY <= 0 || b.MaxY >= r.Height {
		t.Error("nav bounds must sit strictly between floor and ceiling")
	}
}

func TestBoundsApplyPartial(t *testing.T) {
	b := Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1, MinZ: -1, MaxZ: 1}
	v := float32(5)
	b.Apply(BoundsPatch{MaxX: &v, MinZ: &v})
	want := Bounds{MinX: -1, MaxX: 5, MinY: -1, MaxY: 1, MinZ: 5, MaxZ: 1}
	if b != want {
		t.Errorf("Apply = %+v, want %+v", b, want)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinX: -1, MaxX: 1, MinY: 0, MaxY: 2, MinZ: -1, MaxZ: 1}
	got := b.Clamp([3]float32{-5, 5, 0.5})
	want := [3]float32{-1, 2, 0.5}
	if got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
