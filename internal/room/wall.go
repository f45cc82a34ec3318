package room

import "github.com/chewxy/math32"

// Side identifies one of the four vertical walls. Front/back are the walls at
// +Z/-Z; left/right are the walls at -X/+X.
type Side int

const (
	SideBack Side = iota // wall at -Z, faces +Z
	SideFront            // wall at +Z, faces -Z
	SideLeft             // wall at -X, faces +X
	SideRight            // wall at +X, faces -X
)

// String returns the lowercase side name, e.g. for log lines and glTF node names.
func (s Side) String() string {
	switch s {
	case SideBack:
		return "back"
	case SideFront:
		return "front"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Wall is one vertical wall plane of a room. Anchors on a wall are 2D points in
// wall-local coordinates: x runs along the wall's horizontal axis, y is vertical,
// and (0,0) is the wall's midpoint. Walls are fixed for the room's lifetime.
type Wall struct {
	Side Side
	room Room
}

// Extent returns the wall's usable 2D extent (horizontal x vertical).
// Front/back walls span the room width; left/right walls span the room depth.
// All walls share the room height.
func (w Wall) Extent() (width, height float32) {
	switch w.Side {
	case SideBack, SideFront:
		return w.room.Width, w.room.Height
	default:
		return w.room.Depth, w.room.Height
	}
}

// Yaw returns the rotation about Y (radians) that turns an object whose front
// faces +Z at yaw 0 so it faces into the room when mounted on this wall.
func (w Wall) Yaw() float32 {
	switch w.Side {
	case SideBack:
		return 0
	case SideFront:
		return math32.Pi
	case SideLeft:
		return math32.Pi / 2
	default:
		return -math32.Pi / 2
	}
}

// Transform converts a wall-local anchor to a world position on the wall plane,
// inset into the room by the room's WallInset. The wall's vertical axis always
// maps to world Y; the horizontal axis maps to world X for front/back walls and
// to world Z for left/right walls, with the remaining axis fixed by the wall.
func (w Wall) Transform(x, y float32) [3]float32 {
	worldY := w.room.Height/2 + y
	switch w.Side {
	case SideBack:
		return [3]float32{x, worldY, -w.room.Depth/2 + w.room.WallInset}
	case SideFront:
		// Mirror X so wall-local +x reads left-to-right when viewed from inside.
		return [3]float32{-x, worldY, w.room.Depth/2 - w.room.WallInset}
	case SideLeft:
		return [3]float32{-w.room.Width/2 + w.room.WallInset, worldY, -x}
	default:
		return [3]float32{w.room.Width/2 - w.room.WallInset, worldY, x}
	}
}
