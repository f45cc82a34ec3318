package room

// Room is the immutable gallery interior: a single box of Width x Depth x Height
// world units. The floor sits at Y=0 and the room is centered on the origin in XZ,
// so X spans [-Width/2, Width/2] and Z spans [-Depth/2, Depth/2].
// WallInset is how far exhibit planes sit off the structural walls so cabinets
// never clip through them.
type Room struct {
	Width     float32
	Depth     float32
	Height    float32
	WallInset float32
}

// Default returns the standard gallery room: 15x15 floor, 8 high, 0.3 inset.
func Default() Room {
	return Room{Width: 15, Depth: 15, Height: 8, WallInset: 0.3}
}

// navMargin keeps the camera eye away from wall planes so near-plane clipping
// never shows the outside of the room.
const navMargin = 0.6

// NavBounds returns the axis-aligned box the camera position is confined to.
// Horizontal extents are inset by navMargin from the walls; vertical extents keep
// the eye between just above the floor and just under the ceiling.
func (r Room) NavBounds() Bounds {
	return Bounds{
		MinX: -r.Width/2 + navMargin,
		MaxX: r.Width/2 - navMargin,
		MinY: navMargin,
		MaxY: r.Height - navMargin,
		MinZ: -r.Depth/2 + navMargin,
		MaxZ: r.Depth/2 - navMargin,
	}
}

// Walls returns the four vertical walls in a fixed order (back, front, left, right).
// Order matters only for reproducibility: the layout builder walks walls in this
// order with a shared random source.
func (r Room) Walls() [4]Wall {
	return [4]Wall{
		{Side: SideBack, room: r},
		{Side: SideFront, room: r},
		{Side: SideLeft, room: r},
		{Side: SideRight, room: r},
	}
}

// Wall returns the wall for the given side.
func (r Room) Wall(s Side) Wall {
	return Wall{Side: s, room: r}
}
