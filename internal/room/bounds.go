package room

// Bounds is an axis-aligned box that confines a position. Each axis is clamped
// independently, so sliding along a wall works without collision response.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32
}

// BoundsPatch is a partial update to a Bounds: nil fields keep their current
// value. Patching bounds at runtime never resets position or velocity of
// whatever the bounds confine.
type BoundsPatch struct {
	MinX, MaxX *float32
	MinY, MaxY *float32
	MinZ, MaxZ *float32
}

// Apply overwrites the bounds fields for which the patch has non-nil values.
func (b *Bounds) Apply(p BoundsPatch) {
	if p.MinX != nil {
		b.MinX = *p.MinX
	}
	if p.MaxX != nil {
		b.MaxX = *p.MaxX
	}
	if p.MinY != nil {
		b.MinY = *p.MinY
	}
	if p.MaxY != nil {
		b.MaxY = *p.MaxY
	}
	if p.MinZ != nil {
		b.MinZ = *p.MinZ
	}
	if p.MaxZ != nil {
		b.MaxZ = *p.MaxZ
	}
}

// Clamp returns pos with each axis clamped into the box.
func (b Bounds) Clamp(pos [3]float32) [3]float32 {
	return [3]float32{
		clamp(pos[0], b.MinX, b.MaxX),
		clamp(pos[1], b.MinY, b.MaxY),
		clamp(pos[2], b.MinZ, b.MaxZ),
	}
}

// Contains reports whether pos lies inside the box (inclusive).
func (b Bounds) Contains(pos [3]float32) bool {
	return pos[0] >= b.MinX && pos[0] <= b.MaxX &&
		pos[1] >= b.MinY && pos[1] <= b.MaxY &&
		pos[2] >= b.MinZ && pos[2] <= b.MaxZ
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
