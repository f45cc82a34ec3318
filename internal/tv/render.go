package tv

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tv-gallery/internal/layout"
	"tv-gallery/internal/lighting"
)

const (
	// cabinetDepth is the unscaled cabinet depth; the screen slab sits just
	// proud of the front face so it never z-fights the cabinet.
	cabinetDepth    = 0.55
	screenInsetW    = 0.78 // screen width as a fraction of cabinet width
	screenInsetH    = 0.62 // screen height as a fraction of cabinet height
	screenThickness = 0.02
	screenProud     = 0.012
)

// screenOffColor is the dark glass of a TV that isn't playing.
var screenOffColor = rl.NewColor(14, 16, 14, 255)

// Renderer draws televisions. Meshes, materials, and the lit shader are
// created lazily on first draw so the renderer can be built before the window
// and GL context exist.
type Renderer struct {
	ready     bool
	box       rl.Mesh
	cabinet   rl.Material
	screenOn  rl.Material
	screenOff rl.Material

	viewPos  [3]float32
	lightDir [3]float32
}

// NewRenderer returns a renderer with no GPU resources yet.
func NewRenderer() *Renderer {
	return &Renderer{lightDir: [3]float32{0.3, 1, 0.4}}
}

// SetView sets the camera position and direction-to-light for this frame so
// cabinets get correct shading. Call once per frame before drawing.
func (r *Renderer) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// ensureLoaded creates the shared unit box mesh and the three materials.
// Cabinets use the lit shader; screens use raylib's default (effectively
// unlit) material so a playing screen glows regardless of room lighting.
func (r *Renderer) ensureLoaded() {
	if r.ready {
		return
	}
	r.box = rl.GenMeshCube(1, 1, 1)

	r.cabinet = rl.LoadMaterialDefault()
	if shader := lighting.LoadShader(); rl.IsShaderValid(shader) {
		r.cabinet.Shader = shader
	}

	r.screenOn = rl.LoadMaterialDefault()
	if albedo := r.screenOn.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}

	r.screenOff = rl.LoadMaterialDefault()
	if albedo := r.screenOff.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = screenOffColor
	}

	r.ready = true
}

// Draw renders one placed television: cabinet box plus screen slab, oriented
// by the placement yaw. Must be called between BeginMode3D and EndMode3D.
// Non-TV payloads are skipped.
func (r *Renderer) Draw(p layout.Placed) {
	t, ok := p.Spec.Payload.(*TV)
	if !ok {
		return
	}
	r.ensureLoaded()

	depth := cabinetDepth * p.Scale
	rot := rl.MatrixRotateY(p.Yaw)
	trans := rl.MatrixTranslate(p.Position[0], p.Position[1], p.Position[2])
	place := rl.MatrixMultiply(rot, trans)

	if albedo := r.cabinet.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = t.Cabinet
	}
	lighting.SetUniforms(r.cabinet.Shader, r.viewPos, r.lightDir)
	cab := rl.MatrixMultiply(rl.MatrixScale(p.Spec.Width, p.Spec.Height, depth), place)
	rl.DrawMesh(r.box, r.cabinet, cab)

	// Screen slab on the cabinet's front face (+Z in model space, which the
	// yaw turns into the room).
	screenScale := rl.MatrixScale(p.Spec.Width*screenInsetW, p.Spec.Height*screenInsetH, screenThickness)
	screenOffset := rl.MatrixTranslate(0, 0, depth/2+screenProud)
	screen := rl.MatrixMultiply(rl.MatrixMultiply(screenScale, screenOffset), place)

	if tex, playing := t.Screen.Texture(); playing {
		rl.SetMaterialTexture(&r.screenOn, rl.MapAlbedo, tex)
		rl.DrawMesh(r.box, r.screenOn, screen)
	} else {
		rl.DrawMesh(r.box, r.screenOff, screen)
	}
}
