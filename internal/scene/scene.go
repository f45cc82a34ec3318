// Package scene owns the 3D view of the gallery: the perspective camera, the
// room shell, and the placed televisions. The camera is driven from outside
// (the navigation controller); the scene only renders.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tv-gallery/internal/layout"
	"tv-gallery/internal/lighting"
	"tv-gallery/internal/room"
	"tv-gallery/internal/tv"
)

// shellThickness is how thick the room shell slabs are drawn. Anything works
// visually; bounds keep the camera inside, so the shell is never seen edge-on.
const shellThickness = 0.2

// galleryLightDir is the fixed direction to the light, roughly a ceiling lamp
// off room center.
var galleryLightDir = [3]float32{0.25, 1, 0.35}

var (
	wallColor    = rl.NewColor(168, 158, 142, 255)
	floorColor   = rl.NewColor(96, 78, 60, 255)
	ceilingColor = rl.NewColor(120, 114, 104, 255)
)

// Scene holds the camera and everything drawn in 3D mode. GPU resources are
// created lazily on first Draw, after the window and GL context exist.
type Scene struct {
	Camera rl.Camera3D

	room   room.Room
	placed []layout.Placed
	tvs    *tv.Renderer

	ready   bool
	box     rl.Mesh
	wall    rl.Material
	floor   rl.Material
	ceiling rl.Material
}

// New returns a scene showing the given room and placed exhibits. The camera
// starts at the room center at eye height, looking down +Z; Sync overwrites
// both every frame once navigation runs.
func New(r room.Room, placed []layout.Placed, eyeHeight float32) *Scene {
	s := &Scene{room: r, placed: placed, tvs: tv.NewRenderer()}
	s.Camera.Position = rl.NewVector3(0, eyeHeight, 0)
	s.Camera.Target = rl.NewVector3(0, eyeHeight, 1)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 70
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Placed returns the exhibits the scene draws.
func (s *Scene) Placed() []layout.Placed { return s.placed }

// Sync points the camera at the navigation pose: position plus unit view
// direction. Call once per frame after the controller ticks.
func (s *Scene) Sync(pos, dir [3]float32) {
	s.Camera.Position = rl.NewVector3(pos[0], pos[1], pos[2])
	s.Camera.Target = rl.NewVector3(pos[0]+dir[0], pos[1]+dir[1], pos[2]+dir[2])
}

// Update advances every television's screen loop by dt seconds.
func (s *Scene) Update(dt float32) {
	for _, p := range s.placed {
		if t, ok := p.Spec.Payload.(*tv.TV); ok {
			t.Update(dt)
		}
	}
}

// ensureLoaded creates the shell mesh and lit materials on first draw.
func (s *Scene) ensureLoaded() {
	if s.ready {
		return
	}
	s.box = rl.GenMeshCube(1, 1, 1)
	s.wall = litMaterial(wallColor)
	s.floor = litMaterial(floorColor)
	s.ceiling = litMaterial(ceilingColor)
	s.ready = true
}

func litMaterial(c rl.Color) rl.Material {
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	if shader := lighting.LoadShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	return mtl
}

// Draw renders the room shell and all televisions between BeginMode3D and
// EndMode3D. Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw() {
	s.ensureLoaded()

	viewPos := [3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}
	s.tvs.SetView(viewPos, galleryLightDir)

	rl.BeginMode3D(s.Camera)
	s.drawShell(viewPos)
	for _, p := range s.placed {
		s.tvs.Draw(p)
	}
	rl.EndMode3D()
}

// drawShell draws floor, ceiling, and the four structural walls as lit slabs.
func (s *Scene) drawShell(viewPos [3]float32) {
	r := s.room
	w, d, h := r.Width, r.Depth, r.Height

	for _, mtl := range []rl.Material{s.wall, s.floor, s.ceiling} {
		lighting.SetUniforms(mtl.Shader, viewPos, galleryLightDir)
	}

	draw := func(mtl rl.Material, pos, size [3]float32) {
		m := rl.MatrixMultiply(
			rl.MatrixScale(size[0], size[1], size[2]),
			rl.MatrixTranslate(pos[0], pos[1], pos[2]),
		)
		rl.DrawMesh(s.box, mtl, m)
	}

	draw(s.floor, [3]float32{0, -shellThickness / 2, 0}, [3]float32{w, shellThickness, d})
	draw(s.ceiling, [3]float32{0, h + shellThickness/2, 0}, [3]float32{w, shellThickness, d})
	draw(s.wall, [3]float32{0, h / 2, -d/2 - shellThickness/2}, [3]float32{w, h, shellThickness})
	draw(s.wall, [3]float32{0, h / 2, d/2 + shellThickness/2}, [3]float32{w, h, shellThickness})
	draw(s.wall, [3]float32{-w/2 - shellThickness/2, h / 2, 0}, [3]float32{shellThickness, h, d})
	draw(s.wall, [3]float32{w/2 + shellThickness/2, h / 2, 0}, [3]float32{shellThickness, h, d})
}
