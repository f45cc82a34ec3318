// Package export writes the built gallery layout as a glTF 2.0 document: one
// node for the room shell pieces and one per placed television, all sharing a
// unit box mesh. The export is geometry only (no screens, no materials); it
// exists so a layout can be inspected in any glTF viewer or pulled into a DCC
// tool.
package export

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"tv-gallery/internal/layout"
	"tv-gallery/internal/room"
)

// unit box centered on the origin, 1x1x1.
var (
	boxPositions = [][3]float32{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	boxIndices = []uint16{
		0, 2, 1, 0, 3, 2, // -Z
		4, 5, 6, 4, 6, 7, // +Z
		0, 1, 5, 0, 5, 4, // -Y
		3, 7, 6, 3, 6, 2, // +Y
		0, 4, 7, 0, 7, 3, // -X
		1, 2, 6, 1, 6, 5, // +X
	}
)

// cabinetDepth matches the renderer's unscaled cabinet depth so the exported
// boxes occupy the same volume the viewer sees.
const cabinetDepth = 0.55

// shellThickness matches the rendered room shell.
const shellThickness = 0.2

// Write saves the room shell and placed exhibits to path as glTF.
func Write(path string, r room.Room, placed []layout.Placed) error {
	doc := gltf.NewDocument()

	pos := modeler.WritePosition(doc, boxPositions)
	ind := modeler.WriteIndices(doc, boxIndices)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "unit-box",
		Primitives: []*gltf.Primitive{{
			Attributes: gltf.PrimitiveAttributes{gltf.POSITION: pos},
			Indices:    gltf.Index(ind),
		}},
	})
	mesh := len(doc.Meshes) - 1

	addNode := func(name string, translation, scale [3]float32, yaw float32) {
		half := yaw / 2
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        name,
			Mesh:        gltf.Index(mesh),
			Translation: [3]float64{float64(translation[0]), float64(translation[1]), float64(translation[2])},
			Rotation:    [4]float64{0, float64(math32.Sin(half)), 0, float64(math32.Cos(half))},
			Scale:       [3]float64{float64(scale[0]), float64(scale[1]), float64(scale[2])},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	w, d, h := r.Width, r.Depth, r.Height
	addNode("floor", [3]float32{0, -shellThickness / 2, 0}, [3]float32{w, shellThickness, d}, 0)
	addNode("ceiling", [3]float32{0, h + shellThickness/2, 0}, [3]float32{w, shellThickness, d}, 0)
	addNode("wall-back", [3]float32{0, h / 2, -d/2 - shellThickness/2}, [3]float32{w, h, shellThickness}, 0)
	addNode("wall-front", [3]float32{0, h / 2, d/2 + shellThickness/2}, [3]float32{w, h, shellThickness}, 0)
	addNode("wall-left", [3]float32{-w/2 - shellThickness/2, h / 2, 0}, [3]float32{shellThickness, h, d}, 0)
	addNode("wall-right", [3]float32{w/2 + shellThickness/2, h / 2, 0}, [3]float32{shellThickness, h, d}, 0)

	for i, p := range placed {
		name := fmt.Sprintf("tv-%02d-%s-%s", i, p.Wall.Side, p.Spec.Class)
		addNode(name, p.Position, [3]float32{p.Spec.Width, p.Spec.Height, cabinetDepth * p.Scale}, p.Yaw)
	}

	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
