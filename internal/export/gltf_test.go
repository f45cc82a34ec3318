package export

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"tv-gallery/internal/exhibit"
	"tv-gallery/internal/layout"
	"tv-gallery/internal/room"
)

func TestWriteProducesShellAndExhibitNodes(t *testing.T) {
	r := room.Default()
	wall := r.Wall(room.SideBack)
	placed := []layout.Placed{
		{
			Spec:     exhibit.Spec{Class: exhibit.ClassSmall, Width: 1, Height: 0.8},
			Wall:     wall,
			Anchor:   layout.Anchor{X: 2, Y: -1},
			Position: wall.Transform(2, -1),
			Yaw:      wall.Yaw(),
			Scale:    exhibit.ClassSmall.Scale(),
		},
		{
			Spec:     exhibit.Spec{Class: exhibit.ClassLarge, Width: 2.4, Height: 1.8},
			Wall:     wall,
			Anchor:   layout.Anchor{X: -3, Y: 1},
			Position: wall.Transform(-3, 1),
			Yaw:      wall.Yaw(),
			Scale:    exhibit.ClassLarge.Scale(),
		},
	}

	path := filepath.Join(t.TempDir(), "gallery.gltf")
	if err := Write(path, r, placed); err != nil {
		t.Fatalf("Write: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopen exported file: %v", err)
	}
	// 6 shell pieces (floor, ceiling, four walls) plus one node per TV.
	if want := 6 + len(placed); len(doc.Nodes) != want {
		t.Errorf("exported %d nodes, want %d", len(doc.Nodes), want)
	}
	if len(doc.Meshes) != 1 {
		t.Errorf("exported %d meshes, want 1 shared box", len(doc.Meshes))
	}
	for _, n := range doc.Nodes {
		if n.Mesh == nil {
			t.Errorf("node %q has no mesh", n.Name)
		}
	}
}
