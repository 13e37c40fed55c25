package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBounds_Cube(t *testing.T) {
	scene, err := ParseFile("testdata/cube.obj")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	min, max := scene.Bounds()
	if min != (mgl32.Vec3{-1, -1, -1}) {
		t.Errorf("expected min (-1 -1 -1), got %v", min)
	}
	if max != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected max (1 1 1), got %v", max)
	}
	if c := scene.Center(); c != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("expected center at origin, got %v", c)
	}
}

func TestBounds_Empty(t *testing.T) {
	min, max := NewScene().Bounds()
	if min != (mgl32.Vec3{}) || max != (mgl32.Vec3{}) {
		t.Errorf("expected zero bounds for empty scene, got %v %v", min, max)
	}
}

func TestCenter(t *testing.T) {
	scene := parseString(t, "v 0 0 0\nv 2 4 6\n")
	if c := scene.Center(); c != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected center (1 2 3), got %v", c)
	}
}

func TestFaceNormal(t *testing.T) {
	scene := parseString(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	if n := scene.FaceNormal(0); n != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("expected normal (0 0 1), got %v", n)
	}

	cube, err := ParseFile("testdata/cube.obj")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	// The first cube face lies in the bottom plane; its stored normal
	// is (0 -1 0).
	if n := cube.FaceNormal(0); n != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("expected normal (0 -1 0), got %v", n)
	}
}

func TestFaceNormal_Degenerate(t *testing.T) {
	scene := parseString(t, "v 1 1 1\nf 1 1 1\n")
	if n := scene.FaceNormal(0); n != (mgl32.Vec3{}) {
		t.Errorf("expected zero normal for degenerate face, got %v", n)
	}

	if n := scene.FaceNormal(7); n != (mgl32.Vec3{}) {
		t.Errorf("expected zero normal for unknown face, got %v", n)
	}

	// A face corner pointing past the vertex list.
	broken := NewScene()
	broken.Faces = append(broken.Faces, Face{{Vertex: 3}, {Vertex: 4}, {Vertex: 5}})
	if n := broken.FaceNormal(0); n != (mgl32.Vec3{}) {
		t.Errorf("expected zero normal for missing vertices, got %v", n)
	}
}

func TestTriangulate(t *testing.T) {
	scene := parseString(t, "f 1 2 3 4 5\n")
	tris := scene.Faces[0].Triangulate()

	if len(tris) != 3 {
		t.Fatalf("expected 3 triangles from a pentagon, got %d", len(tris))
	}
	wantVertices := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	for i, tri := range tris {
		for j := 0; j < 3; j++ {
			if tri[j].Vertex != wantVertices[i][j] {
				t.Errorf("triangle %d corner %d: expected vertex %d, got %d",
					i, j, wantVertices[i][j], tri[j].Vertex)
			}
		}
	}

	if got := (Face{{Vertex: 0}, {Vertex: 1}}).Triangulate(); got != nil {
		t.Errorf("expected nil for a two-corner face, got %v", got)
	}

	single := scene.Faces[0][:3]
	if got := single.Triangulate(); len(got) != 1 {
		t.Errorf("expected a triangle to stay a single triangle, got %v", got)
	}
}
