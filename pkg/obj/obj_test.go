package obj

import (
	"slices"
	"testing"
)

func TestGetObjectByName(t *testing.T) {
	scene := parseString(t, "o First\no Second\n")

	if o := scene.GetObjectByName("Second"); o == nil || o.Name != "Second" {
		t.Errorf("expected object Second, got %v", o)
	}
	if o := scene.GetObjectByName("Third"); o != nil {
		t.Errorf("expected nil for unknown object, got %v", o)
	}
}

func TestGetGroupByName(t *testing.T) {
	scene := parseString(t, "g hull deck\n")

	if g := scene.GetGroupByName("deck"); g == nil || g.Name != "deck" {
		t.Errorf("expected group deck, got %v", g)
	}
	if g := scene.GetGroupByName("keel"); g != nil {
		t.Errorf("expected nil for unknown group, got %v", g)
	}
}

func TestFaceGroups_DeclarationOrder(t *testing.T) {
	// Face 0 joins c and a; FaceGroups must report declaration order.
	src := `g a
g b
g c a
f 1 2 3
`
	scene := parseString(t, src)

	if got := scene.FaceGroups(0); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("expected groups [0 2], got %v", got)
	}
	if got := scene.FaceGroups(99); got != nil {
		t.Errorf("expected no groups for unknown face, got %v", got)
	}
}

func TestGroup_AddContains(t *testing.T) {
	g := NewGroup("hull")

	if g.Contains(4) {
		t.Error("new group should be empty")
	}
	g.Add(4)
	g.Add(4)
	if !g.Contains(4) {
		t.Error("expected group to contain face 4")
	}
	if len(g.Indexes) != 1 {
		t.Errorf("expected a single entry after double add, got %d", len(g.Indexes))
	}
}

func TestFaceVertex_OptionalReferences(t *testing.T) {
	fv := FaceVertex{Vertex: 0, TexCoord: NoIndex, Normal: 2}

	if fv.HasTexCoord() {
		t.Error("expected no texcoord reference")
	}
	if !fv.HasNormal() {
		t.Error("expected a normal reference")
	}
}

func TestStats(t *testing.T) {
	scene, err := ParseFile("testdata/quad_groups.obj")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}

	want := Stats{
		Vertices:  6,
		Normals:   0,
		TexCoords: 4,
		Faces:     2,
		Objects:   1,
		Groups:    3,
	}
	if got := scene.Stats(); got != want {
		t.Errorf("expected stats %+v, got %+v", want, got)
	}
}
