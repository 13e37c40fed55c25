// Package obj reads and writes the Wavefront OBJ geometry text format.
// It covers the geometry subset of the format: vertex data, faces and
// their optional texture coordinate and normal references, plus object
// and group membership. Material directives are not recognized.
package obj

import "github.com/go-gl/mathgl/mgl32"

// NoIndex marks an absent optional reference in a FaceVertex.
const NoIndex = -1

// FaceVertex is one corner of a face. All indices are zero-based
// positions into the Scene element lists; the file format stores them
// one-based. TexCoord and Normal are NoIndex when the corner carries no
// such reference.
type FaceVertex struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// HasTexCoord returns true if the corner references a texture coordinate.
func (fv FaceVertex) HasTexCoord() bool {
	return fv.TexCoord != NoIndex
}

// HasNormal returns true if the corner references a normal.
func (fv FaceVertex) HasNormal() bool {
	return fv.Normal != NoIndex
}

// Face is an ordered list of corners. Loaded faces always hold at least
// three.
type Face []FaceVertex

// Object names a consecutive run of faces. Primitives holds zero-based
// indices into Scene.Faces in declaration order.
type Object struct {
	Name       string // empty for the implicit default object
	Primitives []int
}

// NewObject returns an empty object with the given name.
func NewObject(name string) Object {
	return Object{Name: name}
}

// Group is a named set of faces. Unlike objects, groups may overlap and
// may be reopened later in the document, so membership is kept as a set
// of zero-based Scene.Faces indices.
type Group struct {
	Name    string
	Indexes map[int]struct{}
}

// NewGroup returns an empty group with the given name.
func NewGroup(name string) Group {
	return Group{Name: name, Indexes: make(map[int]struct{})}
}

// Add inserts a face index into the group.
func (g *Group) Add(face int) {
	g.Indexes[face] = struct{}{}
}

// Contains returns true if the group holds the given face index.
func (g *Group) Contains(face int) bool {
	_, ok := g.Indexes[face]
	return ok
}

// Scene is a parsed OBJ document. Positions keep their w component
// (1 when the file omits it) and texture coordinates keep their v and w
// components (0 when omitted), so a scene survives a write unchanged.
type Scene struct {
	Vertices  []mgl32.Vec4
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec3
	Faces     []Face
	Objects   []Object
	Groups    []Group
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// GetObjectByName returns the first object with the given name.
// Returns nil if no such object exists.
func (s *Scene) GetObjectByName(name string) *Object {
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i]
		}
	}
	return nil
}

// GetGroupByName returns the first group with the given name.
// Returns nil if no such group exists.
func (s *Scene) GetGroupByName(name string) *Group {
	i := s.groupIndex(name)
	if i < 0 {
		return nil
	}
	return &s.Groups[i]
}

// groupIndex returns the declaration index of the first group with the
// given name, or -1.
func (s *Scene) groupIndex(name string) int {
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			return i
		}
	}
	return -1
}

// FaceGroups returns the indices of every group containing the face, in
// group declaration order.
func (s *Scene) FaceGroups(face int) []int {
	var groups []int
	for i := range s.Groups {
		if s.Groups[i].Contains(face) {
			groups = append(groups, i)
		}
	}
	return groups
}

// Stats summarizes the element counts of a scene.
type Stats struct {
	Vertices  int
	Normals   int
	TexCoords int
	Faces     int
	Objects   int
	Groups    int
}

// Stats returns the element counts of the scene.
func (s *Scene) Stats() Stats {
	return Stats{
		Vertices:  len(s.Vertices),
		Normals:   len(s.Normals),
		TexCoords: len(s.TexCoords),
		Faces:     len(s.Faces),
		Objects:   len(s.Objects),
		Groups:    len(s.Groups),
	}
}
