package obj

import "github.com/go-gl/mathgl/mgl32"

// Bounds returns the axis-aligned bounding box of all vertex positions.
// Both corners are zero vectors for a scene without vertices.
func (s *Scene) Bounds() (min, max mgl32.Vec3) {
	if len(s.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	min = s.Vertices[0].Vec3()
	max = min
	for _, v := range s.Vertices[1:] {
		p := v.Vec3()
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Center returns the midpoint of the bounding box.
func (s *Scene) Center() mgl32.Vec3 {
	min, max := s.Bounds()
	return min.Add(max).Mul(0.5)
}

// FaceNormal returns the unit normal of the face plane, computed from
// the face's first three corners with counter-clockwise winding. The
// zero vector is returned for an unknown face index, a degenerate face
// or corners referencing missing vertices.
func (s *Scene) FaceNormal(face int) mgl32.Vec3 {
	if face < 0 || face >= len(s.Faces) {
		return mgl32.Vec3{}
	}
	f := s.Faces[face]
	if len(f) < 3 {
		return mgl32.Vec3{}
	}

	var p [3]mgl32.Vec3
	for i := 0; i < 3; i++ {
		vi := f[i].Vertex
		if vi < 0 || vi >= len(s.Vertices) {
			return mgl32.Vec3{}
		}
		p[i] = s.Vertices[vi].Vec3()
	}

	n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// Triangulate expands the face into a triangle fan anchored at its
// first corner. Faces with fewer than three corners yield nil.
func (f Face) Triangulate() [][3]FaceVertex {
	if len(f) < 3 {
		return nil
	}
	tris := make([][3]FaceVertex, 0, len(f)-2)
	for i := 2; i < len(f); i++ {
		tris = append(tris, [3]FaceVertex{f[0], f[i-1], f[i]})
	}
	return tris
}
