package obj

import "fmt"

// ExtractObject returns a new scene holding only the named object's
// faces. The vertex, texture coordinate and normal lists are compacted
// to the entries those faces reference, in first-use order, and all
// face references are remapped accordingly. Groups keep their relative
// order and the membership of the extracted faces; groups left empty
// are dropped. A face corner referencing a vertex missing from the
// source scene is an error, while optional references to missing
// entries degrade to NoIndex.
func (s *Scene) ExtractObject(name string) (*Scene, error) {
	src := s.GetObjectByName(name)
	if src == nil {
		return nil, fmt.Errorf("object %q not found", name)
	}

	out := NewScene()
	out.Objects = append(out.Objects, NewObject(name))

	vmap := make(map[int]int)
	tmap := make(map[int]int)
	nmap := make(map[int]int)
	faceMap := make(map[int]int, len(src.Primitives))

	remapTex := func(i int) int {
		if i == NoIndex || i < 0 || i >= len(s.TexCoords) {
			return NoIndex
		}
		j, ok := tmap[i]
		if !ok {
			j = len(out.TexCoords)
			out.TexCoords = append(out.TexCoords, s.TexCoords[i])
			tmap[i] = j
		}
		return j
	}
	remapNorm := func(i int) int {
		if i == NoIndex || i < 0 || i >= len(s.Normals) {
			return NoIndex
		}
		j, ok := nmap[i]
		if !ok {
			j = len(out.Normals)
			out.Normals = append(out.Normals, s.Normals[i])
			nmap[i] = j
		}
		return j
	}

	for _, fi := range src.Primitives {
		if fi < 0 || fi >= len(s.Faces) {
			return nil, fmt.Errorf("object %q references missing face %d", name, fi)
		}

		srcFace := s.Faces[fi]
		face := make(Face, len(srcFace))
		for k, fv := range srcFace {
			if fv.Vertex < 0 || fv.Vertex >= len(s.Vertices) {
				return nil, fmt.Errorf("face %d references missing vertex %d", fi, fv.Vertex+1)
			}
			nv, ok := vmap[fv.Vertex]
			if !ok {
				nv = len(out.Vertices)
				out.Vertices = append(out.Vertices, s.Vertices[fv.Vertex])
				vmap[fv.Vertex] = nv
			}
			face[k] = FaceVertex{
				Vertex:   nv,
				TexCoord: remapTex(fv.TexCoord),
				Normal:   remapNorm(fv.Normal),
			}
		}

		idx := len(out.Faces)
		out.Faces = append(out.Faces, face)
		out.Objects[0].Primitives = append(out.Objects[0].Primitives, idx)
		faceMap[fi] = idx
	}

	for gi := range s.Groups {
		g := NewGroup(s.Groups[gi].Name)
		for old, idx := range faceMap {
			if s.Groups[gi].Contains(old) {
				g.Add(idx)
			}
		}
		if len(g.Indexes) > 0 {
			out.Groups = append(out.Groups, g)
		}
	}

	return out, nil
}
