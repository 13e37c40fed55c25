package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// ftoa renders a float32 with the shortest text that parses back to the
// same value.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Write serializes the scene as OBJ text.
//
// Output is deterministic: all vertices first, then normals, then
// texture coordinates, then the faces object by object in declaration
// order. Positions always carry their w component and texture
// coordinates all three components, so defaults filled in during a load
// are written back out. A g directive is emitted whenever the group
// membership of the upcoming face differs from the membership last
// written; the tracked membership starts empty and is not reset at
// object boundaries.
func (s *Scene) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, v := range s.Vertices {
		fmt.Fprintf(bw, "v %s %s %s %s\n", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]), ftoa(v[3]))
	}
	for _, n := range s.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n[0]), ftoa(n[1]), ftoa(n[2]))
	}
	for _, t := range s.TexCoords {
		fmt.Fprintf(bw, "vt %s %s %s\n", ftoa(t[0]), ftoa(t[1]), ftoa(t[2]))
	}

	var active []int
	for _, o := range s.Objects {
		if o.Name != "" {
			fmt.Fprintf(bw, "o %s\n", o.Name)
		}
		for _, fi := range o.Primitives {
			// FaceGroups returns indices in declaration order, so two
			// memberships are equal exactly when the slices are equal.
			groups := s.FaceGroups(fi)
			if !slices.Equal(groups, active) {
				bw.WriteString("g")
				for _, gi := range groups {
					bw.WriteByte(' ')
					bw.WriteString(s.Groups[gi].Name)
				}
				bw.WriteByte('\n')
				active = groups
			}

			bw.WriteString("f")
			for _, fv := range s.Faces[fi] {
				bw.WriteByte(' ')
				bw.WriteString(refString(fv))
			}
			bw.WriteByte('\n')
		}
	}

	// bufio keeps the first write error; Flush surfaces it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj data: %w", err)
	}
	return nil
}

// refString renders one face reference as one-based v/vt/vn text.
// Absent optional fields stay empty, as in "2//1".
func refString(fv FaceVertex) string {
	v := strconv.Itoa(fv.Vertex + 1)
	vt := ""
	if fv.TexCoord != NoIndex {
		vt = strconv.Itoa(fv.TexCoord + 1)
	}
	vn := ""
	if fv.Normal != NoIndex {
		vn = strconv.Itoa(fv.Normal + 1)
	}
	return v + "/" + vt + "/" + vn
}

// WriteFile serializes the scene to a file on disk.
func (s *Scene) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating obj file: %w", err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing obj file: %w", err)
	}
	return nil
}
