package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// decoder holds the running state of one load pass.
type decoder struct {
	scene *Scene
	line  int // processed directive lines so far, comments and blanks not counted

	// curObject is the index of the open object, -1 until the first o
	// directive or the first face.
	curObject int

	// activeGroups holds the indices of the groups named by the last g
	// directive, in declaration order. Faces join all of them.
	activeGroups []int
}

// Parse reads an OBJ document from r.
//
// Lines starting with '#' and blank lines are skipped. Any other line
// must begin with a known directive (v, vn, vt, f, o, g or s), otherwise
// the load stops with ErrInvalidLine. The first failing line aborts the
// load and no partial scene is returned.
func Parse(r io.Reader) (*Scene, error) {
	d := &decoder{scene: NewScene(), curObject: -1}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw := sc.Text()
		if len(raw) > 0 && raw[0] == '#' {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		if err := d.directive(fields[0], fields[1:]); err != nil {
			return nil, err
		}
		d.line++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading obj data: %w", err)
	}

	return d.scene, nil
}

// ParseBytes reads an OBJ document from a byte slice.
func ParseBytes(data []byte) (*Scene, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile reads an OBJ document from disk.
func ParseFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading obj file: %w", err)
	}
	return ParseBytes(data)
}

// directive dispatches one tokenized line.
func (d *decoder) directive(keyword string, args []string) error {
	switch keyword {
	case "v":
		return d.vertex(args)
	case "vn":
		return d.normal(args)
	case "vt":
		return d.texCoord(args)
	case "f":
		return d.face(args)
	case "o":
		return d.beginObject(args)
	case "g":
		return d.selectGroups(args)
	case "s":
		// Smoothing groups are recognized but carry no meaning here.
		return nil
	default:
		return lineErr(d.line, ErrInvalidLine, keyword)
	}
}

// parseFloats parses every argument as a float32. A bad token fails the
// whole line with a Parse error before any argument count is checked,
// so "vn -1 -1d 1" reports the malformed number, not the arity.
func (d *decoder) parseFloats(args []string) ([]float32, error) {
	vals := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, lineErr(d.line, ErrParse, fmt.Sprintf("%q", a))
		}
		vals[i] = float32(f)
	}
	return vals, nil
}

// vertex handles "v x y z [w]". The w component defaults to 1.
func (d *decoder) vertex(args []string) error {
	vals, err := d.parseFloats(args)
	if err != nil {
		return err
	}
	switch len(vals) {
	case 3:
		d.scene.Vertices = append(d.scene.Vertices, mgl32.Vec4{vals[0], vals[1], vals[2], 1})
	case 4:
		d.scene.Vertices = append(d.scene.Vertices, mgl32.Vec4{vals[0], vals[1], vals[2], vals[3]})
	default:
		return lineErr(d.line, ErrWrongNumberOfArguments, fmt.Sprintf("v takes 3 or 4 values, got %d", len(vals)))
	}
	return nil
}

// normal handles "vn x y z".
func (d *decoder) normal(args []string) error {
	vals, err := d.parseFloats(args)
	if err != nil {
		return err
	}
	if len(vals) != 3 {
		return lineErr(d.line, ErrWrongNumberOfArguments, fmt.Sprintf("vn takes 3 values, got %d", len(vals)))
	}
	d.scene.Normals = append(d.scene.Normals, mgl32.Vec3{vals[0], vals[1], vals[2]})
	return nil
}

// texCoord handles "vt u [v [w]]". Omitted components default to 0.
func (d *decoder) texCoord(args []string) error {
	vals, err := d.parseFloats(args)
	if err != nil {
		return err
	}
	switch len(vals) {
	case 1:
		d.scene.TexCoords = append(d.scene.TexCoords, mgl32.Vec3{vals[0], 0, 0})
	case 2:
		d.scene.TexCoords = append(d.scene.TexCoords, mgl32.Vec3{vals[0], vals[1], 0})
	case 3:
		d.scene.TexCoords = append(d.scene.TexCoords, mgl32.Vec3{vals[0], vals[1], vals[2]})
	default:
		return lineErr(d.line, ErrWrongNumberOfArguments, fmt.Sprintf("vt takes 1 to 3 values, got %d", len(vals)))
	}
	return nil
}

// face handles "f v[/vt][/vn] ...". The new face joins the open object,
// creating the unnamed default object if none is open, and every
// currently active group.
func (d *decoder) face(args []string) error {
	if len(args) < 3 {
		return lineErr(d.line, ErrWrongNumberOfArguments, fmt.Sprintf("f takes at least 3 references, got %d", len(args)))
	}

	face := make(Face, 0, len(args))
	for _, ref := range args {
		fv, err := d.faceVertex(ref)
		if err != nil {
			return err
		}
		face = append(face, fv)
	}

	faceIdx := len(d.scene.Faces)
	d.scene.Faces = append(d.scene.Faces, face)

	if d.curObject < 0 {
		d.scene.Objects = append(d.scene.Objects, NewObject(""))
		d.curObject = len(d.scene.Objects) - 1
	}
	o := &d.scene.Objects[d.curObject]
	o.Primitives = append(o.Primitives, faceIdx)

	for _, gi := range d.activeGroups {
		d.scene.Groups[gi].Add(faceIdx)
	}
	return nil
}

// faceVertex parses one face reference. The vertex index is mandatory
// and must be a positive integer. The texture coordinate and normal
// fields are optional and degrade to NoIndex when absent, empty, zero
// or unparsable, so "2//1", "2/1" and "2" all load.
func (d *decoder) faceVertex(ref string) (FaceVertex, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return FaceVertex{}, lineErr(d.line, ErrWrongNumberOfArguments, fmt.Sprintf("face reference %q has %d fields", ref, len(parts)))
	}

	v, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || v == 0 {
		return FaceVertex{}, lineErr(d.line, ErrParse, fmt.Sprintf("face vertex index %q", parts[0]))
	}

	fv := FaceVertex{Vertex: int(v) - 1, TexCoord: NoIndex, Normal: NoIndex}
	if len(parts) > 1 {
		fv.TexCoord = optionalIndex(parts[1])
	}
	if len(parts) > 2 {
		fv.Normal = optionalIndex(parts[2])
	}
	return fv, nil
}

// optionalIndex converts an optional reference field to a zero-based
// index, or NoIndex when the field is empty, zero or not a number.
func optionalIndex(field string) int {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || n == 0 {
		return NoIndex
	}
	return int(n) - 1
}

// beginObject handles "o name". Multi-word names are joined with single
// spaces. Later faces belong to this object until the next o directive.
func (d *decoder) beginObject(args []string) error {
	if len(args) == 0 {
		return lineErr(d.line, ErrWrongNumberOfArguments, "o takes a name")
	}
	d.scene.Objects = append(d.scene.Objects, NewObject(strings.Join(args, " ")))
	d.curObject = len(d.scene.Objects) - 1
	return nil
}

// selectGroups handles "g [name ...]". The active set is replaced: each
// named group is reopened if it already exists, created otherwise. A
// bare g clears the active set. Reopening a group keeps the faces it
// collected earlier, so membership grows across the whole document.
func (d *decoder) selectGroups(args []string) error {
	d.activeGroups = d.activeGroups[:0]
	for _, name := range args {
		gi := d.scene.groupIndex(name)
		if gi < 0 {
			d.scene.Groups = append(d.scene.Groups, NewGroup(name))
			gi = len(d.scene.Groups) - 1
		}
		d.activeGroups = append(d.activeGroups, gi)
	}
	return nil
}
