package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/stairforge/pkg/scene"
)

// boxFaces are quad faces of an eight-corner cuboid, as 1-based offsets into
// the vertex block emitted by writeBox. Corner order: the four y- corners
// counter-clockwise from (-x,-z), then the four y+ corners in the same order.
var boxFaces = [6][4]int{
	{1, 2, 3, 4}, // z-
	{5, 8, 7, 6}, // z+
	{1, 5, 6, 2}, // y-
	{4, 3, 7, 8}, // y+
	{1, 4, 8, 5}, // x-
	{2, 6, 7, 3}, // x+
}

// octaFaces are triangle faces of an octahedron, as 1-based offsets into the
// vertex block emitted by writeSphere (x+, x-, y+, y-, z+, z-).
var octaFaces = [8][3]int{
	{1, 3, 5}, {3, 2, 5}, {2, 4, 5}, {4, 1, 5},
	{3, 1, 6}, {2, 3, 6}, {4, 2, 6}, {1, 4, 6},
}

// RenderOBJ exports the layout as a Wavefront OBJ mesh.
//
// Each primitive becomes its own object record; group membership is carried
// through `g` records so importers keep the stairs/railings split. Boxes are
// emitted with their yaw applied; railing markers become small octahedra
// (spheres carry no orientation, so a coarse stand-in is enough for the
// marker role they play).
func RenderOBJ(l scene.Layout) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("# Wavefront OBJ export\n")
	fmt.Fprintf(&buf, "# primitives: %d\n\n", len(l.Primitives))

	vertexBase := 0
	currentGroup := ""
	for i := range l.Primitives {
		p := &l.Primitives[i]

		if p.Group != currentGroup {
			currentGroup = p.Group
			fmt.Fprintf(&buf, "g %s\n", currentGroup)
		}
		fmt.Fprintf(&buf, "o %s\n", p.Name)

		if p.IsSphere() {
			vertexBase += writeSphere(&buf, p, vertexBase)
		} else {
			vertexBase += writeBox(&buf, p, vertexBase)
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// writeBox emits an eight-corner cuboid and returns the vertex count.
func writeBox(buf *bytes.Buffer, p *scene.Primitive, base int) int {
	hw, hh, hd := p.Width/2, p.Height/2, p.Depth/2
	corners := [8][3]float64{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd},
		{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd},
	}

	rad := p.Yaw * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	for _, c := range corners {
		// Yaw rotates about the vertical axis before translation.
		x := c[0]*cos + c[2]*sin
		z := -c[0]*sin + c[2]*cos
		fmt.Fprintf(buf, "v %.6f %.6f %.6f\n",
			p.Position.X+x, p.Position.Y+c[1], p.Position.Z+z)
	}
	for _, f := range boxFaces {
		fmt.Fprintf(buf, "f %d %d %d %d\n", base+f[0], base+f[1], base+f[2], base+f[3])
	}
	return len(corners)
}

// writeSphere emits an octahedral stand-in and returns the vertex count.
func writeSphere(buf *bytes.Buffer, p *scene.Primitive, base int) int {
	c, r := p.Position, p.Radius
	vertices := [6][3]float64{
		{c.X + r, c.Y, c.Z}, {c.X - r, c.Y, c.Z},
		{c.X, c.Y + r, c.Z}, {c.X, c.Y - r, c.Z},
		{c.X, c.Y, c.Z + r}, {c.X, c.Y, c.Z - r},
	}

	for _, v := range vertices {
		fmt.Fprintf(buf, "v %.6f %.6f %.6f\n", v[0], v[1], v[2])
	}
	for _, f := range octaFaces {
		fmt.Fprintf(buf, "f %d %d %d\n", base+f[0], base+f[1], base+f[2])
	}
	return len(vertices)
}
