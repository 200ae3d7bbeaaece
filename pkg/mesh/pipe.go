package mesh

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// minPipeLength is the degenerate-segment guard for pipe generation.
const minPipeLength = 1e-6

// cos30/sin30 spell out the 12-gon rim coordinates of the template.
const (
	cos30 = 0.8660254038
	sin30 = 0.5
)

// unitPipeVertices is a 12-sided cylinder of radius 1 and height 1
// centered on the origin: one center vertex plus 12 rim vertices per
// cap. Pipes are produced by transforming this template rather than
// generating trigonometry per call.
var unitPipeVertices = [26]v3.Vec{
	{X: 0, Y: 0, Z: -0.5}, // bottom center
	{X: 1, Y: 0, Z: -0.5},
	{X: cos30, Y: sin30, Z: -0.5},
	{X: sin30, Y: cos30, Z: -0.5},
	{X: 0, Y: 1, Z: -0.5},
	{X: -sin30, Y: cos30, Z: -0.5},
	{X: -cos30, Y: sin30, Z: -0.5},
	{X: -1, Y: 0, Z: -0.5},
	{X: -cos30, Y: -sin30, Z: -0.5},
	{X: -sin30, Y: -cos30, Z: -0.5},
	{X: 0, Y: -1, Z: -0.5},
	{X: sin30, Y: -cos30, Z: -0.5},
	{X: cos30, Y: -sin30, Z: -0.5},
	{X: 0, Y: 0, Z: 0.5}, // top center
	{X: 1, Y: 0, Z: 0.5},
	{X: cos30, Y: sin30, Z: 0.5},
	{X: sin30, Y: cos30, Z: 0.5},
	{X: 0, Y: 1, Z: 0.5},
	{X: -sin30, Y: cos30, Z: 0.5},
	{X: -cos30, Y: sin30, Z: 0.5},
	{X: -1, Y: 0, Z: 0.5},
	{X: -cos30, Y: -sin30, Z: 0.5},
	{X: -sin30, Y: -cos30, Z: 0.5},
	{X: 0, Y: -1, Z: 0.5},
	{X: sin30, Y: -cos30, Z: 0.5},
	{X: cos30, Y: -sin30, Z: 0.5},
}

// unitPipeFaces indexes into unitPipeVertices: 12 bottom-cap fans, 12
// top-cap fans, and 24 side triangles.
var unitPipeFaces = [48][3]int{
	{0, 2, 1}, {0, 3, 2}, {0, 4, 3}, {0, 5, 4},
	{0, 6, 5}, {0, 7, 6}, {0, 8, 7}, {0, 9, 8},
	{0, 10, 9}, {0, 11, 10}, {0, 12, 11}, {0, 1, 12},
	{13, 14, 15}, {13, 15, 16}, {13, 16, 17}, {13, 17, 18},
	{13, 18, 19}, {13, 19, 20}, {13, 20, 21}, {13, 21, 22},
	{13, 22, 23}, {13, 23, 24}, {13, 24, 25}, {13, 25, 14},
	{1, 2, 14}, {14, 2, 15}, {2, 3, 15}, {15, 3, 16},
	{3, 4, 16}, {16, 4, 17}, {4, 5, 17}, {17, 5, 18},
	{5, 6, 18}, {18, 6, 19}, {6, 7, 19}, {19, 7, 20},
	{7, 8, 20}, {20, 8, 21}, {8, 9, 21}, {21, 9, 22},
	{9, 10, 22}, {22, 10, 23}, {10, 11, 23}, {23, 11, 24},
	{11, 12, 24}, {24, 12, 25}, {12, 1, 25}, {25, 1, 14},
}

// CreatePipe builds a closed-cap cylindrical tube between two points.
// The result always has 26 vertices and 48 faces; a segment shorter
// than 1e-6 yields an empty mesh. The tube is produced by composing a
// scale (radius, radius, length), a rotation aligning local +Z with
// the segment direction, and a translation to the segment midpoint,
// then pushing the unit template through that transform.
func CreatePipe(start, end v3.Vec, radius float64) *Mesh {
	m := New()

	direction := end.Sub(start)
	length := direction.Length()
	if length < minPipeLength {
		return m
	}
	axis := direction.Normalize()

	scale := sdf.Scale3d(v3.Vec{X: radius, Y: radius, Z: length})

	zAxis := v3.Vec{X: 0, Y: 0, Z: 1}
	var rotation sdf.M44
	switch dot := axis.Dot(zAxis); {
	case math.Abs(dot-1) < minPipeLength:
		rotation = sdf.Identity3d()
	case math.Abs(dot+1) < minPipeLength:
		// Anti-parallel: the cross product degenerates, so flip about X.
		rotation = sdf.RotateX(math.Pi)
	default:
		rotation = sdf.Rotate3d(zAxis.Cross(axis).Normalize(), math.Acos(dot))
	}

	mid := start.Add(end).MulScalar(0.5)
	translation := sdf.Translate3d(mid)

	transform := translation.Mul(rotation).Mul(scale)

	var keys [26]VertexKey
	for i, p := range unitPipeVertices {
		keys[i] = m.AddVertex(transform.MulPosition(p))
	}
	for _, f := range unitPipeFaces {
		m.AddFace([]VertexKey{keys[f[0]], keys[f[1]], keys[f[2]]})
	}
	return m
}
