package mesh

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Weighting selects how incident face normals are averaged into a
// vertex normal.
type Weighting int

const (
	// WeightArea weights each face by its area (the default).
	WeightArea Weighting = iota
	// WeightAngle weights each face by the interior angle at the vertex.
	WeightAngle
	// WeightUniform weights all incident faces equally.
	WeightUniform
)

func (w Weighting) String() string {
	switch w {
	case WeightArea:
		return "area"
	case WeightAngle:
		return "angle"
	case WeightUniform:
		return "uniform"
	default:
		return fmt.Sprintf("Weighting(%d)", int(w))
	}
}

// FaceNormal returns the unit normal of a face, computed from the
// cross product of the face's first two edges. For an n-gon only the
// first three vertices determine the direction; this is a deliberate
// simplification, not a whole-polygon best fit.
func (m *Mesh) FaceNormal(f FaceKey) (v3.Vec, bool) {
	loop, ok := m.Face[f]
	if !ok || len(loop) < 3 {
		return v3.Vec{}, false
	}
	p0, ok0 := m.VertexPosition(loop[0])
	p1, ok1 := m.VertexPosition(loop[1])
	p2, ok2 := m.VertexPosition(loop[2])
	if !ok0 || !ok1 || !ok2 {
		return v3.Vec{}, false
	}
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize(), true
}

// FaceArea returns the face area, computed by fanning the face from
// its first vertex and summing triangle areas. This is exact for
// convex and vertex-0-star-shaped planar faces and an accepted
// approximation for general concave polygons.
func (m *Mesh) FaceArea(f FaceKey) (float64, bool) {
	loop, ok := m.Face[f]
	if !ok || len(loop) < 3 {
		return 0, false
	}
	p0, ok0 := m.VertexPosition(loop[0])
	if !ok0 {
		return 0, false
	}
	area := 0.0
	for i := 1; i < len(loop)-1; i++ {
		p1, ok1 := m.VertexPosition(loop[i])
		p2, ok2 := m.VertexPosition(loop[i+1])
		if !ok1 || !ok2 {
			return 0, false
		}
		area += p1.Sub(p0).Cross(p2.Sub(p0)).Length() * 0.5
	}
	return area, true
}

// VertexAngleInFace returns the interior angle at vertex v within face
// f, in radians. The cosine is clamped to [-1,1] before acos to absorb
// floating-point overshoot.
func (m *Mesh) VertexAngleInFace(v VertexKey, f FaceKey) (float64, bool) {
	loop, ok := m.Face[f]
	if !ok {
		return 0, false
	}
	pos, ok := m.VertexPosition(v)
	if !ok {
		return 0, false
	}
	idx := -1
	for i, u := range loop {
		if u == v {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	n := len(loop)
	prev, okp := m.VertexPosition(loop[(idx+n-1)%n])
	next, okn := m.VertexPosition(loop[(idx+1)%n])
	if !okp || !okn {
		return 0, false
	}

	a := prev.Sub(pos)
	b := next.Sub(pos)
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return 0, false
	}
	cos := a.Dot(b) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), true
}

// VertexNormalWeighted returns the unit normal at a vertex, averaged
// over the normals of its incident faces under the given weighting.
// It returns false when the vertex has no incident faces or the total
// weight is zero.
func (m *Mesh) VertexNormalWeighted(v VertexKey, weighting Weighting) (v3.Vec, bool) {
	faces := m.VertexFaces(v)
	if len(faces) == 0 {
		return v3.Vec{}, false
	}

	var sum v3.Vec
	total := 0.0
	for _, f := range faces {
		normal, ok := m.FaceNormal(f)
		if !ok {
			continue
		}
		weight := 1.0
		switch weighting {
		case WeightArea:
			weight, _ = m.FaceArea(f)
		case WeightAngle:
			weight, _ = m.VertexAngleInFace(v, f)
		}
		sum = sum.Add(normal.MulScalar(weight))
		total += weight
	}
	if total <= 0 {
		return v3.Vec{}, false
	}
	return sum.DivScalar(total).Normalize(), true
}

// VertexNormal returns the area-weighted vertex normal.
func (m *Mesh) VertexNormal(v VertexKey) (v3.Vec, bool) {
	return m.VertexNormalWeighted(v, WeightArea)
}

// FaceNormals computes normals for all faces. Faces whose normal
// cannot be computed are omitted from the result.
func (m *Mesh) FaceNormals() map[FaceKey]v3.Vec {
	normals := make(map[FaceKey]v3.Vec, len(m.Face))
	for f := range m.Face {
		if n, ok := m.FaceNormal(f); ok {
			normals[f] = n
		}
	}
	return normals
}

// VertexNormalsWeighted computes normals for all vertices under the
// given weighting. Vertices with no computable normal are omitted.
func (m *Mesh) VertexNormalsWeighted(weighting Weighting) map[VertexKey]v3.Vec {
	normals := make(map[VertexKey]v3.Vec, len(m.Vertex))
	for v := range m.Vertex {
		if n, ok := m.VertexNormalWeighted(v, weighting); ok {
			normals[v] = n
		}
	}
	return normals
}

// VertexNormals computes area-weighted normals for all vertices.
func (m *Mesh) VertexNormals() map[VertexKey]v3.Vec {
	return m.VertexNormalsWeighted(WeightArea)
}
