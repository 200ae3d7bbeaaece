package mesh

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshkit/pkg/triangulate"
)

// DefaultPrecision is the vertex-merge quantization used by the
// polygon-soup builders when the caller passes precision <= 0.
const DefaultPrecision = 1e-10

// mergeKey quantizes a point to the given precision. Two points merge
// iff round(coord/precision) matches on all three axes, so merge
// behavior is sensitive to the precision choice near quantization
// boundaries.
func mergeKey(p v3.Vec, precision float64) string {
	return fmt.Sprintf("%d,%d,%d",
		int64(math.Round(p.X/precision)),
		int64(math.Round(p.Y/precision)),
		int64(math.Round(p.Z/precision)))
}

// FromPolygons builds a mesh from a list of independent polygons,
// merging vertices across all polygons by quantizing coordinates to
// the given precision (DefaultPrecision when <= 0). Faces with more
// than 3 vertices are inserted as single n-gon faces; polygons with
// fewer than 3 points are skipped.
func FromPolygons(polygons [][]v3.Vec, precision float64) *Mesh {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	m := New()
	merged := make(map[string]VertexKey)

	for _, polygon := range polygons {
		if len(polygon) < 3 {
			continue
		}
		loop := make([]VertexKey, 0, len(polygon))
		for _, p := range polygon {
			key := mergeKey(p, precision)
			vk, ok := merged[key]
			if !ok {
				vk = m.AddVertex(p)
				merged[key] = vk
			}
			loop = append(loop, vk)
		}
		m.AddFace(loop)
	}
	return m
}

// FromPolygonsMerged builds a mesh like FromPolygons, but any polygon
// with more than 3 vertices is triangulated: it is projected to 2D by
// dropping the dominant axis of its Newell normal, ear-clipped, and
// the triangle indices are mapped back through the merged vertex keys.
// When ear clipping fails the polygon falls back to a vertex-0 fan
// rather than being dropped.
func FromPolygonsMerged(polygons [][]v3.Vec, precision float64) *Mesh {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	m := New()

	// First pass: merge and insert all unique vertices.
	merged := make(map[string]VertexKey)
	for _, polygon := range polygons {
		for _, p := range polygon {
			key := mergeKey(p, precision)
			if _, ok := merged[key]; !ok {
				merged[key] = m.AddVertex(p)
			}
		}
	}

	// Second pass: insert faces through the merged keys.
	for _, polygon := range polygons {
		if len(polygon) < 3 {
			continue
		}
		loop := make([]VertexKey, len(polygon))
		for i, p := range polygon {
			loop[i] = merged[mergeKey(p, precision)]
		}

		if len(polygon) == 3 {
			m.AddFace(loop)
			continue
		}

		triangles, err := triangulate.EarClip(triangulate.Project(polygon))
		if err != nil {
			// Degraded but renderable: fan from vertex 0.
			for i := 1; i < len(loop)-1; i++ {
				m.AddFace([]VertexKey{loop[0], loop[i], loop[i+1]})
			}
			continue
		}
		for _, t := range triangles {
			m.AddFace([]VertexKey{loop[t[0]], loop[t[1]], loop[t[2]]})
		}
	}
	return m
}

// FromPolygonEarClip builds a triangulated mesh from a single planar
// polygon boundary, in any winding order. The polygon is projected
// along its dominant normal axis for triangulation. An empty mesh is
// returned for fewer than 3 points or when no valid triangulation
// exists.
func FromPolygonEarClip(points []v3.Vec) *Mesh {
	m := New()
	if len(points) < 3 {
		return m
	}
	triangles, err := triangulate.EarClip(triangulate.Project(points))
	if err != nil {
		return m
	}

	keys := make([]VertexKey, len(points))
	for i, p := range points {
		keys[i] = m.AddVertex(p)
	}
	for _, t := range triangles {
		m.AddFace([]VertexKey{keys[t[0]], keys[t[1]], keys[t[2]]})
	}
	return m
}
