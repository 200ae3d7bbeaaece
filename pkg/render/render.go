// Package render converts halfedge meshes into the flat triangle
// arrays a display layer consumes. The conversion is read-only over
// the source mesh.
package render

import (
	"sort"

	"github.com/chazu/meshkit/pkg/mesh"
)

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // optional label for the consumer
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// FromMesh flattens a halfedge mesh into render arrays. Vertex normals
// are smooth, averaged with the given weighting; faces with more than
// 3 vertices are fanned from their first vertex. Vertices are emitted
// in ascending key order so the output is deterministic.
func FromMesh(src *mesh.Mesh, weighting mesh.Weighting) *Mesh {
	out := &Mesh{
		Vertices: []float32{},
		Normals:  []float32{},
		Indices:  []uint32{},
	}
	if src == nil || src.IsEmpty() {
		return out
	}

	keys := make([]mesh.VertexKey, 0, len(src.Vertex))
	for k := range src.Vertex {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	normals := src.VertexNormalsWeighted(weighting)
	index := make(map[mesh.VertexKey]uint32, len(keys))
	for i, k := range keys {
		index[k] = uint32(i)
		p := src.Vertex[k].Position
		out.Vertices = append(out.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
		n := normals[k] // zero vector for vertices with no incident faces
		out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}

	faceKeys := make([]mesh.FaceKey, 0, len(src.Face))
	for f := range src.Face {
		faceKeys = append(faceKeys, f)
	}
	sort.Slice(faceKeys, func(i, j int) bool { return faceKeys[i] < faceKeys[j] })

	for _, f := range faceKeys {
		loop := src.Face[f]
		for i := 1; i < len(loop)-1; i++ {
			out.Indices = append(out.Indices,
				index[loop[0]], index[loop[i]], index[loop[i+1]])
		}
	}
	return out
}
